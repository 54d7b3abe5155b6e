// Package storage описывает хранилище адресов и их проверок.
package storage

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

import (
	"context"
	"errors"

	"github.com/Totarae/PageAnalyzer/internal/model"
)

var (
	// ErrNotFound запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrConflict адрес с таким именем уже существует.
	ErrConflict = errors.New("already exists")
)

// Storage выдаёт сессии работы с хранилищем.
type Storage interface {
	// Acquire захватывает сессию. Вызывающий обязан вызвать Release.
	Acquire(ctx context.Context) (Session, error)
	// Ping проверяет доступность хранилища.
	Ping(ctx context.Context) error
}

// Session операции чтения и записи в рамках одного запроса.
type Session interface {
	// URLByName возвращает ErrNotFound, если адреса нет.
	URLByName(ctx context.Context, name string) (*model.URL, error)
	// URLByID возвращает ErrNotFound, если адреса нет.
	URLByID(ctx context.Context, id int64) (*model.URL, error)
	// InsertURL возвращает ErrConflict, если имя уже занято.
	InsertURL(ctx context.Context, name string) (*model.URL, error)
	// URLs все адреса, новые первыми.
	URLs(ctx context.Context) ([]model.URL, error)
	// ChecksForURL проверки адреса, новые первыми.
	ChecksForURL(ctx context.Context, urlID int64) ([]model.URLCheck, error)
	// Checks все проверки всех адресов.
	Checks(ctx context.Context) ([]model.URLCheck, error)
	// InsertCheck сохраняет проверку и возвращает её с ID и CreatedAt.
	// Возвращает ErrNotFound, если адреса check.URLID нет.
	InsertCheck(ctx context.Context, check model.URLCheck) (*model.URLCheck, error)
	// Release освобождает сессию. Повторный вызов безопасен.
	Release()
}
