package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Totarae/PageAnalyzer/internal/database"
	"github.com/Totarae/PageAnalyzer/internal/model"
	"github.com/Totarae/PageAnalyzer/internal/storage"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// URLRepository реализует storage.Storage поверх PostgreSQL.
type URLRepository struct {
	DB *database.DB
}

// NewURLRepository создаёт новый экземпляр URLRepository.
func NewURLRepository(db *database.DB) *URLRepository {
	return &URLRepository{DB: db}
}

// Acquire берёт соединение из пула на время одного запроса.
func (r *URLRepository) Acquire(ctx context.Context) (storage.Session, error) {
	conn, err := r.DB.Pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return &pgSession{conn: conn}, nil
}

// Ping проверяет доступность базы данных.
func (r *URLRepository) Ping(ctx context.Context) error {
	return r.DB.Ping(ctx)
}

// querier общая часть *pgxpool.Conn и pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgSession struct {
	conn *pgxpool.Conn
}

func (s *pgSession) Release() {
	if s.conn != nil {
		s.conn.Release()
		s.conn = nil
	}
}

// URLByName ищет адрес по нормализованному имени.
func (s *pgSession) URLByName(ctx context.Context, name string) (*model.URL, error) {
	return scanURL(s.conn.QueryRow(ctx, `SELECT id, name, created_at FROM urls WHERE name = $1`, name))
}

// URLByID ищет адрес по идентификатору.
func (s *pgSession) URLByID(ctx context.Context, id int64) (*model.URL, error) {
	return scanURL(s.conn.QueryRow(ctx, `SELECT id, name, created_at FROM urls WHERE id = $1`, id))
}

// InsertURL добавляет адрес. Если имя уже занято, возвращает storage.ErrConflict.
func (s *pgSession) InsertURL(ctx context.Context, name string) (*model.URL, error) {
	query := `INSERT INTO urls (name, created_at)
              VALUES ($1, NOW())
              ON CONFLICT (name) DO NOTHING
              RETURNING id, name, created_at`

	u, err := scanURL(s.conn.QueryRow(ctx, query, name))
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// ON CONFLICT DO NOTHING не возвращает строк
		return nil, storage.ErrConflict
	case isPgError(err, pgUniqueViolation):
		return nil, storage.ErrConflict
	case err != nil:
		return nil, fmt.Errorf("database insert error: %w", err)
	}
	return u, nil
}

// URLs возвращает все адреса, новые первыми.
func (s *pgSession) URLs(ctx context.Context) ([]model.URL, error) {
	rows, err := s.conn.Query(ctx, `SELECT id, name, created_at FROM urls ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query urls: %w", err)
	}
	urls, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.URL])
	if err != nil {
		return nil, fmt.Errorf("failed to scan urls: %w", err)
	}
	return urls, nil
}

// ChecksForURL возвращает историю проверок адреса, новые первыми.
func (s *pgSession) ChecksForURL(ctx context.Context, urlID int64) ([]model.URLCheck, error) {
	query := `SELECT id, url_id, status_code, h1, title, description, created_at
              FROM url_checks
              WHERE url_id = $1
              ORDER BY created_at DESC NULLS LAST, id DESC`
	return collectChecks(ctx, s.conn, query, urlID)
}

// Checks возвращает все проверки одним запросом для сводки по списку.
func (s *pgSession) Checks(ctx context.Context) ([]model.URLCheck, error) {
	query := `SELECT id, url_id, status_code, h1, title, description, created_at
              FROM url_checks
              ORDER BY id`
	return collectChecks(ctx, s.conn, query)
}

// InsertCheck сохраняет результат проверки в транзакции.
func (s *pgSession) InsertCheck(ctx context.Context, check model.URLCheck) (*model.URLCheck, error) {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO url_checks (url_id, status_code, h1, title, description, created_at)
              VALUES ($1, $2, $3, $4, $5, NOW())
              RETURNING id, created_at`
	err = tx.QueryRow(ctx, query,
		check.URLID, check.StatusCode, check.H1, check.Title, check.Description,
	).Scan(&check.ID, &check.CreatedAt)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to insert check: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &check, nil
}

func scanURL(row pgx.Row) (*model.URL, error) {
	u := &model.URL{}
	if err := row.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return u, nil
}

func collectChecks(ctx context.Context, q querier, query string, args ...any) ([]model.URLCheck, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query checks: %w", err)
	}
	checks, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.URLCheck])
	if err != nil {
		return nil, fmt.Errorf("failed to scan checks: %w", err)
	}
	return checks, nil
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
