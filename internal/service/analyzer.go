package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Totarae/PageAnalyzer/internal/extract"
	"github.com/Totarae/PageAnalyzer/internal/fetch"
	"github.com/Totarae/PageAnalyzer/internal/lastcheck"
	"github.com/Totarae/PageAnalyzer/internal/model"
	"github.com/Totarae/PageAnalyzer/internal/storage"
	"github.com/Totarae/PageAnalyzer/internal/util"
)

// ErrFetchFailed страницу не удалось загрузить: сеть, таймаут или код не 2xx.
var ErrFetchFailed = errors.New("page fetch failed")

// Fetcher загружает страницу по адресу.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Page, error)
}

type AnalyzerService struct {
	Storage storage.Storage
	Fetcher Fetcher
	Logger  *zap.Logger
}

func NewAnalyzerService(st storage.Storage, fetcher Fetcher, logger *zap.Logger) *AnalyzerService {
	return &AnalyzerService{
		Storage: st,
		Fetcher: fetcher,
		Logger:  logger,
	}
}

// withSession захватывает сессию на время fn и освобождает её при любом исходе.
func (s *AnalyzerService) withSession(ctx context.Context, fn func(storage.Session) error) error {
	sess, err := s.Storage.Acquire(ctx)
	if err != nil {
		return err
	}
	defer sess.Release()
	return fn(sess)
}

// AddURL нормализует и проверяет адрес, затем сохраняет его.
// created=false означает, что адрес уже был в базе, и возвращается существующая запись.
// Ошибки проверки: util.ErrEmptyURL, util.ErrURLTooLong, util.ErrInvalidURL.
func (s *AnalyzerService) AddURL(ctx context.Context, raw string) (u *model.URL, created bool, err error) {
	if strings.TrimSpace(raw) == "" {
		return nil, false, util.ErrEmptyURL
	}
	name := util.NormalizeURL(raw)
	if err := util.ValidateURL(name); err != nil {
		return nil, false, err
	}

	err = s.withSession(ctx, func(sess storage.Session) error {
		u, err = sess.InsertURL(ctx, name)
		if err == nil {
			created = true
			return nil
		}
		if !errors.Is(err, storage.ErrConflict) {
			return fmt.Errorf("failed to insert url: %w", err)
		}
		// Проиграли гонку или адрес уже был: читаем существующую запись
		u, err = sess.URLByName(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to fetch existing url: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if created {
		s.Logger.Info("url added", zap.Int64("id", u.ID), zap.String("name", u.Name))
	}
	return u, created, nil
}

// ListURLs возвращает все адреса со сводкой по последней проверке.
func (s *AnalyzerService) ListURLs(ctx context.Context) ([]model.URLSummary, error) {
	var (
		urls   []model.URL
		checks []model.URLCheck
	)
	err := s.withSession(ctx, func(sess storage.Session) error {
		var err error
		if urls, err = sess.URLs(ctx); err != nil {
			return fmt.Errorf("failed to list urls: %w", err)
		}
		if checks, err = sess.Checks(ctx); err != nil {
			return fmt.Errorf("failed to list checks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lastcheck.Aggregate(urls, checks), nil
}

// GetURL возвращает адрес и историю его проверок, новые первыми.
// Для неизвестного id возвращает storage.ErrNotFound.
func (s *AnalyzerService) GetURL(ctx context.Context, id int64) (u *model.URL, checks []model.URLCheck, err error) {
	err = s.withSession(ctx, func(sess storage.Session) error {
		if u, err = sess.URLByID(ctx, id); err != nil {
			return err
		}
		if checks, err = sess.ChecksForURL(ctx, id); err != nil {
			return fmt.Errorf("failed to list checks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return u, checks, nil
}

// CheckURL загружает страницу адреса и сохраняет результат проверки.
// Ошибка загрузки оборачивается в ErrFetchFailed, запись при этом не создаётся.
func (s *AnalyzerService) CheckURL(ctx context.Context, id int64) (*model.URLCheck, error) {
	var check *model.URLCheck
	err := s.withSession(ctx, func(sess storage.Session) error {
		u, err := sess.URLByID(ctx, id)
		if err != nil {
			return err
		}

		page, err := s.Fetcher.Fetch(ctx, u.Name)
		if err != nil {
			s.Logger.Warn("url check failed", zap.Int64("id", u.ID), zap.String("name", u.Name), zap.Error(err))
			return fmt.Errorf("%w: %w", ErrFetchFailed, err)
		}

		meta, err := extract.Extract(bytes.NewReader(page.Body))
		if err != nil {
			return fmt.Errorf("failed to parse page: %w", err)
		}

		check, err = sess.InsertCheck(ctx, model.URLCheck{
			URLID:       u.ID,
			StatusCode:  page.StatusCode,
			H1:          meta.H1,
			Title:       meta.Title,
			Description: meta.Description,
		})
		if err != nil {
			return fmt.Errorf("failed to save check: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("url checked", zap.Int64("id", id), zap.Int("status", check.StatusCode))
	return check, nil
}

// Ping проверяет доступность хранилища.
func (s *AnalyzerService) Ping(ctx context.Context) error {
	return s.Storage.Ping(ctx)
}
