package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Totarae/PageAnalyzer/internal/flash"
	"github.com/Totarae/PageAnalyzer/internal/model"
	"github.com/Totarae/PageAnalyzer/internal/service"
	"github.com/Totarae/PageAnalyzer/internal/storage"
	"github.com/Totarae/PageAnalyzer/internal/util"
)

// Тексты сообщений пользователю.
const (
	msgURLAdded     = "Страница успешно добавлена"
	msgURLExists    = "Страница уже существует"
	msgInvalidURL   = "Некорректный URL"
	msgURLRequired  = "URL обязателен"
	msgURLTooLong   = "URL превышает 255 символов"
	msgCheckSuccess = "Страница успешно проверена"
	msgCheckFailed  = "Произошла ошибка при проверке"
)

// Analyzer операции, которые нужны обработчикам.
type Analyzer interface {
	AddURL(ctx context.Context, raw string) (*model.URL, bool, error)
	ListURLs(ctx context.Context) ([]model.URLSummary, error)
	GetURL(ctx context.Context, id int64) (*model.URL, []model.URLCheck, error)
	CheckURL(ctx context.Context, id int64) (*model.URLCheck, error)
	Ping(ctx context.Context) error
}

type Handler struct {
	Service Analyzer
	Flash   *flash.Flash
	Logger  *zap.Logger
	pages   pages
}

// NewHandler разбирает шаблоны страниц и собирает обработчики.
func NewHandler(svc Analyzer, fl *flash.Flash, logger *zap.Logger) (*Handler, error) {
	p, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Handler{
		Service: svc,
		Flash:   fl,
		Logger:  logger,
		pages:   p,
	}, nil
}

// Index GET / форма добавления адреса.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, pageIndex, viewData{Messages: h.Flash.Pop(w, r)})
}

// CreateURL POST /urls
func (h *Handler) CreateURL(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("url")

	u, created, err := h.Service.AddURL(r.Context(), raw)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			messages := append(h.Flash.Pop(w, r), flash.Message{Category: flash.Danger, Text: msg})
			h.render(w, http.StatusUnprocessableEntity, pageIndex, viewData{
				Messages: messages,
				URL:      raw,
			})
			return
		}
		h.serverError(w, r, err)
		return
	}

	if created {
		h.Flash.Set(w, flash.Message{Category: flash.Success, Text: msgURLAdded})
	} else {
		h.Flash.Set(w, flash.Message{Category: flash.Warning, Text: msgURLExists})
	}
	http.Redirect(w, r, urlPath(u.ID), http.StatusFound)
}

// ListURLs GET /urls
func (h *Handler) ListURLs(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Service.ListURLs(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, http.StatusOK, pageURLs, viewData{
		Messages: h.Flash.Pop(w, r),
		URLs:     summaries,
	})
}

// ShowURL GET /urls/{id}
func (h *Handler) ShowURL(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	u, checks, err := h.Service.GetURL(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.render(w, http.StatusOK, pageURL, viewData{
		Messages: h.Flash.Pop(w, r),
		Item:     u,
		Checks:   checks,
	})
}

// CheckURL POST /urls/{id}/checks
func (h *Handler) CheckURL(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	_, err := h.Service.CheckURL(r.Context(), id)
	switch {
	case err == nil:
		h.Flash.Set(w, flash.Message{Category: flash.Success, Text: msgCheckSuccess})
	case errors.Is(err, storage.ErrNotFound):
		h.NotFound(w, r)
		return
	case errors.Is(err, service.ErrFetchFailed):
		h.Flash.Set(w, flash.Message{Category: flash.Danger, Text: msgCheckFailed})
	default:
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, urlPath(id), http.StatusFound)
}

// Ping GET /ping проверяет соединение с БД.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Ping(r.Context()); err != nil {
		h.Logger.Error("database ping failed", zap.Error(err))
		http.Error(w, "database unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// NotFound страница 404.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, pageNotFound, viewData{})
}

func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, util.ErrEmptyURL):
		return msgURLRequired, true
	case errors.Is(err, util.ErrURLTooLong):
		return msgURLTooLong, true
	case errors.Is(err, util.ErrInvalidURL):
		return msgInvalidURL, true
	}
	return "", false
}

func urlID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func urlPath(id int64) string {
	return fmt.Sprintf("/urls/%d", id)
}
