package handlers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// serverError единая точка обработки непредвиденных ошибок: причина уходит
// в лог вместе с номером инцидента, пользователь видит только номер.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	incident := uuid.NewString()
	h.Logger.Error("internal error",
		zap.String("incident", incident),
		zap.String("method", r.Method),
		zap.String("uri", r.RequestURI),
		zap.Error(err),
	)
	h.render(w, http.StatusInternalServerError, pageError, viewData{Incident: incident})
}

// Recoverer перехватывает панику обработчика и отдаёт страницу 500.
func (h *Handler) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			h.Logger.Error("panic recovered", zap.Any("panic", rec), zap.Stack("stack"))
			h.serverError(w, r, fmt.Errorf("panic: %v", rec))
		}()
		next.ServeHTTP(w, r)
	})
}
