package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/Totarae/PageAnalyzer/internal/flash"
	"github.com/Totarae/PageAnalyzer/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageIndex    = "index.html"
	pageURLs     = "urls.html"
	pageURL      = "url.html"
	pageNotFound = "404.html"
	pageError    = "500.html"
)

type pages map[string]*template.Template

// viewData общие данные для всех страниц.
type viewData struct {
	Messages []flash.Message
	URL      string
	URLs     []model.URLSummary
	Item     *model.URL
	Checks   []model.URLCheck
	Incident string
}

func parsePages() (pages, error) {
	p := make(pages)
	for _, name := range []string{pageIndex, pageURLs, pageURL, pageNotFound, pageError} {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		p[name] = tmpl
	}
	return p, nil
}

// render выполняет шаблон в буфер, чтобы ошибка шаблона не оставила
// клиенту наполовину записанную страницу.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data viewData) {
	var buf bytes.Buffer
	if err := h.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		h.Logger.Error("failed to render template", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
