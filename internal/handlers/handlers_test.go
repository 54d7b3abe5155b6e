package handlers_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Totarae/PageAnalyzer/internal/fetch"
	"github.com/Totarae/PageAnalyzer/internal/flash"
	"github.com/Totarae/PageAnalyzer/internal/handlers"
	"github.com/Totarae/PageAnalyzer/internal/model"
	"github.com/Totarae/PageAnalyzer/internal/router"
	"github.com/Totarae/PageAnalyzer/internal/service"
	"github.com/Totarae/PageAnalyzer/internal/storage"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T, svc handlers.Analyzer) http.Handler {
	t.Helper()
	h, err := handlers.NewHandler(svc, flash.New(testSecret), zap.NewNop())
	require.NoError(t, err)
	return router.NewRouter(h, zap.NewNop())
}

func newTestApp(t *testing.T) (http.Handler, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	svc := service.NewAnalyzerService(mem, fetch.New(2*time.Second), zap.NewNop())
	return newTestRouter(t, svc), mem
}

func postForm(t *testing.T, h http.Handler, target string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Result()
}

// get выполняет GET, передавая куки предыдущего ответа.
func get(t *testing.T, h http.Handler, target string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	resp := rec.Result()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, string(body)
}

func urlCount(t *testing.T, mem *storage.Memory) int {
	t.Helper()
	urls, err := mem.URLs(context.Background())
	require.NoError(t, err)
	return len(urls)
}

func TestIndex(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := get(t, app, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, `action="/urls"`)
	assert.Contains(t, body, `name="url"`)
}

func TestCreateURL_SameURLTwice(t *testing.T) {
	app, mem := newTestApp(t)

	first := postForm(t, app, "/urls", url.Values{"url": {"https://Example.com/path?q=1"}})
	defer first.Body.Close()
	require.Equal(t, http.StatusFound, first.StatusCode)
	assert.Equal(t, "/urls/1", first.Header.Get("Location"))

	_, body := get(t, app, "/urls/1", first.Cookies()...)
	assert.Contains(t, body, "Страница успешно добавлена")
	assert.Contains(t, body, "https://example.com")

	second := postForm(t, app, "/urls", url.Values{"url": {"https://example.com"}})
	defer second.Body.Close()
	require.Equal(t, http.StatusFound, second.StatusCode)
	assert.Equal(t, "/urls/1", second.Header.Get("Location"))

	_, body = get(t, app, "/urls/1", second.Cookies()...)
	assert.Contains(t, body, "Страница уже существует")

	assert.Equal(t, 1, urlCount(t, mem))
}

func TestCreateURL_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		message string
	}{
		{name: "not a url", value: "not a url", message: "Некорректный URL"},
		{name: "empty", value: "", message: "URL обязателен"},
		{name: "too long", value: "https://" + strings.Repeat("a", 250) + ".com", message: "URL превышает 255 символов"},
		{name: "ftp scheme", value: "ftp://example.com", message: "Некорректный URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, mem := newTestApp(t)

			resp := postForm(t, app, "/urls", url.Values{"url": {tt.value}})
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			assert.Contains(t, string(body), tt.message)
			assert.Empty(t, resp.Header.Get("Location"))
			assert.Equal(t, 0, urlCount(t, mem))
		})
	}
}

func TestFlashShownOnce(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postForm(t, app, "/urls", url.Values{"url": {"https://example.com"}})
	defer resp.Body.Close()

	page, body := get(t, app, "/urls/1", resp.Cookies()...)
	assert.Contains(t, body, "Страница успешно добавлена")

	var cleared bool
	for _, c := range page.Cookies() {
		if c.Name == "flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "flash cookie must be cleared after being shown")

	_, body = get(t, app, "/urls/1")
	assert.NotContains(t, body, "Страница успешно добавлена")
}

func TestCreateURL_InvalidConsumesPendingFlash(t *testing.T) {
	app, _ := newTestApp(t)

	added := postForm(t, app, "/urls", url.Values{"url": {"https://example.com"}})
	defer added.Body.Close()

	req := httptest.NewRequest(http.MethodPost, "/urls", strings.NewReader(url.Values{"url": {"not a url"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range added.Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	resp := rec.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := rec.Body.String()
	assert.Contains(t, body, "Страница успешно добавлена")
	assert.Contains(t, body, "Некорректный URL")

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == "flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "pending flash must be cleared by the 422 page")
}

func TestForgedFlashIgnored(t *testing.T) {
	app, _ := newTestApp(t)

	forged := flash.New("other-secret").Encode([]flash.Message{{Category: flash.Success, Text: "взлом"}})
	_, body := get(t, app, "/", &http.Cookie{Name: "flash", Value: forged})

	assert.NotContains(t, body, "взлом")
}

func TestListURLs(t *testing.T) {
	app, mem := newTestApp(t)
	ctx := context.Background()

	first, err := mem.InsertURL(ctx, "https://example.com")
	require.NoError(t, err)
	_, err = mem.InsertURL(ctx, "https://go.dev")
	require.NoError(t, err)
	_, err = mem.InsertCheck(ctx, model.URLCheck{URLID: first.ID, StatusCode: 204})
	require.NoError(t, err)

	resp, body := get(t, app, "/urls")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<a href="/urls/1">https://example.com</a>`)
	assert.Contains(t, body, `<a href="/urls/2">https://go.dev</a>`)
	assert.Contains(t, body, "<td>204</td>")
	// новые адреса первыми
	assert.Less(t, strings.Index(body, "https://go.dev"), strings.Index(body, "https://example.com"))
}

func TestShowURL_NotFound(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/urls/999", "/urls/abc", "/urls/0", "/missing"} {
		t.Run(path, func(t *testing.T) {
			resp, body := get(t, app, path)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.Contains(t, body, "Страница не найдена")
		})
	}
}

func TestCheckURL_Success(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, `<html><head><title>Заголовок</title>
<meta name="description" content="Описание"></head><body><h1>Привет</h1></body></html>`)
	}))
	defer upstream.Close()

	app, mem := newTestApp(t)
	u, err := mem.InsertURL(context.Background(), upstream.URL)
	require.NoError(t, err)

	resp := postForm(t, app, "/urls/1/checks", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/urls/1", resp.Header.Get("Location"))

	_, body := get(t, app, "/urls/1", resp.Cookies()...)
	assert.Contains(t, body, "Страница успешно проверена")
	assert.Contains(t, body, "Привет")
	assert.Contains(t, body, "Заголовок")
	assert.Contains(t, body, "Описание")

	checks, err := mem.ChecksForURL(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Len(t, checks, 1)
}

func TestCheckURL_UnreachableHost(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	addr := upstream.URL
	upstream.Close()

	app, mem := newTestApp(t)
	u, err := mem.InsertURL(context.Background(), addr)
	require.NoError(t, err)

	resp := postForm(t, app, "/urls/1/checks", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	_, body := get(t, app, "/urls/1", resp.Cookies()...)
	assert.Contains(t, body, "Произошла ошибка при проверке")

	checks, err := mem.ChecksForURL(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Empty(t, checks)
}

func TestCheckURL_UnknownID(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postForm(t, app, "/urls/42/checks", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPing(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := get(t, app, "/ping")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body)
}

// stubAnalyzer позволяет смоделировать сбои сервиса.
type stubAnalyzer struct {
	listErr  error
	panicMsg string
	pingErr  error
}

func (s *stubAnalyzer) AddURL(context.Context, string) (*model.URL, bool, error) {
	return nil, false, errors.New("not implemented")
}

func (s *stubAnalyzer) ListURLs(context.Context) ([]model.URLSummary, error) {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return nil, s.listErr
}

func (s *stubAnalyzer) GetURL(context.Context, int64) (*model.URL, []model.URLCheck, error) {
	return nil, nil, errors.New("connection reset")
}

func (s *stubAnalyzer) CheckURL(context.Context, int64) (*model.URLCheck, error) {
	return nil, errors.New("connection reset")
}

func (s *stubAnalyzer) Ping(context.Context) error {
	return s.pingErr
}

func TestInternalErrorPage(t *testing.T) {
	app := newTestRouter(t, &stubAnalyzer{listErr: errors.New("pq: password authentication failed")})

	resp, body := get(t, app, "/urls")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "Внутренняя ошибка сервера")
	assert.Contains(t, body, "Номер инцидента")
	assert.NotContains(t, body, "password")
}

func TestPanicRecovered(t *testing.T) {
	app := newTestRouter(t, &stubAnalyzer{panicMsg: "boom"})

	resp, body := get(t, app, "/urls")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "Внутренняя ошибка сервера")
	assert.NotContains(t, body, "boom")
}

func TestCheckURL_StorageFailure(t *testing.T) {
	app := newTestRouter(t, &stubAnalyzer{})

	resp := postForm(t, app, "/urls/1/checks", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestPing_DatabaseDown(t *testing.T) {
	app := newTestRouter(t, &stubAnalyzer{pingErr: errors.New("dial tcp: refused")})

	resp, _ := get(t, app, "/ping")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
