package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Totarae/PageAnalyzer/internal/fetch"
	"github.com/Totarae/PageAnalyzer/internal/flash"
	"github.com/Totarae/PageAnalyzer/internal/handlers"
	"github.com/Totarae/PageAnalyzer/internal/router"
	"github.com/Totarae/PageAnalyzer/internal/service"
	"github.com/Totarae/PageAnalyzer/internal/storage"
)

// Пример: добавление адреса через форму.
func ExampleHandler_CreateURL() {
	svc := service.NewAnalyzerService(storage.NewMemory(), fetch.New(time.Second), zap.NewNop())
	h, err := handlers.NewHandler(svc, flash.New("secret"), zap.NewNop())
	if err != nil {
		panic(err)
	}
	r := router.NewRouter(h, zap.NewNop())

	form := url.Values{"url": {"HTTPS://Example.com/about"}}
	req := httptest.NewRequest(http.MethodPost, "/urls", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	fmt.Println(rec.Code, rec.Header().Get("Location"))
	// Output: 302 /urls/1
}
