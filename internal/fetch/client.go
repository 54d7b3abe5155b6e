// Package fetch загружает страницы проверяемых адресов.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxBodySize сколько байт тела страницы читается для разбора.
const MaxBodySize = 5 << 20

const userAgent = "PageAnalyzer/1.0 (+https://github.com/Totarae/PageAnalyzer)"

// Page ответ проверяемого адреса.
type Page struct {
	StatusCode int
	Body       []byte
}

// StatusError ответ с кодом вне диапазона 2xx.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Client одна попытка GET без повторов. Редиректы выполняются стандартным клиентом.
type Client struct {
	c *http.Client
}

// New создаёт клиента с общим таймаутом запроса.
func New(timeout time.Duration) *Client {
	return &Client{c: &http.Client{Timeout: timeout}}
}

// Fetch выполняет GET по адресу и читает тело ответа.
// Ошибка сети, таймаут и код не 2xx возвращаются как ошибка.
func (c *Client) Fetch(ctx context.Context, url string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodySize))
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return &Page{StatusCode: resp.StatusCode, Body: body}, nil
}
