// Package util содержит нормализацию и проверку пользовательских URL.
package util

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// MaxURLLength ограничение длины urls.name.
const MaxURLLength = 255

var (
	ErrEmptyURL   = errors.New("URL is empty")
	ErrURLTooLong = errors.New("URL is too long")
	ErrInvalidURL = errors.New("invalid URL")
)

// NormalizeURL сводит адрес к виду scheme://host, отбрасывая путь, запрос,
// фрагмент и учётные данные. Схема и хост приводятся к нижнему регистру,
// IDN-хост переводится в punycode.
//
// Функция никогда не возвращает ошибку: для неразбираемого ввода результат
// просто не пройдёт ValidateURL.
func NormalizeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Host)
	if hostname := u.Hostname(); hostname != "" && net.ParseIP(hostname) == nil {
		if ascii, err := idna.Lookup.ToASCII(hostname); err == nil {
			host = strings.Replace(host, strings.ToLower(hostname), ascii, 1)
		}
	}
	return scheme + "://" + host
}

// ValidateURL проверяет нормализованный адрес: схема http или https,
// непустой хост (IP, localhost или доменное имя с точкой), длина не больше MaxURLLength.
func ValidateURL(name string) error {
	if utf8.RuneCountInString(name) > MaxURLLength {
		return ErrURLTooLong
	}

	u, err := url.ParseRequestURI(name)
	if err != nil {
		return ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}

	hostname := u.Hostname()
	switch {
	case hostname == "":
		return ErrInvalidURL
	case hostname == "localhost", net.ParseIP(hostname) != nil:
		return nil
	case !strings.Contains(hostname, "."), strings.HasPrefix(hostname, "."), strings.HasSuffix(hostname, "."):
		return ErrInvalidURL
	}

	for _, label := range strings.Split(hostname, ".") {
		if label == "" || !validLabel(label) {
			return ErrInvalidURL
		}
	}
	return nil
}

func validLabel(label string) bool {
	if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
		return false
	}
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
