// Package extract достаёт из HTML-страницы h1, title и meta description.
package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxLength ограничение длины каждого поля (varchar(255) в url_checks).
const MaxLength = 255

// Meta метаданные страницы. Отсутствующие элементы дают пустую строку.
type Meta struct {
	H1          string
	Title       string
	Description string
}

// Extract разбирает разметку из r. Парсер терпим к битому HTML,
// ошибка возвращается только если не удалось прочитать r.
func Extract(r io.Reader) (Meta, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Meta{}, fmt.Errorf("parse html: %w", err)
	}
	return FromDocument(doc), nil
}

// FromDocument извлекает метаданные из уже разобранного документа.
func FromDocument(doc *goquery.Document) Meta {
	var description string
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if name, ok := s.Attr("name"); ok && strings.EqualFold(name, "description") {
			description = s.AttrOr("content", "")
			return false
		}
		return true
	})

	return Meta{
		H1:          truncate(strings.TrimSpace(doc.Find("h1").First().Text())),
		Title:       truncate(strings.TrimSpace(doc.Find("title").First().Text())),
		Description: truncate(description),
	}
}

func truncate(s string) string {
	if len(s) <= MaxLength {
		return s
	}
	runes := []rune(s)
	if len(runes) <= MaxLength {
		return s
	}
	return string(runes[:MaxLength])
}
