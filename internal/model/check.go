package model

import "time"

// URLCheck одна проверка страницы: код ответа и метаданные.
// CreatedAt может отсутствовать (NULL в url_checks.created_at).
type URLCheck struct {
	ID          int64      `db:"id"`
	URLID       int64      `db:"url_id"`
	StatusCode  int        `db:"status_code"`
	H1          string     `db:"h1"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	CreatedAt   *time.Time `db:"created_at"`
}

// Date дата проверки без времени, пустая строка если время неизвестно.
func (c URLCheck) Date() string {
	if c.CreatedAt == nil {
		return ""
	}
	return c.CreatedAt.Format(time.DateOnly)
}
