package model

import "time"

// URL добавленный пользователем адрес, сведённый к scheme://host.
type URL struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Date дата добавления без времени.
func (u URL) Date() string {
	return u.CreatedAt.Format(time.DateOnly)
}
