// Package lastcheck сводит историю проверок к последней проверке каждого адреса.
package lastcheck

import (
	"time"

	"github.com/Totarae/PageAnalyzer/internal/model"
)

// Aggregate возвращает по одной сводке на каждый адрес из urls в том же порядке.
//
// Проверки разбиваются по url_id за один проход, в каждой группе остаётся
// проверка с максимальным CreatedAt. При равных CreatedAt побеждает проверка,
// встретившаяся в checks последней. Проверки без CreatedAt не участвуют в выборе,
// проверки несуществующих адресов игнорируются.
//
// Время и память O(len(urls) + len(checks)). Входные срезы не изменяются.
func Aggregate(urls []model.URL, checks []model.URLCheck) []model.URLSummary {
	latest := make(map[int64]*model.URLCheck, len(urls))
	for i := range checks {
		c := &checks[i]
		if c.CreatedAt == nil {
			continue
		}
		if cur, ok := latest[c.URLID]; ok && c.CreatedAt.Before(*cur.CreatedAt) {
			continue
		}
		latest[c.URLID] = c
	}

	summaries := make([]model.URLSummary, 0, len(urls))
	for _, u := range urls {
		s := model.URLSummary{ID: u.ID, Name: u.Name}
		if c, ok := latest[u.ID]; ok {
			s.LastCheck = &model.LastCheck{
				StatusCode: c.StatusCode,
				Date:       c.CreatedAt.Format(time.DateOnly),
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}
