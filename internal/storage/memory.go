package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Totarae/PageAnalyzer/internal/model"
)

// Memory потокобезопасное хранилище в памяти. Используется в тестах
// и повторяет ограничения таблиц urls и url_checks.
type Memory struct {
	mu     sync.RWMutex
	urls   []model.URL
	byName map[string]int
	checks []model.URLCheck
	now    func() time.Time
}

// NewMemory создаёт пустое хранилище.
func NewMemory() *Memory {
	return &Memory{
		byName: make(map[string]int),
		now:    time.Now,
	}
}

// SetClock подменяет источник времени.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Acquire для памяти сессией служит само хранилище.
func (m *Memory) Acquire(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *Memory) Release() {}

func (m *Memory) URLByName(_ context.Context, name string) (*model.URL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byName[name]
	if !ok {
		return nil, ErrNotFound
	}
	u := m.urls[i]
	return &u, nil
}

func (m *Memory) URLByID(_ context.Context, id int64) (*model.URL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if id < 1 || id > int64(len(m.urls)) {
		return nil, ErrNotFound
	}
	u := m.urls[id-1]
	return &u, nil
}

func (m *Memory) InsertURL(_ context.Context, name string) (*model.URL, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byName[name]; ok {
		return nil, ErrConflict
	}
	u := model.URL{
		ID:        int64(len(m.urls) + 1),
		Name:      name,
		CreatedAt: m.now(),
	}
	m.byName[name] = len(m.urls)
	m.urls = append(m.urls, u)
	return &u, nil
}

func (m *Memory) URLs(_ context.Context) ([]model.URL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.URL, 0, len(m.urls))
	for i := len(m.urls) - 1; i >= 0; i-- {
		out = append(out, m.urls[i])
	}
	return out, nil
}

func (m *Memory) ChecksForURL(_ context.Context, urlID int64) ([]model.URLCheck, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []model.URLCheck
	for _, c := range m.checks {
		if c.URLID == urlID {
			out = append(out, c)
		}
	}
	// как в PostgreSQL: created_at DESC NULLS LAST, id DESC
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CreatedAt, out[j].CreatedAt
		switch {
		case a == nil && b == nil:
			return out[i].ID > out[j].ID
		case a == nil || b == nil:
			return b == nil
		case !a.Equal(*b):
			return a.After(*b)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *Memory) Checks(_ context.Context) ([]model.URLCheck, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.URLCheck, len(m.checks))
	copy(out, m.checks)
	return out, nil
}

func (m *Memory) InsertCheck(_ context.Context, check model.URLCheck) (*model.URLCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if check.URLID < 1 || check.URLID > int64(len(m.urls)) {
		return nil, ErrNotFound
	}
	created := m.now()
	check.ID = int64(len(m.checks) + 1)
	check.CreatedAt = &created
	m.checks = append(m.checks, check)
	return &check, nil
}
