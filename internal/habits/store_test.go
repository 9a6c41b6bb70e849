package habits

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/momentum/internal/clock"
	"github.com/julianstephens/momentum/internal/models"
)

// memStore keeps completions keyed by habit then day, mirroring the unique (habit_id, day) index.
type memStore struct {
	mu   sync.Mutex
	rows map[string]map[string]models.Completion
}

func newMemStore() *memStore {
	return &memStore{rows: map[string]map[string]models.Completion{}}
}

func (m *memStore) AddCompletion(c models.Completion) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	days, ok := m.rows[c.HabitID]
	if !ok {
		days = map[string]models.Completion{}
		m.rows[c.HabitID] = days
	}
	if _, exists := days[c.Day]; exists {
		return false, nil
	}
	days[c.Day] = c
	return true, nil
}

func (m *memStore) HasCompletion(habitID, startDay, endDay string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for day := range m.rows[habitID] {
		if day >= startDay && day <= endDay {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) GetCompletionsForHabit(habitID string) ([]models.Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Completion, 0, len(m.rows[habitID]))
	for _, c := range m.rows[habitID] {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

func (m *memStore) DeleteCompletionsInRange(habitID, startDay, endDay string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for day := range m.rows[habitID] {
		if day >= startDay && day <= endDay {
			delete(m.rows[habitID], day)
			n++
		}
	}
	return n, nil
}

func (m *memStore) days(habitID string) []string {
	cs, _ := m.GetCompletionsForHabit(habitID)
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Day)
	}
	return out
}

func (m *memStore) seed(t *testing.T, h models.Habit, days ...string) {
	t.Helper()
	for _, d := range days {
		created, err := m.AddCompletion(models.Completion{ID: uuid.NewString(), HabitID: h.ID, Day: d})
		require.NoError(t, err)
		require.True(t, created, "duplicate seed day %s", d)
	}
}

func newHabit(name string, cadence models.Cadence, category models.Category, createdDay string) models.Habit {
	created, err := time.Parse("2006-01-02", createdDay)
	if err != nil {
		panic(err)
	}
	return models.Habit{
		ID:        uuid.NewString(),
		OwnerID:   "owner",
		Name:      name,
		Cadence:   cadence,
		Category:  category,
		CreatedAt: created.Add(9 * time.Hour),
	}
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// 2024-03-13 is a Wednesday; its ISO week starts 2024-03-11.
const wednesday = "2024-03-13"

func newTestEngine(today string) (*Engine, *memStore) {
	store := newMemStore()
	return NewEngine(store, clock.MustParse(today)), store
}

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}
