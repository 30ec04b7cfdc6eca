package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hernanbarrientos/escala-connect/pkg/db"
)

// mockEventsStore implements CreateEventsStore
type mockEventsStore struct {
	templates []db.ServiceTemplate
	replaced  []db.Event
	listErr   error
}

func (m *mockEventsStore) ListServiceTemplates(ctx context.Context, ministryID int64) ([]db.ServiceTemplate, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.templates, nil
}

func (m *mockEventsStore) ReplaceEventsForMonth(ctx context.Context, ministryID int64, year int, month time.Month, events []db.Event) (int, error) {
	m.replaced = events
	return len(events), nil
}

func TestCreateEvents_ExpandsWeeklyTemplates(t *testing.T) {
	store := &mockEventsStore{
		templates: []db.ServiceTemplate{
			{ID: 100, Name: "Culto de Domingo", Weekday: 0},
			{ID: 101, Name: "Culto de Quarta", Weekday: 3},
		},
	}

	// March 2026 has five Sundays and four Wednesdays
	result, err := CreateEvents(context.Background(), store, zap.NewNop(), 1, 2026, time.March)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TemplateCount)
	assert.Equal(t, 9, result.EventCount)
	require.Len(t, store.replaced, 9)

	sundays := 0
	for _, e := range store.replaced {
		assert.Equal(t, time.March, e.Date.Month())
		assert.Equal(t, 2026, e.Date.Year())
		if e.ServiceID == 100 {
			assert.Equal(t, time.Sunday, e.Date.Weekday())
			sundays++
		} else {
			assert.Equal(t, time.Wednesday, e.Date.Weekday())
		}
	}
	assert.Equal(t, 5, sundays)
}

func TestCreateEvents_FirstOccurrenceOnMonthStart(t *testing.T) {
	store := &mockEventsStore{
		templates: []db.ServiceTemplate{{ID: 100, Name: "Culto de Domingo", Weekday: 0}},
	}

	// 2026-03-01 is itself a Sunday and must be included
	_, err := CreateEvents(context.Background(), store, zap.NewNop(), 1, 2026, time.March)
	require.NoError(t, err)

	require.NotEmpty(t, store.replaced)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), store.replaced[0].Date)
}

func TestCreateEvents_NoTemplates(t *testing.T) {
	store := &mockEventsStore{}

	_, err := CreateEvents(context.Background(), store, zap.NewNop(), 1, 2026, time.March)
	assert.Error(t, err)
	assert.Empty(t, store.replaced)
}

func TestCreateEvents_InvalidWeekday(t *testing.T) {
	store := &mockEventsStore{
		templates: []db.ServiceTemplate{{ID: 100, Name: "Quebrado", Weekday: 9}},
	}

	_, err := CreateEvents(context.Background(), store, zap.NewNop(), 1, 2026, time.March)
	assert.Error(t, err)
}
