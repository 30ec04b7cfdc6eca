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

// mockViewStore implements ViewScheduleStore
type mockViewStore struct {
	entries []db.ScheduleEntry
}

func (m *mockViewStore) GetSchedule(ctx context.Context, ministryID int64, year int, month time.Month) ([]db.ScheduleEntry, error) {
	return m.entries, nil
}

func TestViewSchedule_GroupsByEvent(t *testing.T) {
	mar1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mar8 := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	store := &mockViewStore{
		entries: []db.ScheduleEntry{
			{EventID: 10, Date: mar1, ServiceName: "Culto de Domingo", RoleID: 1, RoleName: "Leader", Instance: 1, VolunteerID: 1, VolunteerName: "Ana"},
			{EventID: 10, Date: mar1, ServiceName: "Culto de Domingo", RoleID: 2, RoleName: "Helper", Instance: 1, VolunteerID: 2, VolunteerName: "Bruno"},
			{EventID: 10, Date: mar1, ServiceName: "Culto de Domingo", RoleID: 2, RoleName: "Helper", Instance: 2},
			{EventID: 11, Date: mar8, ServiceName: "Culto de Domingo", RoleID: 1, RoleName: "Leader", Instance: 1},
		},
	}

	result, err := ViewSchedule(context.Background(), store, zap.NewNop(), 1, 2026, time.March)
	require.NoError(t, err)

	require.Len(t, result.Days, 2)
	assert.Equal(t, 2, result.FilledCount)
	assert.Equal(t, 2, result.VacantCount)

	first := result.Days[0]
	assert.Equal(t, int64(10), first.EventID)
	assert.Equal(t, "Culto de Domingo", first.ServiceName)
	require.Len(t, first.Slots, 3)
	assert.Equal(t, "Ana", first.Slots[0].Display())
	assert.Equal(t, VacantLabel, first.Slots[2].Display())

	second := result.Days[1]
	require.Len(t, second.Slots, 1)
	assert.False(t, second.Slots[0].Filled())
	assert.Equal(t, VacantLabel, second.Slots[0].Display())
}

func TestViewSchedule_EmptyMonth(t *testing.T) {
	store := &mockViewStore{}

	result, err := ViewSchedule(context.Background(), store, zap.NewNop(), 1, 2026, time.March)
	require.NoError(t, err)

	assert.Empty(t, result.Days)
	assert.Zero(t, result.FilledCount)
	assert.Zero(t, result.VacantCount)
}
