package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hernanbarrientos/escala-connect/pkg/core/services"
)

func TestSlotLabel(t *testing.T) {
	tests := []struct {
		name     string
		slot     services.ScheduleSlot
		expected string
	}{
		{"single opening keeps plain name", services.ScheduleSlot{RoleName: "Leader", Instance: 1}, "Leader"},
		{"second opening is numbered", services.ScheduleSlot{RoleName: "Helper", Instance: 2}, "Helper 2"},
		{"third opening is numbered", services.ScheduleSlot{RoleName: "Helper", Instance: 3}, "Helper 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slotLabel(tt.slot))
		})
	}
}

func TestParseCommandLine(t *testing.T) {
	args, err := parseCommandLine(`generateSchedule 2026-03 --seed 42`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"generateSchedule", "2026-03", "--seed", "42"}, args)

	args, err = parseCommandLine(`viewSchedule "2026-03"`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"viewSchedule", "2026-03"}, args)

	_, err = parseCommandLine(`viewSchedule "2026-03`)
	assert.Error(t, err)
}
