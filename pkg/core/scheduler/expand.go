package scheduler

import (
	"github.com/hernanbarrientos/escala-connect/pkg/core/model"
)

// ExpandSlots turns (event x role quota) tuples into the flat open-slot pool.
// For every event, every role with a positive quota on the event's template
// emits one slot per required unit, instances numbered from 1. Quotas that
// reference roles the ministry no longer has are skipped.
func ExpandSlots(events []model.Event, roles map[int64]model.Role, quotas map[int64]map[int64]int) map[string]*Slot {
	pool := make(map[string]*Slot)

	for _, ev := range events {
		for roleID, quantity := range quotas[ev.ServiceID] {
			if _, ok := roles[roleID]; !ok {
				continue
			}
			for i := 1; i <= quantity; i++ {
				key := SlotKey(ev.ID, roleID, i)
				pool[key] = &Slot{
					Key:       key,
					EventID:   ev.ID,
					ServiceID: ev.ServiceID,
					Date:      ev.Date,
					RoleID:    roleID,
					Instance:  i,
				}
			}
		}
	}

	return pool
}
