// Package scheduler assigns volunteers to a month's open slots. It is a pure
// in-memory allocator: callers load the snapshot, run Generate, and persist
// the result. Runs are single-threaded and run-to-completion; callers must
// serialize concurrent generations for the same (ministry, month).
package scheduler

import (
	"math/rand"
	"sort"
	"time"
)

// Generate expands the slot pool and runs the group phase followed by the
// tiered individual phase. Slots still open afterwards are reported, not
// treated as errors. The only nondeterminism is Input.Rand.
func Generate(in Input) *Result {
	rng := in.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := newState(in, rng)
	s.openSlots = ExpandSlots(in.Events, s.roles, in.Quotas)
	s.result.TotalSlots = len(s.openSlots)

	if s.result.TotalSlots == 0 {
		return &s.result
	}

	s.allocateGroups()
	s.allocateIndividuals()

	s.result.OpenSlots = s.remainingSlots()
	return &s.result
}

// remainingSlots snapshots the open pool in stable key order
func (s *state) remainingSlots() []Slot {
	out := make([]Slot, 0, len(s.openSlots))
	for _, slot := range s.openSlots {
		out = append(out, *slot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
