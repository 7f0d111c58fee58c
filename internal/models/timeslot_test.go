package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeslotConflictsSymmetricAndReflexive(t *testing.T) {
	a := NewTimeslot(18, 3)
	b := NewTimeslot(20, 2)

	assert.True(t, a.Conflicts(a))
	assert.Equal(t, a.Conflicts(b), b.Conflicts(a))

	c := NewTimeslot(40, 1)
	assert.Equal(t, a.Conflicts(c), c.Conflicts(a))
}

func TestTimeslotEndSlotAndHours(t *testing.T) {
	slot := NewTimeslot(18, 3)
	assert.Equal(t, 20, slot.EndSlot())
	assert.Equal(t, 1.5, slot.Hours())
}

func TestTimeslotConflictBoundaries(t *testing.T) {
	base := NewTimeslot(18, 3) // slots 18..20 inclusive

	assert.True(t, base.Conflicts(NewTimeslot(20, 2)), "touching inclusive end must conflict")
	assert.False(t, base.Conflicts(NewTimeslot(21, 2)), "starting past inclusive end must not conflict")
}

func TestTimeslotEqualIsRangeEquality(t *testing.T) {
	assert.True(t, NewTimeslot(10, 2).Equal(NewTimeslot(10, 2)))
	assert.False(t, NewTimeslot(10, 2).Equal(NewTimeslot(10, 3)))
	assert.False(t, NewTimeslot(10, 2).Equal(NewTimeslot(11, 2)))
}

func TestTimeslotString(t *testing.T) {
	// Slot 4 on day 0 starts at 10:00 AM Monday.
	assert.Equal(t, "Mon, 10:00 AM – 11:00 AM", NewTimeslot(4, 2).String())
	// Slot 30 is the first slot of Tuesday.
	assert.Equal(t, "Tue, 8:00 AM – 8:30 AM", NewTimeslot(30, 1).String())
	// The last slot of a day ends at 11:00 PM, not the next morning.
	assert.Equal(t, "Mon, 10:30 PM – 11:00 PM", NewTimeslot(29, 1).String())
}

func TestNewTimeslotFromInstantsEndExclusive(t *testing.T) {
	start := ReferenceMonday.Add(10 * time.Hour)
	end := ReferenceMonday.Add(11 * time.Hour)

	slot := NewTimeslotFromInstants(start, end)
	require.Equal(t, 4, slot.StartSlot)
	// The instant form treats the end as exclusive: 10:00-11:00 is two
	// half-hour slots, while the slot-range getter stays inclusive.
	assert.Equal(t, 2, slot.NumSlots)
	assert.Equal(t, 5, slot.EndSlot())
}

func TestNewTimeslotFromInstantsDegeneratePair(t *testing.T) {
	start := ReferenceMonday.Add(10 * time.Hour)

	// Equal instants round to the same slot; the constructor still yields
	// one slot rather than an empty range.
	slot := NewTimeslotFromInstants(start, start)
	assert.Equal(t, 4, slot.StartSlot)
	assert.Equal(t, 1, slot.NumSlots)

	// Same for an inverted pair.
	slot = NewTimeslotFromInstants(start, start.Add(-time.Hour))
	assert.Equal(t, 4, slot.StartSlot)
	assert.Equal(t, 1, slot.NumSlots)
}

func TestNewTimeslotFromInstantsRoundsToNearestHalfHour(t *testing.T) {
	start := ReferenceMonday.Add(10*time.Hour + 10*time.Minute) // rounds down to 10:00
	end := ReferenceMonday.Add(11*time.Hour + 20*time.Minute)   // rounds up to 11:30

	slot := NewTimeslotFromInstants(start, end)
	assert.Equal(t, 4, slot.StartSlot)
	assert.Equal(t, 3, slot.NumSlots)
}

func TestNewTimeslotFromInstantsOtherDays(t *testing.T) {
	start := ReferenceMonday.AddDate(0, 0, 2).Add(9 * time.Hour) // Wednesday 9:00
	end := start.Add(90 * time.Minute)

	slot := NewTimeslotFromInstants(start, end)
	assert.Equal(t, 2*SlotsPerDay+2, slot.StartSlot)
	assert.Equal(t, 3, slot.NumSlots)
	assert.Equal(t, 2, slot.Day())
}

func TestTimeslotInstantRoundTrip(t *testing.T) {
	slot := NewTimeslot(64, 2) // Wednesday 10:00-11:00

	assert.Equal(t, slot, NewTimeslotFromInstants(slot.StartTime(), slot.EndTime()))
	assert.Equal(t, time.Wednesday, slot.StartTime().Weekday())
}
