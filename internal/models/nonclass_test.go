package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonClassAddTimeslotIdempotent(t *testing.T) {
	activity := NewNonClass("Gym")
	start := ReferenceMonday.Add(17 * time.Hour)
	end := start.Add(time.Hour)

	require.NoError(t, activity.AddTimeslot(start, end))
	require.NoError(t, activity.AddTimeslot(start, end))

	assert.Len(t, activity.Timeslots(), 1, "duplicate insert is a silent no-op")
}

func TestNonClassRemoveTimeslotByRange(t *testing.T) {
	activity := NewNonClass("Club")
	require.NoError(t, activity.AddTimeslot(ReferenceMonday.Add(10*time.Hour), ReferenceMonday.Add(11*time.Hour)))
	require.NoError(t, activity.AddTimeslot(ReferenceMonday.Add(14*time.Hour), ReferenceMonday.Add(15*time.Hour)))

	require.NoError(t, activity.RemoveTimeslot(NewTimeslot(4, 2)))
	require.Len(t, activity.Timeslots(), 1)
	assert.Equal(t, NewTimeslot(12, 2), activity.Timeslots()[0])

	// Removing an absent slot is a silent no-op.
	require.NoError(t, activity.RemoveTimeslot(NewTimeslot(100, 1)))
	assert.Len(t, activity.Timeslots(), 1)
}

func TestNonClassHoursSumOwnedSlots(t *testing.T) {
	activity := NewNonClass("Research")
	require.NoError(t, activity.AddTimeslot(ReferenceMonday.Add(10*time.Hour), ReferenceMonday.Add(11*time.Hour)))
	require.NoError(t, activity.AddTimeslot(ReferenceMonday.AddDate(0, 0, 3).Add(9*time.Hour), ReferenceMonday.AddDate(0, 0, 3).Add(10*time.Hour+30*time.Minute)))

	assert.Equal(t, 2.5, activity.Hours())
}

func TestNonClassEventsSingleBundle(t *testing.T) {
	activity := NewNonClass("Office Hours")
	require.NoError(t, activity.AddTimeslot(ReferenceMonday.Add(13*time.Hour), ReferenceMonday.Add(14*time.Hour)))

	events := activity.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Office Hours", events[0].Name)
	assert.Empty(t, events[0].Room)
	assert.Len(t, events[0].Slots, 1)

	instances := events[0].Render()
	require.Len(t, instances, 1)
	assert.Equal(t, DefaultEventColor, instances[0].Color, "no explicit color falls back to the default")
	assert.Equal(t, activity.ID(), instances[0].ActivityID)
}

func TestNonClassIdentity(t *testing.T) {
	a := NewNonClass("A")
	b := NewNonClass("B")

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	// UUIDs never look like catalog numbers ("6.006"), keeping the two
	// identifier namespaces disjoint.
	assert.NotContains(t, a.ID(), ".")

	a.Rename("A2")
	assert.Equal(t, "A2", a.Name())
}
