package models

import (
	"time"

	"github.com/google/uuid"
)

// NonClass is a user-created activity that owns its Timeslots directly; a
// personal event has no alternatives, so there is no group/section layer.
type NonClass struct {
	id              string
	name            string
	backgroundColor string
	slots           []Timeslot
}

// NewNonClass creates a personal activity. The identifier is a random UUID,
// which cannot collide with the catalog numbering namespace.
func NewNonClass(name string) *NonClass {
	return &NonClass{id: uuid.NewString(), name: name}
}

// ID implements Activity.
func (n *NonClass) ID() string {
	return n.id
}

// Name returns the display name.
func (n *NonClass) Name() string {
	return n.name
}

// Rename changes the display name.
func (n *NonClass) Rename(name string) {
	n.name = name
}

// Timeslots returns the owned slots in insertion order.
func (n *NonClass) Timeslots() []Timeslot {
	return n.slots
}

// Hours sums the weekly hours of all owned slots.
func (n *NonClass) Hours() float64 {
	var total float64
	for _, slot := range n.slots {
		total += slot.Hours()
	}
	return total
}

// AddTimeslot converts the instant pair and appends the resulting Timeslot
// unless a range-equal one is already owned. Duplicate inserts are silent
// no-ops, never errors.
func (n *NonClass) AddTimeslot(start, end time.Time) error {
	slot := NewTimeslotFromInstants(start, end)
	for _, existing := range n.slots {
		if existing.Equal(slot) {
			return nil
		}
	}
	n.slots = append(n.slots, slot)
	return nil
}

// RemoveTimeslot drops every owned slot range-equal to the argument. Given
// the insert-time dedup this matches at most one entry; removing an absent
// slot is a silent no-op.
func (n *NonClass) RemoveTimeslot(slot Timeslot) error {
	kept := n.slots[:0]
	for _, existing := range n.slots {
		if !existing.Equal(slot) {
			kept = append(kept, existing)
		}
	}
	n.slots = kept
	return nil
}

// Events yields exactly one event bundling all owned slots under the
// activity's own name, with no room.
func (n *NonClass) Events() []*Event {
	return []*Event{NewEvent(n, n.name, n.slots, "")}
}

// BackgroundColor returns the display color, empty when unset.
func (n *NonClass) BackgroundColor() string {
	return n.backgroundColor
}

// SetBackgroundColor sets the display color.
func (n *NonClass) SetBackgroundColor(color string) {
	n.backgroundColor = color
}
