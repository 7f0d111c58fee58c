package models

import (
	"errors"
	"time"
)

// Activity is anything that occupies slots on the weekly calendar: a catalog
// Class or a user-created NonClass. The capability set is identical across
// both; Classes reject the timeslot mutations because catalog sections are
// not user-editable.
type Activity interface {
	// ID identifies the activity within a planner session. For a Class it
	// is the catalog number; for a NonClass a generated identifier from a
	// namespace disjoint from catalog numbering.
	ID() string
	Name() string
	Hours() float64
	Events() []*Event
	BackgroundColor() string
	SetBackgroundColor(color string)
	AddTimeslot(start, end time.Time) error
	RemoveTimeslot(slot Timeslot) error
}

// ErrReadOnlyActivity is returned by timeslot mutations on catalog-driven
// activities.
var ErrReadOnlyActivity = errors.New("activity timeslots are not editable")

// ErrInvalidSelection is returned when a section outside a group's
// alternative list is selected.
var ErrInvalidSelection = errors.New("section does not belong to this group")
