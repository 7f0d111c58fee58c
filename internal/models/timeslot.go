package models

import (
	"fmt"
	"time"
)

// Slot grid constants. The planner week is 5 days of 30 half-hour slots
// starting at 08:00, numbered 0-149 with Monday as day 0. Slot numbers are
// the sole interchange format between the core and renderers.
const (
	SlotsPerDay  = 30
	DaysPerWeek  = 5
	TotalSlots   = SlotsPerDay * DaysPerWeek
	DayStartHour = 8
)

// ReferenceMonday anchors the abstract slot grid to absolute instants for
// display and export. 2001-01-01 was a Monday; no other calendar semantics
// are attached to it.
var ReferenceMonday = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

var dayNames = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// DayName returns the short weekday label for a grid day index.
func DayName(day int) string {
	if day < 0 || day >= DaysPerWeek {
		return ""
	}
	return dayNames[day]
}

// Timeslot is a contiguous run of half-hour slots on the weekly grid.
// NumSlots is at least 1 and a Timeslot is assumed not to cross a day
// boundary; the catalog generator guarantees both, so the core does not
// re-validate them.
type Timeslot struct {
	StartSlot int `json:"start_slot"`
	NumSlots  int `json:"num_slots"`
}

// NewTimeslot builds a Timeslot from an explicit slot pair.
func NewTimeslot(startSlot, numSlots int) Timeslot {
	return Timeslot{StartSlot: startSlot, NumSlots: numSlots}
}

// NewTimeslotFromInstants converts an instant pair within the reference week
// into a Timeslot, rounding each instant to the nearest half-hour boundary.
//
// The end instant is EXCLUSIVE here (NumSlots = endSlot - startSlot), while
// EndSlot below is INCLUSIVE. The two conventions coexist on purpose: the
// instant form mirrors how renderers hand back drag ranges, the slot form is
// how the grid counts occupancy. Collapsing them silently is the classic
// off-by-one in this codebase, so both are pinned by tests.
//
// A degenerate pair (end at or before the start after rounding) still yields
// a single slot; NumSlots never drops below 1.
func NewTimeslotFromInstants(start, end time.Time) Timeslot {
	startSlot := slotAtInstant(start)
	endSlot := slotAtInstant(end)
	numSlots := endSlot - startSlot
	if numSlots < 1 {
		numSlots = 1
	}
	return Timeslot{StartSlot: startSlot, NumSlots: numSlots}
}

// EndSlot returns the inclusive final slot of the range.
func (t Timeslot) EndSlot() int {
	return t.StartSlot + t.NumSlots - 1
}

// Day returns the grid day index (0 = Monday) the Timeslot falls on.
func (t Timeslot) Day() int {
	return t.StartSlot / SlotsPerDay
}

// Conflicts reports whether the inclusive slot ranges of the two Timeslots
// intersect. The relation is symmetric and every Timeslot conflicts with
// itself.
func (t Timeslot) Conflicts(other Timeslot) bool {
	return t.StartSlot <= other.EndSlot() && other.StartSlot <= t.EndSlot()
}

// Equal reports range equality, not identity.
func (t Timeslot) Equal(other Timeslot) bool {
	return t.StartSlot == other.StartSlot && t.EndSlot() == other.EndSlot()
}

// Hours returns the weekly hours the Timeslot occupies.
func (t Timeslot) Hours() float64 {
	return float64(t.NumSlots) / 2
}

// StartTime returns the absolute start instant anchored to the reference week.
func (t Timeslot) StartTime() time.Time {
	return instantAtSlot(t.StartSlot)
}

// EndTime returns the absolute end instant (exclusive) anchored to the
// reference week. It is computed against the start slot's day so a range
// ending on the last slot of a day renders as 11:00 PM, not the next morning.
func (t Timeslot) EndTime() time.Time {
	within := t.StartSlot%SlotsPerDay + t.NumSlots
	return ReferenceMonday.AddDate(0, 0, t.Day()).
		Add(time.Duration(DayStartHour)*time.Hour + time.Duration(within)*30*time.Minute)
}

// String renders the Timeslot as "<Day>, <start> – <end>" in 12-hour
// wall-clock form, e.g. "Mon, 10:00 AM – 11:30 AM".
func (t Timeslot) String() string {
	day := t.Day()
	if day < 0 || day >= DaysPerWeek {
		return fmt.Sprintf("slot %d+%d", t.StartSlot, t.NumSlots)
	}
	return fmt.Sprintf("%s, %s – %s",
		dayNames[day],
		t.StartTime().Format("3:04 PM"),
		t.EndTime().Format("3:04 PM"),
	)
}

// slotAtInstant maps an instant inside the reference week onto the slot grid,
// rounding to the nearest half-hour boundary.
func slotAtInstant(at time.Time) int {
	day := int(at.Sub(ReferenceMonday).Hours()) / 24
	midnight := ReferenceMonday.AddDate(0, 0, day)
	minutes := at.Sub(midnight).Minutes() - DayStartHour*60
	halfHours := int(minutes/30 + 0.5)
	if minutes < 0 {
		halfHours = 0
	}
	return day*SlotsPerDay + halfHours
}

// instantAtSlot is the inverse mapping for whole slot numbers.
func instantAtSlot(slot int) time.Time {
	day := slot / SlotsPerDay
	within := slot % SlotsPerDay
	return ReferenceMonday.AddDate(0, 0, day).
		Add(time.Duration(DayStartHour)*time.Hour + time.Duration(within)*30*time.Minute)
}
