package models

import (
	"fmt"
	"strings"
)

// RoomTBD is the placeholder room label for sections whose room has not been
// announced.
const RoomTBD = "TBD"

// SectionKind is the closed set of meeting kinds a class can carry. The
// declaration order is the fixed total order (LECTURE < RECITATION < LAB)
// used for group sorting and stable display.
type SectionKind int

const (
	KindLecture SectionKind = iota
	KindRecitation
	KindLab
)

// sectionKinds lists all kinds in display order.
var sectionKinds = [...]SectionKind{KindLecture, KindRecitation, KindLab}

// String returns the canonical long name; ParseSectionKind accepts it back.
func (k SectionKind) String() string {
	switch k {
	case KindLecture:
		return "lecture"
	case KindRecitation:
		return "recitation"
	case KindLab:
		return "lab"
	}
	return fmt.Sprintf("SectionKind(%d)", int(k))
}

// Short returns the compact tag used in event titles, e.g. "6.006 lec".
func (k SectionKind) Short() string {
	switch k {
	case KindLecture:
		return "lec"
	case KindRecitation:
		return "rec"
	case KindLab:
		return "lab"
	}
	return "?"
}

// ParseSectionKind accepts the long name, short tag, or single-letter form.
func ParseSectionKind(raw string) (SectionKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "lecture", "lec", "l":
		return KindLecture, nil
	case "recitation", "rec", "r":
		return KindRecitation, nil
	case "lab", "b":
		return KindLab, nil
	}
	return 0, fmt.Errorf("unknown section kind %q", raw)
}

// Section is one concrete meeting alternative: an ordered list of Timeslots
// sharing a room. Slot order preserves source order, not time order.
type Section struct {
	group *SectionGroup
	slots []Timeslot
	room  string
}

// Group returns the owning SectionGroup. The back-reference is navigation
// only; ownership flows strictly downward.
func (s *Section) Group() *SectionGroup {
	return s.group
}

// Timeslots returns the section's meeting times in source order.
func (s *Section) Timeslots() []Timeslot {
	return s.slots
}

// Room returns the room label, possibly RoomTBD.
func (s *Section) Room() string {
	return s.room
}

// CountConflicts scores this section against an occupied slot set: the total
// number of (own slot, occupied slot) pairs that overlap. A section meeting
// three times against a busy calendar scores worse than one overlapping once,
// which is what the suggestion ranking wants. Occupied slots that themselves
// overlap are counted once per pair, so this is a coarse severity heuristic,
// not an exact conflict count.
func (s *Section) CountConflicts(occupied []Timeslot) int {
	count := 0
	for _, own := range s.slots {
		for _, busy := range occupied {
			if own.Conflicts(busy) {
				count++
			}
		}
	}
	return count
}

// SectionGroup holds the mutually exclusive alternatives of one kind for a
// class, plus which alternative is currently chosen.
//
// Locked is advisory only: it tells the auto-suggestion logic to leave the
// current choice alone. Select itself never consults it; a direct user
// selection always wins.
type SectionGroup struct {
	class    *Class
	kind     SectionKind
	sections []*Section
	selected *Section

	Locked bool
}

func newSectionGroup(class *Class, kind SectionKind, raws []RawSection) *SectionGroup {
	group := &SectionGroup{class: class, kind: kind}
	for _, raw := range raws {
		slots := make([]Timeslot, 0, len(raw.Slots))
		for _, pair := range raw.Slots {
			slots = append(slots, NewTimeslot(pair[0], pair[1]))
		}
		room := raw.Room
		if room == "" {
			room = RoomTBD
		}
		group.sections = append(group.sections, &Section{group: group, slots: slots, room: room})
	}
	return group
}

// Class returns the owning class (navigation only).
func (g *SectionGroup) Class() *Class {
	return g.class
}

// Kind returns the group's meeting kind.
func (g *SectionGroup) Kind() SectionKind {
	return g.kind
}

// Sections returns the alternatives in source order.
func (g *SectionGroup) Sections() []*Section {
	return g.sections
}

// Selected returns the currently chosen alternative, or nil.
func (g *SectionGroup) Selected() *Section {
	return g.selected
}

// Select sets the current choice. Selecting a section that is not one of this
// group's alternatives fails with ErrInvalidSelection and leaves the current
// choice untouched.
func (g *SectionGroup) Select(section *Section) error {
	for _, candidate := range g.sections {
		if candidate == section {
			g.selected = section
			return nil
		}
	}
	return ErrInvalidSelection
}

// SelectIndex selects the i-th alternative.
func (g *SectionGroup) SelectIndex(i int) error {
	if i < 0 || i >= len(g.sections) {
		return ErrInvalidSelection
	}
	g.selected = g.sections[i]
	return nil
}

// Clear drops the current selection.
func (g *SectionGroup) Clear() {
	g.selected = nil
}

// Event synthesizes the single calendar event for the current selection, or
// nil when nothing is selected. The title is "<class number> <kind tag>".
func (g *SectionGroup) Event() *Event {
	if g.selected == nil {
		return nil
	}
	name := fmt.Sprintf("%s %s", g.class.Number(), g.kind.Short())
	return NewEvent(g.class, name, g.selected.Timeslots(), g.selected.Room())
}
