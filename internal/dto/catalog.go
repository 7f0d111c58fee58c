package dto

import "github.com/memovasquez/hydrant/internal/models"

// ClassSummary is the list-view projection of a catalog class.
type ClassSummary struct {
	Number     string            `json:"number"`
	Course     string            `json:"course"`
	Name       string            `json:"name"`
	TotalUnits int               `json:"total_units"`
	Hours      float64           `json:"hours"`
	Level      string            `json:"level"`
	Terms      []string          `json:"terms"`
	Flags      models.ClassFlags `json:"flags"`
	Evals      models.ClassEvals `json:"evals"`
	Kinds      []string          `json:"section_kinds"`
}

// TimeslotView pairs the slot encoding with its display string.
type TimeslotView struct {
	StartSlot int    `json:"start_slot"`
	NumSlots  int    `json:"num_slots"`
	Display   string `json:"display"`
}

// SectionView is one alternative within a group.
type SectionView struct {
	Index     int            `json:"index"`
	Room      string         `json:"room"`
	Timeslots []TimeslotView `json:"timeslots"`
}

// SectionGroupView is the selection state of one kind of meeting.
type SectionGroupView struct {
	Kind          string        `json:"kind"`
	Locked        bool          `json:"locked"`
	SelectedIndex *int          `json:"selected_index,omitempty"`
	Sections      []SectionView `json:"sections"`
}

// ClassDetail extends the summary with descriptive data and the full
// alternative listing.
type ClassDetail struct {
	ClassSummary
	Description models.ClassDescription `json:"description"`
	Prereqs     string                  `json:"prereqs"`
	SameAs      string                  `json:"same_as,omitempty"`
	MeetsWith   string                  `json:"meets_with,omitempty"`
	RawTimes    map[string][]string     `json:"raw_times,omitempty"`
	Groups      []SectionGroupView      `json:"groups"`
}

// NewTimeslotView projects a Timeslot for responses.
func NewTimeslotView(slot models.Timeslot) TimeslotView {
	return TimeslotView{StartSlot: slot.StartSlot, NumSlots: slot.NumSlots, Display: slot.String()}
}

// NewSectionGroupView projects a group with its current selection.
func NewSectionGroupView(group *models.SectionGroup) SectionGroupView {
	view := SectionGroupView{Kind: group.Kind().String(), Locked: group.Locked}
	for i, section := range group.Sections() {
		slots := make([]TimeslotView, 0, len(section.Timeslots()))
		for _, slot := range section.Timeslots() {
			slots = append(slots, NewTimeslotView(slot))
		}
		view.Sections = append(view.Sections, SectionView{Index: i, Room: section.Room(), Timeslots: slots})
		if group.Selected() == section {
			index := i
			view.SelectedIndex = &index
		}
	}
	return view
}
