package models

import (
	"encoding/json"
	"fmt"
)

// RawSection is the wire encoding of one section alternative:
// [[ [startSlot, numSlots], ... ], room]: a list of slot pairs sharing one
// room string. The tuple shape is decoded here at the ingestion boundary and
// never propagated further.
type RawSection struct {
	Slots [][2]int
	Room  string
}

// UnmarshalJSON decodes the heterogeneous [slots, room] tuple.
func (s *RawSection) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("raw section: want [slots, room], got %d elements", len(parts))
	}
	if err := json.Unmarshal(parts[0], &s.Slots); err != nil {
		return fmt.Errorf("raw section slots: %w", err)
	}
	if err := json.Unmarshal(parts[1], &s.Room); err != nil {
		return fmt.Errorf("raw section room: %w", err)
	}
	return nil
}

// MarshalJSON re-emits the [slots, room] tuple form.
func (s RawSection) MarshalJSON() ([]byte, error) {
	slots := s.Slots
	if slots == nil {
		slots = [][2]int{}
	}
	return json.Marshal([]interface{}{slots, s.Room})
}

// RawClass is the pre-validated catalog record for one class, produced by the
// external ingestion pipeline. The core trusts it as-is: no validation or
// recovery happens here, and every derived getter on Class recomputes from
// these fields on each access.
type RawClass struct {
	Number string `json:"number"`
	Course string `json:"course"`
	Suffix string `json:"suffix"`
	Name   string `json:"name"`

	TBA          bool     `json:"tba"`
	SectionKinds []string `json:"section_kinds"`

	LectureSections    []RawSection `json:"lecture_sections"`
	RecitationSections []RawSection `json:"recitation_sections"`
	LabSections        []RawSection `json:"lab_sections"`
	LectureRawTimes    []string     `json:"lecture_raw_times"`
	RecitationRawTimes []string     `json:"recitation_raw_times"`
	LabRawTimes        []string     `json:"lab_raw_times"`

	HassH bool `json:"hass_h"`
	HassA bool `json:"hass_a"`
	HassS bool `json:"hass_s"`
	HassE bool `json:"hass_e"`
	CIH   bool `json:"ci_h"`
	CIHW  bool `json:"ci_hw"`
	REST  bool `json:"rest"`

	Lab     bool `json:"lab"`
	PartLab bool `json:"part_lab"`

	LectureUnits int    `json:"lecture_units"`
	LabUnits     int    `json:"lab_units"`
	PrepUnits    int    `json:"prep_units"`
	Level        string `json:"level"`

	SameAs    string   `json:"same_as"`
	MeetsWith string   `json:"meets_with"`
	Terms     []string `json:"terms"`

	Prereqs     string `json:"prereqs"`
	Description string `json:"description"`
	InCharge    string `json:"in_charge"`

	Virtual            bool   `json:"virtual"`
	NotOfferedNextYear bool   `json:"not_offered_next_year"`
	Repeat             bool   `json:"repeat"`
	HasFinal           bool   `json:"has_final"`
	URL                string `json:"url"`

	// Rating of exactly 0 is the sentinel for "no evaluation data".
	Rating    float64 `json:"rating"`
	EvalHours float64 `json:"eval_hours"`
	EvalSize  float64 `json:"eval_size"`
}

// TotalUnits is the sum of the three credit unit components.
func (r *RawClass) TotalUnits() int {
	return r.LectureUnits + r.LabUnits + r.PrepUnits
}

// sectionsForKind returns the raw alternatives carried for a kind.
func (r *RawClass) sectionsForKind(kind SectionKind) []RawSection {
	switch kind {
	case KindLecture:
		return r.LectureSections
	case KindRecitation:
		return r.RecitationSections
	case KindLab:
		return r.LabSections
	}
	return nil
}

// hasKind reports whether the record lists the kind as present.
func (r *RawClass) hasKind(kind SectionKind) bool {
	for _, name := range r.SectionKinds {
		if parsed, err := ParseSectionKind(name); err == nil && parsed == kind {
			return true
		}
	}
	return false
}
