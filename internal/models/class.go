package models

import (
	"fmt"
	"time"
)

// evalsUnavailable is reported for all three evaluation fields when the raw
// rating carries the zero sentinel.
const evalsUnavailable = "not available"

// Class wraps one immutable raw catalog record plus the SectionGroups derived
// from it at construction. The only mutable state is the per-group selection
// and lock, and the display color. Every descriptive getter recomputes from
// the raw record on each call; nothing derived is stored.
type Class struct {
	raw             *RawClass
	groups          []*SectionGroup
	backgroundColor string
}

// NewClass partitions the record's per-kind raw sections into at most one
// SectionGroup per kind, in the fixed kind order (LECTURE < RECITATION <
// LAB).
func NewClass(raw *RawClass) *Class {
	class := &Class{raw: raw}
	for _, kind := range sectionKinds {
		if !raw.hasKind(kind) {
			continue
		}
		class.groups = append(class.groups, newSectionGroup(class, kind, raw.sectionsForKind(kind)))
	}
	return class
}

// Raw exposes the underlying catalog record.
func (c *Class) Raw() *RawClass {
	return c.raw
}

// ID implements Activity; the catalog number identifies a class.
func (c *Class) ID() string {
	return c.raw.Number
}

// Number returns the full catalog number, e.g. "6.006".
func (c *Class) Number() string {
	return c.raw.Number
}

// Course returns the top-level course prefix, e.g. "6".
func (c *Class) Course() string {
	return c.raw.Course
}

// Name returns the catalog title.
func (c *Class) Name() string {
	return c.raw.Name
}

// Groups returns the section groups in kind order.
func (c *Class) Groups() []*SectionGroup {
	return c.groups
}

// Group returns the group of the given kind, or nil when the class has none.
func (c *Class) Group(kind SectionKind) *SectionGroup {
	for _, group := range c.groups {
		if group.kind == kind {
			return group
		}
	}
	return nil
}

// Hours returns the evaluation-reported weekly hours when present, falling
// back to total credit units otherwise.
func (c *Class) Hours() float64 {
	if c.raw.EvalHours != 0 {
		return c.raw.EvalHours
	}
	return float64(c.raw.TotalUnits())
}

// TotalUnits is the sum of the three credit unit components.
func (c *Class) TotalUnits() int {
	return c.raw.TotalUnits()
}

// ClassFlags is the fixed battery of derived booleans describing catalog and
// requirement properties of a class. Each is a pure predicate over raw
// fields.
type ClassFlags struct {
	NotOfferedNextYear bool `json:"not_offered_next_year"`
	Under              bool `json:"under"`
	Grad               bool `json:"grad"`
	Fall               bool `json:"fall"`
	IAP                bool `json:"iap"`
	Spring             bool `json:"spring"`
	HassH              bool `json:"hass_h"`
	HassA              bool `json:"hass_a"`
	HassS              bool `json:"hass_s"`
	HassE              bool `json:"hass_e"`
	Hass               bool `json:"hass"`
	CIH                bool `json:"ci_h"`
	CIHW               bool `json:"ci_hw"`
	REST               bool `json:"rest"`
	Lab                bool `json:"lab"`
	PartLab            bool `json:"part_lab"`
	HasFinal           bool `json:"has_final"`
	LE9Units           bool `json:"le_9_units"`
	Repeat             bool `json:"repeat"`
	Virtual            bool `json:"virtual"`
	TBA                bool `json:"tba"`
}

// Flags derives the full flag battery. Hass is true iff any of the four HASS
// category bits is set.
func (c *Class) Flags() ClassFlags {
	raw := c.raw
	return ClassFlags{
		NotOfferedNextYear: raw.NotOfferedNextYear,
		Under:              raw.Level == "U",
		Grad:               raw.Level == "G",
		Fall:               hasTerm(raw.Terms, "FA"),
		IAP:                hasTerm(raw.Terms, "JA"),
		Spring:             hasTerm(raw.Terms, "SP"),
		HassH:              raw.HassH,
		HassA:              raw.HassA,
		HassS:              raw.HassS,
		HassE:              raw.HassE,
		Hass:               raw.HassH || raw.HassA || raw.HassS || raw.HassE,
		CIH:                raw.CIH,
		CIHW:               raw.CIHW,
		REST:               raw.REST,
		Lab:                raw.Lab,
		PartLab:            raw.PartLab,
		HasFinal:           raw.HasFinal,
		LE9Units:           raw.TotalUnits() <= 9,
		Repeat:             raw.Repeat,
		Virtual:            raw.Virtual,
		TBA:                raw.TBA,
	}
}

func hasTerm(terms []string, code string) bool {
	for _, term := range terms {
		if term == code {
			return true
		}
	}
	return false
}

// ClassEvals carries the three display-ready evaluation fields.
type ClassEvals struct {
	Rating string `json:"rating"`
	Hours  string `json:"hours"`
	Size   string `json:"size"`
}

// Evals formats the evaluation figures for display. A raw rating of exactly
// zero means no evaluation data exists and all three fields read "not
// available"; otherwise each figure is formatted to one decimal place with
// the rating suffixed "/7.0".
func (c *Class) Evals() ClassEvals {
	if c.raw.Rating == 0 {
		return ClassEvals{
			Rating: evalsUnavailable,
			Hours:  evalsUnavailable,
			Size:   evalsUnavailable,
		}
	}
	return ClassEvals{
		Rating: fmt.Sprintf("%.1f/7.0", c.raw.Rating),
		Hours:  fmt.Sprintf("%.1f", c.raw.EvalHours),
		Size:   fmt.Sprintf("%.1f", c.raw.EvalSize),
	}
}

// ClassDescription bundles the descriptive text with its auxiliary links.
type ClassDescription struct {
	Description string `json:"description"`
	InCharge    string `json:"in_charge"`
	Links       []Link `json:"links"`
}

// Description assembles the description view: raw text, person in charge,
// and the ordered link list from the course link policy table.
func (c *Class) Description() ClassDescription {
	return ClassDescription{
		Description: c.raw.Description,
		InCharge:    c.raw.InCharge,
		Links:       linksFor(c.raw),
	}
}

// Events returns the non-nil group events in group order, reflecting only
// the currently selected alternatives.
func (c *Class) Events() []*Event {
	events := make([]*Event, 0, len(c.groups))
	for _, group := range c.groups {
		if event := group.Event(); event != nil {
			events = append(events, event)
		}
	}
	return events
}

// BackgroundColor returns the display color, empty when unset.
func (c *Class) BackgroundColor() string {
	return c.backgroundColor
}

// SetBackgroundColor sets the display color.
func (c *Class) SetBackgroundColor(color string) {
	c.backgroundColor = color
}

// AddTimeslot implements Activity. Catalog sections are not user-editable,
// so the capability is unsupported rather than silently accepted.
func (c *Class) AddTimeslot(start, end time.Time) error {
	return ErrReadOnlyActivity
}

// RemoveTimeslot implements Activity; unsupported for catalog classes.
func (c *Class) RemoveTimeslot(slot Timeslot) error {
	return ErrReadOnlyActivity
}
