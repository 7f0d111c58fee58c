package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lectureOnlyRaw() *RawClass {
	return &RawClass{
		Number:       "6.006",
		Course:       "6",
		Name:         "Introduction to Algorithms",
		SectionKinds: []string{"lecture"},
		LectureSections: []RawSection{
			{Slots: [][2]int{{4, 2}, {64, 2}}, Room: "26-100"},
			{Slots: [][2]int{{10, 2}, {70, 2}}, Room: "34-101"},
		},
	}
}

func TestParseSectionKind(t *testing.T) {
	for raw, want := range map[string]SectionKind{
		"lecture":    KindLecture,
		"LEC":        KindLecture,
		"l":          KindLecture,
		"recitation": KindRecitation,
		"r":          KindRecitation,
		"lab":        KindLab,
		"b":          KindLab,
	} {
		kind, err := ParseSectionKind(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, kind, raw)
	}

	_, err := ParseSectionKind("seminar")
	assert.Error(t, err)
}

func TestSectionKindOrder(t *testing.T) {
	assert.Less(t, int(KindLecture), int(KindRecitation))
	assert.Less(t, int(KindRecitation), int(KindLab))
	assert.Equal(t, "lec", KindLecture.Short())
	assert.Equal(t, "rec", KindRecitation.Short())
	assert.Equal(t, "lab", KindLab.Short())
}

func TestCountConflictsSeverityScore(t *testing.T) {
	class := NewClass(&RawClass{
		Number:       "18.03",
		Course:       "18",
		SectionKinds: []string{"lecture"},
		LectureSections: []RawSection{
			{Slots: [][2]int{{4, 2}, {64, 2}}, Room: "2-190"},
		},
	})
	section := class.Group(KindLecture).Sections()[0]

	// Exactly one own slot overlaps exactly one occupied entry.
	occupied := []Timeslot{NewTimeslot(5, 1), NewTimeslot(100, 2)}
	assert.Equal(t, 1, section.CountConflicts(occupied))

	// Both own slots overlap both occupied entries: the score counts every
	// overlapping pair, not distinct conflicts.
	occupied = []Timeslot{NewTimeslot(4, 62), NewTimeslot(4, 62)}
	assert.Equal(t, 4, section.CountConflicts(occupied))

	assert.Equal(t, 0, section.CountConflicts(nil))
}

func TestSectionGroupSelect(t *testing.T) {
	class := NewClass(lectureOnlyRaw())
	group := class.Group(KindLecture)
	require.NotNil(t, group)
	require.Len(t, group.Sections(), 2)

	assert.Nil(t, group.Event(), "no event before any selection")

	first := group.Sections()[0]
	require.NoError(t, group.Select(first))
	assert.Same(t, first, group.Selected())

	event := group.Event()
	require.NotNil(t, event)
	assert.Equal(t, "6.006 lec", event.Name)
	assert.Equal(t, "26-100", event.Room)
	assert.Equal(t, first.Timeslots(), event.Slots)
}

func TestSectionGroupSelectRejectsForeignSection(t *testing.T) {
	class := NewClass(lectureOnlyRaw())
	other := NewClass(lectureOnlyRaw())

	group := class.Group(KindLecture)
	foreign := other.Group(KindLecture).Sections()[0]

	require.NoError(t, group.Select(group.Sections()[1]))
	err := group.Select(foreign)
	require.ErrorIs(t, err, ErrInvalidSelection)
	assert.Same(t, group.Sections()[1], group.Selected(), "failed select must not corrupt the current choice")
}

func TestSectionGroupSelectIndexAndClear(t *testing.T) {
	group := NewClass(lectureOnlyRaw()).Group(KindLecture)

	require.NoError(t, group.SelectIndex(1))
	assert.Same(t, group.Sections()[1], group.Selected())

	require.ErrorIs(t, group.SelectIndex(2), ErrInvalidSelection)
	require.ErrorIs(t, group.SelectIndex(-1), ErrInvalidSelection)

	group.Clear()
	assert.Nil(t, group.Selected())
	assert.Nil(t, group.Event())
}

func TestSectionGroupLockedIsAdvisory(t *testing.T) {
	group := NewClass(lectureOnlyRaw()).Group(KindLecture)
	group.Locked = true

	// Locking never blocks a direct selection; it only steers the
	// auto-suggestion logic.
	require.NoError(t, group.SelectIndex(0))
	assert.Same(t, group.Sections()[0], group.Selected())
}

func TestSectionRoomFallsBackToTBD(t *testing.T) {
	class := NewClass(&RawClass{
		Number:          "21M.030",
		Course:          "21M",
		SectionKinds:    []string{"lecture"},
		LectureSections: []RawSection{{Slots: [][2]int{{8, 3}}}},
	})
	assert.Equal(t, RoomTBD, class.Group(KindLecture).Sections()[0].Room())
}

func TestClassEventsTrackCurrentSelectionOnly(t *testing.T) {
	class := NewClass(lectureOnlyRaw())
	group := class.Group(KindLecture)

	require.NoError(t, group.SelectIndex(0))
	events := class.Events()
	require.Len(t, events, 1)
	assert.Equal(t, group.Sections()[0].Timeslots(), events[0].Slots)

	require.NoError(t, group.SelectIndex(1))
	events = class.Events()
	require.Len(t, events, 1)
	assert.Equal(t, group.Sections()[1].Timeslots(), events[0].Slots,
		"events must reflect only the currently selected alternative")
}
