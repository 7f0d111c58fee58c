package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawSectionUnmarshalTuple(t *testing.T) {
	var section RawSection
	require.NoError(t, json.Unmarshal([]byte(`[[[4,2],[64,2]],"26-100"]`), &section))

	assert.Equal(t, [][2]int{{4, 2}, {64, 2}}, section.Slots)
	assert.Equal(t, "26-100", section.Room)
}

func TestRawSectionUnmarshalRejectsBadShape(t *testing.T) {
	var section RawSection
	assert.Error(t, json.Unmarshal([]byte(`[[[4,2]]]`), &section))
	assert.Error(t, json.Unmarshal([]byte(`"26-100"`), &section))
}

func TestRawSectionMarshalRoundTrip(t *testing.T) {
	section := RawSection{Slots: [][2]int{{18, 3}}, Room: "4-370"}

	data, err := json.Marshal(section)
	require.NoError(t, err)
	assert.JSONEq(t, `[[[18,3]],"4-370"]`, string(data))

	var decoded RawSection
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, section, decoded)
}

func TestRawClassDecode(t *testing.T) {
	payload := `{
		"number": "8.01",
		"course": "8",
		"name": "Classical Mechanics",
		"section_kinds": ["lecture", "recitation"],
		"lecture_sections": [[[[2,3]],"26-152"]],
		"recitation_sections": [[[[34,1]],"26-268"], [[[36,1]],"26-268"]],
		"lecture_raw_times": ["MW9-10.30"],
		"recitation_raw_times": ["T9","T10"],
		"lecture_units": 3,
		"lab_units": 2,
		"prep_units": 7,
		"level": "U",
		"terms": ["FA"],
		"rating": 5.4,
		"eval_hours": 12.1,
		"eval_size": 420.0
	}`

	var raw RawClass
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	assert.Equal(t, "8.01", raw.Number)
	assert.Equal(t, 12, raw.TotalUnits())
	require.Len(t, raw.LectureSections, 1)
	assert.Equal(t, "26-152", raw.LectureSections[0].Room)
	require.Len(t, raw.RecitationSections, 2)
	assert.Equal(t, [][2]int{{36, 1}}, raw.RecitationSections[1].Slots)

	class := NewClass(&raw)
	require.Len(t, class.Groups(), 2)
	assert.Equal(t, KindLecture, class.Groups()[0].Kind())
	assert.Equal(t, KindRecitation, class.Groups()[1].Kind())
}
