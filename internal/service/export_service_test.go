package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memovasquez/hydrant/internal/models"
	appErrors "github.com/memovasquez/hydrant/pkg/errors"
)

type mockEventSource struct {
	events []*models.Event
	err    error
}

func (m *mockEventSource) Events(sessionID string) ([]*models.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func exportEvents() []*models.Event {
	owner := models.NewNonClass("Algorithms")
	return []*models.Event{
		models.NewEvent(owner, "6.006 lec", []models.Timeslot{
			models.NewTimeslot(2, 3),
			models.NewTimeslot(62, 3),
		}, "26-100"),
		models.NewEvent(owner, "Lunch", []models.Timeslot{
			models.NewTimeslot(8, 2),
		}, ""),
	}
}

func TestExportServiceRenderCSV(t *testing.T) {
	svc := NewExportService(&mockEventSource{events: exportEvents()}, nil, true)

	payload, err := svc.RenderCSV("session-1")
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"Activity", "Day", "Start", "End", "Room", "Hours"}, records[0])
	assert.Equal(t, []string{"6.006 lec", "Mon", "9:00 AM", "10:30 AM", "26-100", "1.5"}, records[1])
	assert.Equal(t, []string{"6.006 lec", "Wed", "9:00 AM", "10:30 AM", "26-100", "1.5"}, records[2])
	assert.Equal(t, []string{"Lunch", "Mon", "12:00 PM", "1:00 PM", "", "1.0"}, records[3])
}

func TestExportServiceRenderPDF(t *testing.T) {
	svc := NewExportService(&mockEventSource{events: exportEvents()}, nil, true)

	payload, err := svc.RenderPDF("session-1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}

func TestExportServiceDisabled(t *testing.T) {
	svc := NewExportService(&mockEventSource{events: exportEvents()}, nil, false)

	_, err := svc.RenderPDF("session-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDisabled.Code, appErrors.FromError(err).Code)

	_, err = svc.RenderCSV("session-1")
	require.Error(t, err)
}

func TestExportServicePropagatesSessionError(t *testing.T) {
	svc := NewExportService(&mockEventSource{err: appErrors.ErrSessionExpired}, nil, true)

	_, err := svc.RenderCSV("session-gone")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrSessionExpired.Code, appErrors.FromError(err).Code)
}

func TestCalendarDatasetStacksOverlaps(t *testing.T) {
	owner := models.NewNonClass("x")
	events := []*models.Event{
		models.NewEvent(owner, "6.006 lec", []models.Timeslot{models.NewTimeslot(2, 3)}, ""),
		models.NewEvent(owner, "18.03 lec", []models.Timeslot{models.NewTimeslot(3, 2)}, ""),
	}

	data := calendarDataset(events)
	require.Equal(t, []string{"Time", "Mon", "Tue", "Wed", "Thu", "Fri"}, data.Headers)
	require.Len(t, data.Rows, models.SlotsPerDay)

	assert.Equal(t, "8:00 AM", data.Rows[0]["Time"])
	assert.Equal(t, "6.006 lec", data.Rows[2]["Mon"])
	assert.Equal(t, "6.006 lec; 18.03 lec", data.Rows[3]["Mon"])
	assert.Equal(t, "6.006 lec; 18.03 lec", data.Rows[4]["Mon"])
	assert.Empty(t, data.Rows[5]["Mon"])
	assert.Empty(t, data.Rows[3]["Tue"])
}

func TestCalendarDatasetKeepsPrefixNames(t *testing.T) {
	owner := models.NewNonClass("x")
	events := []*models.Event{
		models.NewEvent(owner, "Gym Session", []models.Timeslot{models.NewTimeslot(2, 2)}, ""),
		models.NewEvent(owner, "Gym", []models.Timeslot{models.NewTimeslot(2, 2)}, ""),
	}

	data := calendarDataset(events)
	// "Gym" is a prefix of "Gym Session" but is a distinct event and must
	// still land in the shared cells.
	assert.Equal(t, "Gym Session; Gym", data.Rows[2]["Mon"])
	assert.Equal(t, "Gym Session; Gym", data.Rows[3]["Mon"])

	// Genuine duplicates still collapse.
	data = calendarDataset([]*models.Event{events[1], events[1]})
	assert.Equal(t, "Gym", data.Rows[2]["Mon"])
}
