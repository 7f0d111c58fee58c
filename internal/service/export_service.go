package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/memovasquez/hydrant/internal/models"
	appErrors "github.com/memovasquez/hydrant/pkg/errors"
	"github.com/memovasquez/hydrant/pkg/export"
)

type eventSource interface {
	Events(sessionID string) ([]*models.Event, error)
}

// ExportService renders a session's week as a PDF calendar or a CSV event
// list. Both formats are derived from the same event materialization the
// calendar view uses, so exports can never drift from what is on screen.
type ExportService struct {
	planner eventSource
	pdf     *export.PDFExporter
	csv     *export.CSVExporter
	logger  *zap.Logger
	enabled bool
}

// NewExportService wires the export pipeline.
func NewExportService(planner eventSource, logger *zap.Logger, enabled bool) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		planner: planner,
		pdf:     export.NewPDFExporter(),
		csv:     export.NewCSVExporter(),
		logger:  logger,
		enabled: enabled,
	}
}

// RenderPDF draws the weekly calendar grid for one session.
func (s *ExportService) RenderPDF(sessionID string) ([]byte, error) {
	if !s.enabled {
		return nil, appErrors.Clone(appErrors.ErrDisabled, "export is disabled")
	}
	events, err := s.planner.Events(sessionID)
	if err != nil {
		return nil, err
	}
	data := calendarDataset(events)
	payload, err := s.pdf.Render(data, "Weekly Schedule")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render schedule pdf")
	}
	s.logger.Debug("schedule pdf rendered",
		zap.String("session_id", sessionID),
		zap.Int("events", len(events)),
	)
	return payload, nil
}

// RenderCSV lists every event occurrence of one session as CSV rows.
func (s *ExportService) RenderCSV(sessionID string) ([]byte, error) {
	if !s.enabled {
		return nil, appErrors.Clone(appErrors.ErrDisabled, "export is disabled")
	}
	events, err := s.planner.Events(sessionID)
	if err != nil {
		return nil, err
	}
	payload, err := s.csv.Render(eventListDataset(events))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render schedule csv")
	}
	return payload, nil
}

// calendarDataset lays events onto the 30-row weekly grid. A cell spanned by
// several events joins their titles with "; ", mirroring how the on-screen
// calendar stacks overlaps.
func calendarDataset(events []*models.Event) export.Dataset {
	headers := make([]string, 0, models.DaysPerWeek+1)
	headers = append(headers, "Time")
	for day := 0; day < models.DaysPerWeek; day++ {
		headers = append(headers, models.DayName(day))
	}

	rows := make([]map[string]string, models.SlotsPerDay)
	for within := 0; within < models.SlotsPerDay; within++ {
		rows[within] = map[string]string{
			"Time": models.NewTimeslot(within, 1).StartTime().Format("3:04 PM"),
		}
	}

	for _, event := range events {
		for _, slot := range event.Slots {
			day := slot.Day()
			if day < 0 || day >= models.DaysPerWeek {
				continue
			}
			column := models.DayName(day)
			for within := slot.StartSlot % models.SlotsPerDay; within <= slot.EndSlot()%models.SlotsPerDay; within++ {
				cell := rows[within][column]
				if cell == "" {
					rows[within][column] = event.Name
				} else if !cellHasName(cell, event.Name) {
					rows[within][column] = cell + "; " + event.Name
				}
			}
		}
	}

	return export.Dataset{Headers: headers, Rows: rows}
}

// cellHasName checks the joined cell for an exact entry, not a substring, so
// an event whose name is a prefix of another still gets its own entry.
func cellHasName(cell, name string) bool {
	for _, part := range strings.Split(cell, "; ") {
		if part == name {
			return true
		}
	}
	return false
}

func eventListDataset(events []*models.Event) export.Dataset {
	headers := []string{"Activity", "Day", "Start", "End", "Room", "Hours"}
	rows := make([]map[string]string, 0, len(events))
	for _, event := range events {
		for _, slot := range event.Slots {
			rows = append(rows, map[string]string{
				"Activity": event.Name,
				"Day":      models.DayName(slot.Day()),
				"Start":    slot.StartTime().Format("3:04 PM"),
				"End":      slot.EndTime().Format("3:04 PM"),
				"Room":     event.Room,
				"Hours":    fmt.Sprintf("%.1f", slot.Hours()),
			})
		}
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
