package dto

import "github.com/memovasquez/hydrant/internal/models"

// Activity kind discriminators in planner views.
const (
	ActivityKindClass = "class"
	ActivityKindEvent = "event"
)

// SessionCreated is returned once when a planner session is opened.
type SessionCreated struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

// ActivityView projects one activity in a planner session. Groups is set for
// classes, Timeslots for personal events.
type ActivityView struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Name      string             `json:"name"`
	Hours     float64            `json:"hours"`
	Color     string             `json:"color,omitempty"`
	Groups    []SectionGroupView `json:"groups,omitempty"`
	Timeslots []TimeslotView     `json:"timeslots,omitempty"`
}

// SessionView is the full planner state snapshot.
type SessionView struct {
	SessionID  string         `json:"session_id"`
	Activities []ActivityView `json:"activities"`
	TotalHours float64        `json:"total_hours"`
}

// CalendarView carries the rendered week.
type CalendarView struct {
	Entries []models.EventInstance `json:"entries"`
}

// RankedSection is one scored alternative in a suggestion response.
type RankedSection struct {
	Index     int    `json:"index"`
	Room      string `json:"room"`
	Conflicts int    `json:"conflicts"`
}

// SuggestionGroup ranks the alternatives of one group against the rest of
// the session. Locked groups report their current choice without re-ranking.
type SuggestionGroup struct {
	Kind   string          `json:"kind"`
	Locked bool            `json:"locked"`
	Ranked []RankedSection `json:"ranked,omitempty"`
}

// NewActivityView projects any Activity.
func NewActivityView(activity models.Activity) ActivityView {
	view := ActivityView{
		ID:    activity.ID(),
		Name:  activity.Name(),
		Hours: activity.Hours(),
		Color: activity.BackgroundColor(),
	}
	switch typed := activity.(type) {
	case *models.Class:
		view.Kind = ActivityKindClass
		for _, group := range typed.Groups() {
			view.Groups = append(view.Groups, NewSectionGroupView(group))
		}
	case *models.NonClass:
		view.Kind = ActivityKindEvent
		for _, slot := range typed.Timeslots() {
			view.Timeslots = append(view.Timeslots, NewTimeslotView(slot))
		}
	}
	return view
}
