package models

import "time"

// DefaultEventColor is used for calendar entries whose owning activity has no
// explicit background color set.
const DefaultEventColor = "#4A5E8C"

// Event is a derived, read-only materialization of the slots an activity
// currently occupies. Events are recomputed from live selection state on
// every access and must never be treated as cached truth.
type Event struct {
	Activity Activity
	Name     string
	Slots    []Timeslot
	Room     string
}

// NewEvent bundles an activity's occupied slots into a renderable event.
func NewEvent(owner Activity, name string, slots []Timeslot, room string) *Event {
	return &Event{Activity: owner, Name: name, Slots: slots, Room: room}
}

// EventInstance is one renderable calendar entry, anchored to the reference
// week. Renderers treat ActivityID as opaque identity.
type EventInstance struct {
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Color      string    `json:"color"`
	Room       string    `json:"room,omitempty"`
	ActivityID string    `json:"activity_id"`
}

// Hours sums the weekly hours across the event's slots.
func (e *Event) Hours() float64 {
	var total float64
	for _, slot := range e.Slots {
		total += slot.Hours()
	}
	return total
}

// Render produces one entry per slot, falling back to DefaultEventColor when
// the owning activity carries no color.
func (e *Event) Render() []EventInstance {
	color := DefaultEventColor
	activityID := ""
	if e.Activity != nil {
		if c := e.Activity.BackgroundColor(); c != "" {
			color = c
		}
		activityID = e.Activity.ID()
	}

	instances := make([]EventInstance, 0, len(e.Slots))
	for _, slot := range e.Slots {
		instances = append(instances, EventInstance{
			Title:      e.Name,
			Start:      slot.StartTime(),
			End:        slot.EndTime(),
			Color:      color,
			Room:       e.Room,
			ActivityID: activityID,
		})
	}
	return instances
}
