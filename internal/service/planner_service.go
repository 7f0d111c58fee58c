package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/memovasquez/hydrant/internal/dto"
	"github.com/memovasquez/hydrant/internal/models"
	appErrors "github.com/memovasquez/hydrant/pkg/errors"
)

type classProvider interface {
	Raw(ctx context.Context, number string) (*models.RawClass, error)
}

// PlannerSession holds one user's planning state: every Class materialized
// during the session plus the currently active activity set. Core entities
// are single-writer; the session mutex serializes all access so HTTP
// concurrency never reaches them.
type PlannerSession struct {
	id      string
	mu      sync.Mutex
	classes map[string]*models.Class
	active  map[string]models.Activity
	order   []string
	touched time.Time
}

// ID returns the session identifier.
func (s *PlannerSession) ID() string {
	return s.id
}

// PlannerService owns the in-memory session store and applies all planner
// mutations. Planner state is deliberately not persisted; a session lives
// until its TTL lapses.
type PlannerService struct {
	mu       sync.RWMutex
	sessions map[string]*PlannerSession

	catalog   classProvider
	validator *validator.Validate
	logger    *zap.Logger
	ttl       time.Duration
	now       func() time.Time
}

// NewPlannerService instantiates PlannerService.
func NewPlannerService(catalog classProvider, validate *validator.Validate, logger *zap.Logger, ttl time.Duration) *PlannerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &PlannerService{
		sessions:  make(map[string]*PlannerSession),
		catalog:   catalog,
		validator: validate,
		logger:    logger,
		ttl:       ttl,
		now:       time.Now,
	}
}

// CreateSession opens a fresh planner session and returns its id.
func (s *PlannerService) CreateSession() string {
	session := &PlannerSession{
		id:      uuid.NewString(),
		classes: make(map[string]*models.Class),
		active:  make(map[string]models.Activity),
		touched: s.now(),
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	s.logger.Debug("planner session created", zap.String("session_id", session.id))
	return session.id
}

// SessionCount reports how many sessions are live in the store.
func (s *PlannerService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle past the TTL and reports how many were removed.
func (s *PlannerService) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.touched.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *PlannerService) session(id string) (*PlannerSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, appErrors.ErrSessionExpired
	}
	if session.touched.Before(s.now().Add(-s.ttl)) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, appErrors.ErrSessionExpired
	}
	return session, nil
}

// withSession runs fn under the session lock, refreshing the idle timer.
func (s *PlannerService) withSession(id string, fn func(*PlannerSession) error) error {
	session, err := s.session(id)
	if err != nil {
		return err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.touched = s.now()
	return fn(session)
}

// AddClass activates a catalog class in the session. A Class is materialized
// at most once per session; re-adding a previously removed class restores it
// with its earlier selections intact.
func (s *PlannerService) AddClass(ctx context.Context, sessionID, number string) (*dto.ActivityView, error) {
	var view dto.ActivityView
	err := s.withSession(sessionID, func(session *PlannerSession) error {
		class, ok := session.classes[number]
		if !ok {
			record, err := s.catalog.Raw(ctx, number)
			if err != nil {
				return err
			}
			class = models.NewClass(record)
			session.classes[number] = class
		}

		if _, active := session.active[number]; !active {
			session.active[number] = class
			session.order = append(session.order, number)
		}
		view = dto.NewActivityView(class)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// RemoveActivity drops an activity from the active set. Classes are only
// deselected, never destroyed: their materialized instance (and selection
// state) survives for the rest of the session. Personal events are gone for
// good.
func (s *PlannerService) RemoveActivity(sessionID, activityID string) error {
	return s.withSession(sessionID, func(session *PlannerSession) error {
		if _, ok := session.active[activityID]; !ok {
			return appErrors.Clone(appErrors.ErrNotFound, "activity not in session")
		}
		delete(session.active, activityID)
		for i, id := range session.order {
			if id == activityID {
				session.order = append(session.order[:i], session.order[i+1:]...)
				break
			}
		}
		return nil
	})
}

// SelectSectionRequest chooses one alternative within a group.
type SelectSectionRequest struct {
	Kind  string `json:"kind" validate:"required"`
	Index *int   `json:"index" validate:"required"`
}

// SelectSection applies a section choice for a class in the session.
func (s *PlannerService) SelectSection(sessionID, number string, req SelectSectionRequest) (*dto.ActivityView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid selection payload")
	}

	var view dto.ActivityView
	err := s.withSession(sessionID, func(session *PlannerSession) error {
		class, group, err := s.activeGroup(session, number, req.Kind)
		if err != nil {
			return err
		}
		if err := group.SelectIndex(*req.Index); err != nil {
			if errors.Is(err, models.ErrInvalidSelection) {
				return appErrors.Clone(appErrors.ErrInvalidSelection, "section index out of range")
			}
			return err
		}
		view = dto.NewActivityView(class)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ClearSection drops the current choice for a group.
func (s *PlannerService) ClearSection(sessionID, number, kind string) error {
	return s.withSession(sessionID, func(session *PlannerSession) error {
		_, group, err := s.activeGroup(session, number, kind)
		if err != nil {
			return err
		}
		group.Clear()
		return nil
	})
}

// SetLock toggles the advisory lock on a group. The lock never blocks direct
// selection; it only pins the group against auto-suggestions.
func (s *PlannerService) SetLock(sessionID, number, kind string, locked bool) error {
	return s.withSession(sessionID, func(session *PlannerSession) error {
		_, group, err := s.activeGroup(session, number, kind)
		if err != nil {
			return err
		}
		group.Locked = locked
		return nil
	})
}

// ColorRequest updates an activity's display color.
type ColorRequest struct {
	Color string `json:"color" validate:"required,hexcolor"`
}

// SetColor sets the background color of any active activity.
func (s *PlannerService) SetColor(sessionID, activityID string, req ColorRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid color payload")
	}
	return s.withSession(sessionID, func(session *PlannerSession) error {
		activity, ok := session.active[activityID]
		if !ok {
			return appErrors.Clone(appErrors.ErrNotFound, "activity not in session")
		}
		activity.SetBackgroundColor(req.Color)
		return nil
	})
}

// EventRequest names a personal activity.
type EventRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// CreateEvent adds a new personal activity to the session.
func (s *PlannerService) CreateEvent(sessionID string, req EventRequest) (*dto.ActivityView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}

	var view dto.ActivityView
	err := s.withSession(sessionID, func(session *PlannerSession) error {
		activity := models.NewNonClass(req.Name)
		session.active[activity.ID()] = activity
		session.order = append(session.order, activity.ID())
		view = dto.NewActivityView(activity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// RenameEvent renames a personal activity.
func (s *PlannerService) RenameEvent(sessionID, activityID string, req EventRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	return s.withSession(sessionID, func(session *PlannerSession) error {
		event, err := s.activeEvent(session, activityID)
		if err != nil {
			return err
		}
		event.Rename(req.Name)
		return nil
	})
}

// TimeslotRequest carries an instant pair within the reference week.
type TimeslotRequest struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required,gtfield=Start"`
}

// AddEventTimeslot appends a timeslot to a personal activity. Catalog
// classes reject the mutation.
func (s *PlannerService) AddEventTimeslot(sessionID, activityID string, req TimeslotRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timeslot payload")
	}
	return s.withSession(sessionID, func(session *PlannerSession) error {
		activity, ok := session.active[activityID]
		if !ok {
			return appErrors.Clone(appErrors.ErrNotFound, "activity not in session")
		}
		if err := activity.AddTimeslot(req.Start, req.End); err != nil {
			if errors.Is(err, models.ErrReadOnlyActivity) {
				return appErrors.Clone(appErrors.ErrReadOnly, "catalog sections are not editable")
			}
			return err
		}
		return nil
	})
}

// RemoveEventTimeslot removes all range-equal timeslots from a personal
// activity; removing an absent range is a no-op.
func (s *PlannerService) RemoveEventTimeslot(sessionID, activityID string, startSlot, numSlots int) error {
	return s.withSession(sessionID, func(session *PlannerSession) error {
		activity, ok := session.active[activityID]
		if !ok {
			return appErrors.Clone(appErrors.ErrNotFound, "activity not in session")
		}
		if err := activity.RemoveTimeslot(models.NewTimeslot(startSlot, numSlots)); err != nil {
			if errors.Is(err, models.ErrReadOnlyActivity) {
				return appErrors.Clone(appErrors.ErrReadOnly, "catalog sections are not editable")
			}
			return err
		}
		return nil
	})
}

// Snapshot projects the session's full planner state.
func (s *PlannerService) Snapshot(sessionID string) (*dto.SessionView, error) {
	var view dto.SessionView
	err := s.withSession(sessionID, func(session *PlannerSession) error {
		view.SessionID = session.id
		for _, id := range session.order {
			activity := session.active[id]
			view.Activities = append(view.Activities, dto.NewActivityView(activity))
			view.TotalHours += activity.Hours()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Events collects the current derived events of every active activity, in
// activity order. Always recomputed; never cached.
func (s *PlannerService) Events(sessionID string) ([]*models.Event, error) {
	var events []*models.Event
	err := s.withSession(sessionID, func(session *PlannerSession) error {
		events = sessionEvents(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Calendar renders the session week as flat calendar entries.
func (s *PlannerService) Calendar(sessionID string) (*dto.CalendarView, error) {
	events, err := s.Events(sessionID)
	if err != nil {
		return nil, err
	}
	view := &dto.CalendarView{Entries: []models.EventInstance{}}
	for _, event := range events {
		view.Entries = append(view.Entries, event.Render()...)
	}
	return view, nil
}

// Suggest ranks every group of one class against the rest of the session's
// occupied slots, lowest conflict score first. This is the consumer of both
// the section severity score and the advisory lock: locked groups are
// reported but never re-ranked.
func (s *PlannerService) Suggest(sessionID, number string) ([]dto.SuggestionGroup, error) {
	var suggestions []dto.SuggestionGroup
	err := s.withSession(sessionID, func(session *PlannerSession) error {
		class, ok := session.active[number].(*models.Class)
		if !ok {
			return appErrors.Clone(appErrors.ErrNotFound, "class not in session")
		}

		// Occupied slots of everything else in the session; the target
		// class's own events do not compete with its alternatives.
		var occupied []models.Timeslot
		for _, id := range session.order {
			if id == number {
				continue
			}
			for _, event := range session.active[id].Events() {
				occupied = append(occupied, event.Slots...)
			}
		}

		for _, group := range class.Groups() {
			suggestion := dto.SuggestionGroup{Kind: group.Kind().String(), Locked: group.Locked}
			if !group.Locked {
				suggestion.Ranked = rankSections(group, occupied)
			}
			suggestions = append(suggestions, suggestion)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

func rankSections(group *models.SectionGroup, occupied []models.Timeslot) []dto.RankedSection {
	sections := group.Sections()
	ranked := make([]dto.RankedSection, 0, len(sections))
	for i, section := range sections {
		ranked = append(ranked, dto.RankedSection{
			Index:     i,
			Room:      section.Room(),
			Conflicts: section.CountConflicts(occupied),
		})
	}
	// Stable insertion sort: ties keep source order.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Conflicts < ranked[j-1].Conflicts; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	return ranked
}

func sessionEvents(session *PlannerSession) []*models.Event {
	var events []*models.Event
	for _, id := range session.order {
		events = append(events, session.active[id].Events()...)
	}
	return events
}

func (s *PlannerService) activeGroup(session *PlannerSession, number, kindRaw string) (*models.Class, *models.SectionGroup, error) {
	class, ok := session.active[number].(*models.Class)
	if !ok {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "class not in session")
	}
	kind, err := models.ParseSectionKind(kindRaw)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unknown section kind")
	}
	group := class.Group(kind)
	if group == nil {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "class has no such section group")
	}
	return class, group, nil
}

func (s *PlannerService) activeEvent(session *PlannerSession, activityID string) (*models.NonClass, error) {
	event, ok := session.active[activityID].(*models.NonClass)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "personal event not in session")
	}
	return event, nil
}
