package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/memovasquez/hydrant/internal/dto"
	"github.com/memovasquez/hydrant/internal/middleware"
	"github.com/memovasquez/hydrant/internal/service"
	appErrors "github.com/memovasquez/hydrant/pkg/errors"
	"github.com/memovasquez/hydrant/pkg/response"
)

// PlannerHandler exposes the session planner endpoints.
type PlannerHandler struct {
	planner  *service.PlannerService
	sessions *service.SessionService
}

// NewPlannerHandler constructs PlannerHandler.
func NewPlannerHandler(planner *service.PlannerService, sessions *service.SessionService) *PlannerHandler {
	return &PlannerHandler{planner: planner, sessions: sessions}
}

func sessionID(c *gin.Context) (string, bool) {
	id, ok := middleware.SessionID(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "missing planner session"))
	}
	return id, ok
}

// CreateSession godoc
// @Summary Open a planner session
// @Tags Planner
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /sessions [post]
func (h *PlannerHandler) CreateSession(c *gin.Context) {
	id := h.planner.CreateSession()
	token, _, err := h.sessions.IssueToken(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.SessionCreated{SessionID: id, Token: token})
}

// Snapshot godoc
// @Summary Get the full planner state
// @Tags Planner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /session [get]
func (h *PlannerHandler) Snapshot(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.planner.Snapshot(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Calendar godoc
// @Summary Render the session week
// @Tags Planner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /session/calendar [get]
func (h *PlannerHandler) Calendar(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.planner.Calendar(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Suggest godoc
// @Summary Rank section alternatives against the session
// @Tags Planner
// @Produce json
// @Security BearerAuth
// @Param number path string true "Class number"
// @Success 200 {object} response.Envelope
// @Router /session/suggestions/{number} [get]
func (h *PlannerHandler) Suggest(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	suggestions, err := h.planner.Suggest(id, c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, suggestions, nil)
}

// AddClass godoc
// @Summary Add a catalog class to the session
// @Tags Planner
// @Produce json
// @Security BearerAuth
// @Param number path string true "Class number"
// @Success 201 {object} response.Envelope
// @Router /session/classes/{number} [post]
func (h *PlannerHandler) AddClass(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.planner.AddClass(c.Request.Context(), id, c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, view)
}

// RemoveActivity godoc
// @Summary Remove an activity from the session
// @Tags Planner
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Success 204
// @Router /session/activities/{id} [delete]
func (h *PlannerHandler) RemoveActivity(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.planner.RemoveActivity(id, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// SelectSection godoc
// @Summary Select a section alternative
// @Tags Planner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param number path string true "Class number"
// @Param payload body service.SelectSectionRequest true "Selection payload"
// @Success 200 {object} response.Envelope
// @Router /session/classes/{number}/sections [post]
func (h *PlannerHandler) SelectSection(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req service.SelectSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	view, err := h.planner.SelectSection(id, c.Param("number"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// ClearSection godoc
// @Summary Clear the selection of one section group
// @Tags Planner
// @Security BearerAuth
// @Param number path string true "Class number"
// @Param kind path string true "Section kind"
// @Success 204
// @Router /session/classes/{number}/sections/{kind} [delete]
func (h *PlannerHandler) ClearSection(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.planner.ClearSection(id, c.Param("number"), c.Param("kind")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

type lockRequest struct {
	Locked *bool `json:"locked" binding:"required"`
}

// SetLock godoc
// @Summary Toggle the advisory lock on a section group
// @Tags Planner
// @Accept json
// @Security BearerAuth
// @Param number path string true "Class number"
// @Param kind path string true "Section kind"
// @Param payload body lockRequest true "Lock payload"
// @Success 204
// @Router /session/classes/{number}/sections/{kind}/lock [put]
func (h *PlannerHandler) SetLock(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req lockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.planner.SetLock(id, c.Param("number"), c.Param("kind"), *req.Locked); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// SetColor godoc
// @Summary Set an activity's display color
// @Tags Planner
// @Accept json
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Param payload body service.ColorRequest true "Color payload"
// @Success 204
// @Router /session/activities/{id}/color [put]
func (h *PlannerHandler) SetColor(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req service.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.planner.SetColor(id, c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateEvent godoc
// @Summary Create a personal event
// @Tags Planner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.EventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Router /session/events [post]
func (h *PlannerHandler) CreateEvent(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req service.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	view, err := h.planner.CreateEvent(id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, view)
}

// RenameEvent godoc
// @Summary Rename a personal event
// @Tags Planner
// @Accept json
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Param payload body service.EventRequest true "Event payload"
// @Success 204
// @Router /session/events/{id} [put]
func (h *PlannerHandler) RenameEvent(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req service.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.planner.RenameEvent(id, c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddEventTimeslot godoc
// @Summary Add a timeslot to a personal event
// @Tags Planner
// @Accept json
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Param payload body service.TimeslotRequest true "Timeslot payload"
// @Success 204
// @Router /session/events/{id}/timeslots [post]
func (h *PlannerHandler) AddEventTimeslot(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req service.TimeslotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.planner.AddEventTimeslot(id, c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// RemoveEventTimeslot godoc
// @Summary Remove a timeslot from a personal event
// @Tags Planner
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Param start query int true "Start slot"
// @Param slots query int true "Slot count"
// @Success 204
// @Router /session/events/{id}/timeslots [delete]
func (h *PlannerHandler) RemoveEventTimeslot(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	start, err := strconv.Atoi(c.Query("start"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "start must be a slot number"))
		return
	}
	slots, err := strconv.Atoi(c.Query("slots"))
	if err != nil || slots < 1 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "slots must be a positive count"))
		return
	}
	if err := h.planner.RemoveEventTimeslot(id, c.Param("id"), start, slots); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
