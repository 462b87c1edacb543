package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/events-api/internal/api/metrics"
	"github.com/campushub/events-api/internal/core/ports"
)

// EventHandler handles event listing and admin CRUD.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List returns all events with the creator reduced to name and email.
//
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   listedEventResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /events [get]
func (h *EventHandler) List(c echo.Context) error {
	details, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]listedEventResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, listedEventResponse{
			ID:          d.Event.ID,
			Name:        d.Event.Name,
			Type:        d.Event.Type,
			Category:    d.Event.Category,
			StartDate:   d.Event.StartDate,
			EndDate:     d.Event.EndDate,
			Description: d.Event.Description,
			Picture:     d.Event.Picture,
			ApplyLink:   d.Event.ApplyLink,
			CreatedBy:   creatorResponse{Name: d.Creator.Name, Email: d.Creator.Email},
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// Create persists a new event owned by the calling admin.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      createEventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateEventInput{
		Name:        req.Name,
		Type:        req.Type,
		Category:    req.Category,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Picture:     req.Picture,
		ApplyLink:   req.ApplyLink,
		CreatedBy:   userID,
	})
	if err != nil {
		return err
	}

	metrics.EventMutationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update merges the supplied fields over an existing event.
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string              true  "Event id"
// @Param        body  body      updateEventRequest  true  "Event fields, all optional"
// @Success      200   {object}  domain.Event
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateEventInput{
		Name:        req.Name,
		Type:        req.Type,
		Category:    req.Category,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Picture:     req.Picture,
		ApplyLink:   req.ApplyLink,
		ActorID:     userID,
	})
	if err != nil {
		return err
	}

	metrics.EventMutationsTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, updated)
}

// Delete removes an event permanently.
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	metrics.EventMutationsTotal.WithLabelValues("deleted").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "event deleted successfully"})
}
