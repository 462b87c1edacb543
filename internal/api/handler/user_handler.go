package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/events-api/internal/api/metrics"
	"github.com/campushub/events-api/internal/core/ports"
)

// UserHandler handles operations on the authenticated caller's own account.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisteredEvents returns the caller's registered events, fully resolved.
//
// @Summary      List the caller's registered events
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   domain.Event
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/registered-events [get]
func (h *UserHandler) RegisteredEvents(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	events, err := h.service.RegisteredEvents(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, events)
}

// UpdateProfile merges the supplied fields over the caller's record and
// returns a re-signed token.
//
// @Summary      Update the caller's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields, all optional"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users/update [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, err := h.service.UpdateProfile(c.Request().Context(), userID, ports.UpdateProfileInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		College:        req.College,
		ProfilePicture: req.ProfilePicture,
		Password:       req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Message: "user details updated successfully", Token: token})
}

// RegisterForEvent records the caller's registration for an event.
//
// @Summary      Register the caller for an event
// @Tags         events
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /events/{id}/register [post]
func (h *UserHandler) RegisterForEvent(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.RegisterForEvent(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.EventRegistrationsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "registered for event"})
}
