package handler

import "time"

type createEventRequest struct {
	Name        string    `json:"name"        validate:"required"`
	Type        string    `json:"type"        validate:"required"`
	Category    string    `json:"category"    validate:"required"`
	StartDate   time.Time `json:"start_date"  validate:"required"`
	EndDate     time.Time `json:"end_date"    validate:"required"`
	Description string    `json:"description" validate:"required"`
	Picture     string    `json:"picture"     validate:"omitempty,url"`
	ApplyLink   string    `json:"apply_link"  validate:"omitempty,url"`
}

// updateEventRequest carries the optional event fields. Omitted or zero
// fields leave the stored value unchanged; created_by is never updatable.
type updateEventRequest struct {
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description string    `json:"description"`
	Picture     string    `json:"picture"    validate:"omitempty,url"`
	ApplyLink   string    `json:"apply_link" validate:"omitempty,url"`
}

// creatorResponse is the reduced creator view exposed on listed events.
type creatorResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// listedEventResponse is an event as returned by the list endpoint, with the
// creator reference resolved to name and email only.
type listedEventResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Description string          `json:"description"`
	Picture     string          `json:"picture,omitempty"`
	ApplyLink   string          `json:"apply_link,omitempty"`
	CreatedBy   creatorResponse `json:"created_by"`
}
