package domain

import (
	"errors"
	"time"
)

var ErrEventNotFound = errors.New("event not found")

// Event is a published event users can register for. CreatedBy is set once
// from the creating admin's identity and never changed by updates.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description string    `json:"description"`
	Picture     string    `json:"picture,omitempty"`
	ApplyLink   string    `json:"apply_link,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
