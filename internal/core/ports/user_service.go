package ports

import (
	"context"

	"github.com/campushub/events-api/internal/core/domain"
)

// UpdateProfileInput carries the optional profile fields. Empty values leave
// the stored field unchanged; there is no way to clear a field to empty.
type UpdateProfileInput struct {
	Name           string
	Email          string
	Phone          string
	College        string
	ProfilePicture string
	Password       string
}

// UserService defines use-case operations on the caller's own account.
type UserService interface {
	// RegisteredEvents resolves the caller's event references into full
	// event records.
	RegisteredEvents(ctx context.Context, userID string) ([]domain.Event, error)

	// UpdateProfile merges the supplied fields over the stored record and
	// returns a freshly signed token reflecting any identity changes.
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (string, error)

	RegisterForEvent(ctx context.Context, userID, eventID string) error
}
