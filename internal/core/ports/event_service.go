package ports

import (
	"context"
	"time"

	"github.com/campushub/events-api/internal/core/domain"
)

// CreatorInfo is the reduced creator view exposed on listed events. Listing
// never leaks any other creator fields.
type CreatorInfo struct {
	Name  string
	Email string
}

// EventDetail is an event with its creator reference resolved.
type EventDetail struct {
	Event   domain.Event
	Creator CreatorInfo
}

// CreateEventInput carries all data needed to create an event.
type CreateEventInput struct {
	Name        string
	Type        string
	Category    string
	StartDate   time.Time
	EndDate     time.Time
	Description string
	Picture     string
	ApplyLink   string
	CreatedBy   string
}

// UpdateEventInput carries optional fields; zero values skip the overwrite.
// ActorID identifies the admin performing the update (audit only).
type UpdateEventInput struct {
	Name        string
	Type        string
	Category    string
	StartDate   time.Time
	EndDate     time.Time
	Description string
	Picture     string
	ApplyLink   string
	ActorID     string
}

// EventService defines use-case operations for events.
type EventService interface {
	List(ctx context.Context) ([]EventDetail, error)
	Create(ctx context.Context, input CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, id string, input UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id, actorID string) error
}
