package ports

import (
	"context"

	"github.com/campushub/events-api/internal/core/domain"
)

// EventRepository defines persistence for events.
type EventRepository interface {
	Insert(ctx context.Context, event *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
}
