package ports

import (
	"context"

	"github.com/campushub/events-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error

	// AddRegisteredEvent appends the event reference to the user's
	// registered events. Idempotent: adding twice stores one reference.
	AddRegisteredEvent(ctx context.Context, userID, eventID string) error
}
