package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/events-api/internal/core/domain"
	"github.com/campushub/events-api/internal/core/ports"
)

// UserService implements operations on the caller's own account.
type UserService struct {
	users  ports.UserRepository
	events ports.EventRepository
	tokens *TokenManager
	log    zerolog.Logger
}

func NewUserService(users ports.UserRepository, events ports.EventRepository, tokens *TokenManager, log zerolog.Logger) *UserService {
	return &UserService{users: users, events: events, tokens: tokens, log: log}
}

// RegisteredEvents resolves the caller's event references into full records,
// preserving the order the registrations were recorded in. The repository's
// $in fetch returns documents in collection order, so the results are
// reordered against the stored reference list.
func (s *UserService) RegisteredEvents(ctx context.Context, userID string) ([]domain.Event, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.RegisteredEvents) == 0 {
		return []domain.Event{}, nil
	}

	events, err := s.events.FindByIDs(ctx, user.RegisteredEvents)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Event, len(events))
	for _, ev := range events {
		byID[ev.ID] = ev
	}
	ordered := make([]domain.Event, 0, len(events))
	for _, id := range user.RegisteredEvents {
		if ev, ok := byID[id]; ok {
			ordered = append(ordered, ev)
		}
	}
	return ordered, nil
}

// UpdateProfile merges the supplied non-empty fields over the stored record,
// persists it, and returns a re-signed token so the identity claims track the
// new name/email. Empty fields are indistinguishable from "not supplied" and
// leave the stored value untouched.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ports.UpdateProfileInput) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.College != "" {
		user.College = in.College
	}
	if in.ProfilePicture != "" {
		user.ProfilePicture = in.ProfilePicture
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return s.tokens.Issue(user)
}

// RegisterForEvent records the caller's registration for an event.
func (s *UserService) RegisterForEvent(ctx context.Context, userID, eventID string) error {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return err
	}

	if err := s.users.AddRegisteredEvent(ctx, userID, eventID); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Str("event_id", eventID).Msg("event registration recorded")
	return nil
}
