package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/events-api/internal/core/domain"
	"github.com/campushub/events-api/internal/core/ports"
)

func seedUser(t *testing.T, users *stubUserRepo, name, email, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	created, err := users.Create(context.Background(), &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func newUserService(users *stubUserRepo, events *stubEventRepo) *UserService {
	return NewUserService(users, events, NewTokenManager("test-secret", time.Hour), zerolog.Nop())
}

func TestUserService_RegisteredEvents(t *testing.T) {
	users := newStubUserRepo()
	events := newStubEventRepo()
	svc := newUserService(users, events)

	ev1, _ := events.Insert(context.Background(), &domain.Event{Name: "Hackathon"})
	ev2, _ := events.Insert(context.Background(), &domain.Event{Name: "Workshop"})
	_, _ = events.Insert(context.Background(), &domain.Event{Name: "Unrelated"})

	user := seedUser(t, users, "alice", "alice@x.com", "secret1")
	if err := users.AddRegisteredEvent(context.Background(), user.ID, ev1.ID); err != nil {
		t.Fatalf("add event: %v", err)
	}
	if err := users.AddRegisteredEvent(context.Background(), user.ID, ev2.ID); err != nil {
		t.Fatalf("add event: %v", err)
	}

	got, err := svc.RegisteredEvents(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("registered events: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Name != "Hackathon" || got[1].Name != "Workshop" {
		t.Fatalf("unexpected events: %+v", got)
	}
}

func TestUserService_RegisteredEvents_RegistrationOrder(t *testing.T) {
	users := newStubUserRepo()
	events := newStubEventRepo()
	svc := newUserService(users, events)

	first, _ := events.Insert(context.Background(), &domain.Event{Name: "Workshop"})
	second, _ := events.Insert(context.Background(), &domain.Event{Name: "Hackathon"})

	// Register in the reverse of insertion order; the repository fetch
	// comes back in insertion order and must be reordered.
	user := seedUser(t, users, "alice", "alice@x.com", "secret1")
	if err := users.AddRegisteredEvent(context.Background(), user.ID, second.ID); err != nil {
		t.Fatalf("add event: %v", err)
	}
	if err := users.AddRegisteredEvent(context.Background(), user.ID, first.ID); err != nil {
		t.Fatalf("add event: %v", err)
	}

	got, err := svc.RegisteredEvents(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("registered events: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].ID != second.ID || got[1].ID != first.ID {
		t.Fatalf("expected registration order [%s %s], got [%s %s]",
			second.ID, first.ID, got[0].ID, got[1].ID)
	}
}

func TestUserService_RegisteredEvents_Empty(t *testing.T) {
	users := newStubUserRepo()
	svc := newUserService(users, newStubEventRepo())

	user := seedUser(t, users, "alice", "alice@x.com", "secret1")

	got, err := svc.RegisteredEvents(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("registered events: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestUserService_RegisteredEvents_UnknownUser(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubEventRepo())

	_, err := svc.RegisteredEvents(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateProfile_MergesNonEmptyFields(t *testing.T) {
	users := newStubUserRepo()
	svc := newUserService(users, newStubEventRepo())

	user := seedUser(t, users, "alice", "alice@x.com", "secret1")

	token, err := svc.UpdateProfile(context.Background(), user.ID, ports.UpdateProfileInput{
		Name:    "alice v2",
		College: "MIT",
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}

	stored, _ := users.FindByID(context.Background(), user.ID)
	if stored.Name != "alice v2" || stored.College != "MIT" {
		t.Fatalf("fields not merged: %+v", stored)
	}
	if stored.Email != "alice@x.com" {
		t.Fatalf("unsupplied email must stay unchanged, got %q", stored.Email)
	}

	claims := parseClaims(t, token)
	if claims["name"] != "alice v2" {
		t.Fatalf("re-issued token must reflect the new name, got %v", claims["name"])
	}
}

func TestUserService_UpdateProfile_RehashesPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := newUserService(users, newStubEventRepo())

	user := seedUser(t, users, "alice", "alice@x.com", "secret1")

	if _, err := svc.UpdateProfile(context.Background(), user.ID, ports.UpdateProfileInput{Password: "newpass1"}); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	stored, _ := users.FindByID(context.Background(), user.ID)
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass1")) != nil {
		t.Fatalf("new password does not verify")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")) == nil {
		t.Fatalf("old password still verifies")
	}
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	svc := newUserService(newStubUserRepo(), newStubEventRepo())

	_, err := svc.UpdateProfile(context.Background(), "ghost", ports.UpdateProfileInput{Name: "x"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_RegisterForEvent(t *testing.T) {
	users := newStubUserRepo()
	events := newStubEventRepo()
	svc := newUserService(users, events)

	user := seedUser(t, users, "alice", "alice@x.com", "secret1")
	ev, _ := events.Insert(context.Background(), &domain.Event{Name: "Hackathon"})

	if err := svc.RegisterForEvent(context.Background(), user.ID, ev.ID); err != nil {
		t.Fatalf("register for event: %v", err)
	}
	// Re-registering must not duplicate the reference.
	if err := svc.RegisterForEvent(context.Background(), user.ID, ev.ID); err != nil {
		t.Fatalf("repeat registration: %v", err)
	}

	stored, _ := users.FindByID(context.Background(), user.ID)
	if len(stored.RegisteredEvents) != 1 || stored.RegisteredEvents[0] != ev.ID {
		t.Fatalf("unexpected registrations: %v", stored.RegisteredEvents)
	}
}

func TestUserService_RegisterForEvent_UnknownEvent(t *testing.T) {
	users := newStubUserRepo()
	svc := newUserService(users, newStubEventRepo())

	user := seedUser(t, users, "alice", "alice@x.com", "secret1")

	err := svc.RegisterForEvent(context.Background(), user.ID, "ghost")
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}

	stored, _ := users.FindByID(context.Background(), user.ID)
	if len(stored.RegisteredEvents) != 0 {
		t.Fatalf("registration must not be recorded: %v", stored.RegisteredEvents)
	}
}
