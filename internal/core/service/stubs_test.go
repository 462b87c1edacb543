package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushub/events-api/internal/core/domain"
)

// In-memory fakes shared by the service tests.

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copied := *user
	copied.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[copied.ID] = &copied
	out := copied
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *stubUserRepo) FindByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	var out []domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(ctx context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *stubUserRepo) AddRegisteredEvent(ctx context.Context, userID, eventID string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	for _, id := range u.RegisteredEvents {
		if id == eventID {
			return nil
		}
	}
	u.RegisteredEvents = append(u.RegisteredEvents, eventID)
	return nil
}

type stubEventRepo struct {
	events map[string]*domain.Event
	order  []string
	nextID int
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[string]*domain.Event)}
}

func (r *stubEventRepo) Insert(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	r.nextID++
	copied := *event
	copied.ID = fmt.Sprintf("event_%d", r.nextID)
	r.events[copied.ID] = &copied
	r.order = append(r.order, copied.ID)
	out := copied
	return &out, nil
}

func (r *stubEventRepo) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	ev, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	out := *ev
	return &out, nil
}

func (r *stubEventRepo) FindAll(ctx context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.events[id])
	}
	return out, nil
}

// FindByIDs returns matches in insertion order regardless of the requested
// id order, mirroring how an $in query walks the collection.
func (r *stubEventRepo) FindByIDs(ctx context.Context, ids []string) ([]domain.Event, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []domain.Event
	for _, id := range r.order {
		if _, ok := want[id]; ok {
			out = append(out, *r.events[id])
		}
	}
	return out, nil
}

func (r *stubEventRepo) Update(ctx context.Context, event *domain.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return domain.ErrEventNotFound
	}
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *stubEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type stubThrottle struct {
	blocked  bool
	checkErr error
	failures []string
	resets   []string
}

func (s *stubThrottle) Blocked(ctx context.Context, email string) (bool, error) {
	if s.checkErr != nil {
		return false, s.checkErr
	}
	return s.blocked, nil
}

func (s *stubThrottle) RecordFailure(ctx context.Context, email string) error {
	s.failures = append(s.failures, email)
	return nil
}

func (s *stubThrottle) Reset(ctx context.Context, email string) error {
	s.resets = append(s.resets, email)
	return nil
}

type stubAudit struct {
	entries []domain.AuditEntry
}

func (s *stubAudit) Enqueue(entry domain.AuditEntry) {
	s.entries = append(s.entries, entry)
}

var errThrottleDown = errors.New("throttle backend unavailable")
