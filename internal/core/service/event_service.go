package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/events-api/internal/core/domain"
	"github.com/campushub/events-api/internal/core/ports"
)

// AuditSink receives audit entries without blocking the request path.
type AuditSink interface {
	Enqueue(entry domain.AuditEntry)
}

// EventService implements event listing and admin CRUD.
type EventService struct {
	events ports.EventRepository
	users  ports.UserRepository
	audit  AuditSink
	log    zerolog.Logger
}

func NewEventService(events ports.EventRepository, users ports.UserRepository, audit AuditSink, log zerolog.Logger) *EventService {
	return &EventService{events: events, users: users, audit: audit, log: log}
}

// List returns all events with the creator reference resolved to name and
// email. Creators are fetched in one query; an event whose creator record is
// gone keeps an empty creator view.
func (s *EventService) List(ctx context.Context) ([]ports.EventDetail, error) {
	events, err := s.events.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(events))
	ids := make([]string, 0, len(events))
	for _, ev := range events {
		if ev.CreatedBy == "" {
			continue
		}
		if _, ok := seen[ev.CreatedBy]; ok {
			continue
		}
		seen[ev.CreatedBy] = struct{}{}
		ids = append(ids, ev.CreatedBy)
	}

	creators := make(map[string]ports.CreatorInfo, len(ids))
	if len(ids) > 0 {
		users, err := s.users.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			creators[u.ID] = ports.CreatorInfo{Name: u.Name, Email: u.Email}
		}
	}

	details := make([]ports.EventDetail, 0, len(events))
	for _, ev := range events {
		details = append(details, ports.EventDetail{Event: ev, Creator: creators[ev.CreatedBy]})
	}
	return details, nil
}

// Create persists a new event with CreatedBy taken from the caller's claims.
func (s *EventService) Create(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	now := time.Now().UTC()
	event := &domain.Event{
		Name:        in.Name,
		Type:        in.Type,
		Category:    in.Category,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		Picture:     in.Picture,
		ApplyLink:   in.ApplyLink,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.events.Insert(ctx, event)
	if err != nil {
		return nil, err
	}

	s.audit.Enqueue(domain.AuditEntry{ActorID: in.CreatedBy, Action: domain.AuditEventCreated, TargetID: created.ID, At: now})
	s.log.Info().Str("event_id", created.ID).Str("created_by", in.CreatedBy).Msg("event created")
	return created, nil
}

// Update merges the supplied non-zero fields over the stored event. CreatedBy
// is never touched.
func (s *EventService) Update(ctx context.Context, id string, in ports.UpdateEventInput) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		event.Name = in.Name
	}
	if in.Type != "" {
		event.Type = in.Type
	}
	if in.Category != "" {
		event.Category = in.Category
	}
	if !in.StartDate.IsZero() {
		event.StartDate = in.StartDate
	}
	if !in.EndDate.IsZero() {
		event.EndDate = in.EndDate
	}
	if in.Description != "" {
		event.Description = in.Description
	}
	if in.Picture != "" {
		event.Picture = in.Picture
	}
	if in.ApplyLink != "" {
		event.ApplyLink = in.ApplyLink
	}
	event.UpdatedAt = time.Now().UTC()

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	s.audit.Enqueue(domain.AuditEntry{ActorID: in.ActorID, Action: domain.AuditEventUpdated, TargetID: id, At: event.UpdatedAt})
	s.log.Info().Str("event_id", id).Msg("event updated")
	return event, nil
}

// Delete removes the event permanently.
func (s *EventService) Delete(ctx context.Context, id, actorID string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Enqueue(domain.AuditEntry{ActorID: actorID, Action: domain.AuditEventDeleted, TargetID: id, At: time.Now().UTC()})
	s.log.Info().Str("event_id", id).Msg("event deleted")
	return nil
}
