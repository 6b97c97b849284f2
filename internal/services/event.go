package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventbook/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository, logger *slog.Logger, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := event.PrepareForSave(true); err != nil {
		return err
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, slug string, update *domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	changed := applyEventUpdate(event, update)
	event.UpdatedAt = time.Now()

	if err := event.PrepareForSave(false, changed...); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// applyEventUpdate copies the patch's non-nil fields onto the event and
// returns the names of the fields that drive re-normalization.
func applyEventUpdate(event *domain.Event, update *domain.EventUpdate) []string {
	var changed []string
	if update.Title != nil {
		event.Title = *update.Title
		changed = append(changed, domain.FieldTitle)
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.Overview != nil {
		event.Overview = *update.Overview
	}
	if update.Image != nil {
		event.Image = *update.Image
	}
	if update.Venue != nil {
		event.Venue = *update.Venue
	}
	if update.Location != nil {
		event.Location = *update.Location
	}
	if update.Date != nil {
		event.Date = *update.Date
		changed = append(changed, domain.FieldDate)
	}
	if update.Time != nil {
		event.Time = *update.Time
		changed = append(changed, domain.FieldTime)
	}
	if update.Mode != nil {
		event.Mode = *update.Mode
	}
	if update.Audience != nil {
		event.Audience = *update.Audience
	}
	if update.Agenda != nil {
		event.Agenda = *update.Agenda
	}
	if update.Organizer != nil {
		event.Organizer = *update.Organizer
	}
	if update.Tags != nil {
		event.Tags = *update.Tags
	}
	return changed
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// ListSimilarEvents is best-effort by contract: an unknown slug and any
// store failure are answered with an empty slice so the listing page always
// renders. Failures are logged but never surfaced.
func (s *eventService) ListSimilarEvents(ctx context.Context, slug string) []*domain.Event {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("similar events lookup failed", "slug", slug, "err", err)
		}
		return []*domain.Event{}
	}

	similar, err := s.eventRepo.ListSimilar(ctx, event)
	if err != nil {
		s.logger.Warn("similar events query failed", "slug", slug, "err", err)
		return []*domain.Event{}
	}
	if similar == nil {
		similar = []*domain.Event{}
	}
	return similar
}
