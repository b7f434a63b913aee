package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/event-planner/internal/domain"
	"github.com/spec-kit/event-planner/internal/pagination"
	"github.com/spec-kit/event-planner/internal/repository"
	apperrors "github.com/spec-kit/event-planner/pkg/util/errorutil"
)

// Accepted layouts for event date fields, tried in order.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// EventService owns the lifecycle of events.
type EventService struct {
	events repository.EventRepository
}

// EventCreateInput describes event creation. Date fields arrive as ISO-8601
// strings and are parsed here so failures can name the offending field.
type EventCreateInput struct {
	Title       string
	Description *string
	Location    *string
	StartTime   *string
	EndTime     *string
	CreatedBy   *int64
}

// EventUpdateInput describes a partial update. Nil fields are untouched;
// present-but-empty clears optional fields and is rejected for title.
type EventUpdateInput struct {
	Title       *string
	Description *string
	Location    *string
	StartTime   *string
	EndTime     *string
}

// NewEventService constructs the service.
func NewEventService(events repository.EventRepository) *EventService {
	return &EventService{events: events}
}

// Create adds an event. CreatedBy is stored as given; it is a soft
// reference and not validated against the users table.
func (s *EventService) Create(ctx context.Context, input EventCreateInput) (*domain.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title is required", nil)
	}

	event := &domain.Event{
		Title:       title,
		Description: input.Description,
		Location:    input.Location,
		CreatedBy:   input.CreatedBy,
	}

	var err error
	if event.StartTime, err = parseEventTime("start_time", input.StartTime); err != nil {
		return nil, err
	}
	if event.EndTime, err = parseEventTime("end_time", input.EndTime); err != nil {
		return nil, err
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, apperrors.MapError(err)
	}
	return event, nil
}

// List returns one page of events ordered by descending id.
func (s *EventService) List(ctx context.Context, p pagination.Params) ([]domain.Event, int64, error) {
	total, err := s.events.Count(ctx)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	items, err := s.events.List(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// Get fetches a single event.
func (s *EventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("event", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return event, nil
}

// Update applies a partial update.
func (s *EventService) Update(ctx context.Context, id int64, input EventUpdateInput) (*domain.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("title must not be empty", map[string]any{"field": "title"})
		}
		event.Title = title
	}
	if input.Description != nil {
		event.Description = emptyToNil(*input.Description)
	}
	if input.Location != nil {
		event.Location = emptyToNil(*input.Location)
	}
	if input.StartTime != nil {
		if event.StartTime, err = parseEventTime("start_time", input.StartTime); err != nil {
			return nil, err
		}
	}
	if input.EndTime != nil {
		if event.EndTime, err = parseEventTime("end_time", input.EndTime); err != nil {
			return nil, err
		}
	}

	if err := s.events.Update(ctx, event); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("event", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return event, nil
}

// Delete removes an event. Bookings referencing it are left untouched;
// their event_id becomes a dangling soft reference.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("event", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

// parseEventTime parses an ISO-8601 date field. An empty value clears the
// field; a malformed value fails naming the field.
func parseEventTime(field string, val *string) (*time.Time, error) {
	if val == nil || strings.TrimSpace(*val) == "" {
		return nil, nil
	}
	raw := strings.TrimSpace(*val)
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, apperrors.NewValidationError(
		fmt.Sprintf("invalid %s; use ISO format", field),
		map[string]any{"field": field},
	)
}

func emptyToNil(val string) *string {
	trimmed := strings.TrimSpace(val)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
