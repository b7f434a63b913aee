package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/event-planner/internal/domain"
	"github.com/spec-kit/event-planner/internal/events"
	"github.com/spec-kit/event-planner/internal/pagination"
	"github.com/spec-kit/event-planner/internal/repository"
	apperrors "github.com/spec-kit/event-planner/pkg/util/errorutil"
)

// BookingService owns the lifecycle of bookings. Creation is the only
// operation with a referential check: the user and event must exist.
// Vendor references and later updates are soft.
type BookingService struct {
	bookings   repository.BookingRepository
	users      repository.UserRepository
	events     repository.EventRepository
	dispatcher events.Dispatcher
}

// BookingDependencies bundles repositories for the booking service.
type BookingDependencies struct {
	BookingRepo repository.BookingRepository
	UserRepo    repository.UserRepository
	EventRepo   repository.EventRepository
	Dispatcher  events.Dispatcher
}

// BookingCreateInput describes booking creation.
type BookingCreateInput struct {
	UserID   int64
	EventID  int64
	VendorID *int64
	Status   string
}

// BookingUpdateInput describes a partial update. Nil fields are untouched;
// a present-but-empty status is rejected, vendor_id of 0 clears the vendor.
type BookingUpdateInput struct {
	Status   *string
	VendorID *int64
}

// NewBookingService constructs the service.
func NewBookingService(deps BookingDependencies) *BookingService {
	return &BookingService{
		bookings:   deps.BookingRepo,
		users:      deps.UserRepo,
		events:     deps.EventRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create adds a booking after verifying the referenced user and event.
func (s *BookingService) Create(ctx context.Context, input BookingCreateInput) (*domain.Booking, error) {
	if input.UserID <= 0 || input.EventID <= 0 {
		return nil, apperrors.NewValidationError("user_id and event_id are required and must be integers", nil)
	}

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewDomainError("NOT_FOUND", "user or event not found", 404, nil)
		}
		return nil, apperrors.MapError(err)
	}
	if _, err := s.events.GetByID(ctx, input.EventID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewDomainError("NOT_FOUND", "user or event not found", 404, nil)
		}
		return nil, apperrors.MapError(err)
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = domain.BookingStatusPending
	}

	booking := &domain.Booking{
		UserID:   input.UserID,
		EventID:  input.EventID,
		VendorID: normalizeVendorID(input.VendorID),
		Status:   status,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventBookingCreated,
		BookingID: booking.ID,
		Timestamp: time.Now(),
		Payload: events.BookingCreatedPayload{
			UserID:   booking.UserID,
			EventID:  booking.EventID,
			VendorID: booking.VendorID,
			Status:   booking.Status,
		},
	})
	return booking, nil
}

// List returns one page of bookings ordered by descending id.
func (s *BookingService) List(ctx context.Context, p pagination.Params) ([]domain.Booking, int64, error) {
	total, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	items, err := s.bookings.List(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// Get fetches a single booking.
func (s *BookingService) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return booking, nil
}

// Update applies a partial update. Neither the vendor nor the status change
// re-validates references.
func (s *BookingService) Update(ctx context.Context, id int64, input BookingUpdateInput) (*domain.Booking, error) {
	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := booking.Status
	if input.Status != nil {
		status := strings.TrimSpace(*input.Status)
		if status == "" {
			return nil, apperrors.NewValidationError("status must not be empty", map[string]any{"field": "status"})
		}
		booking.Status = status
	}
	if input.VendorID != nil {
		booking.VendorID = normalizeVendorID(input.VendorID)
	}

	if err := s.bookings.Update(ctx, booking); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if booking.Status != oldStatus {
		s.publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventBookingStatusChanged,
			BookingID: booking.ID,
			Timestamp: time.Now(),
			Payload: events.BookingStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: booking.Status,
			},
		})
	}
	return booking, nil
}

// Delete removes a booking.
func (s *BookingService) Delete(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("booking", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *BookingService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func normalizeVendorID(id *int64) *int64 {
	if id == nil || *id <= 0 {
		return nil
	}
	return id
}
