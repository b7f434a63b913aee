package service

import (
	"context"

	"github.com/spec-kit/event-planner/internal/repository"
	apperrors "github.com/spec-kit/event-planner/pkg/util/errorutil"
)

// EntityCounts is a point-in-time snapshot of stored entity totals.
type EntityCounts struct {
	Users    int64
	Events   int64
	Vendors  int64
	Bookings int64
}

// StatsService reads entity counts straight from the store; nothing is
// cached in process.
type StatsService struct {
	users    repository.UserRepository
	events   repository.EventRepository
	vendors  repository.VendorRepository
	bookings repository.BookingRepository
}

// StatsDependencies bundles repositories for the stats service.
type StatsDependencies struct {
	UserRepo    repository.UserRepository
	EventRepo   repository.EventRepository
	VendorRepo  repository.VendorRepository
	BookingRepo repository.BookingRepository
}

// NewStatsService constructs the service.
func NewStatsService(deps StatsDependencies) *StatsService {
	return &StatsService{
		users:    deps.UserRepo,
		events:   deps.EventRepo,
		vendors:  deps.VendorRepo,
		bookings: deps.BookingRepo,
	}
}

// Counts returns entity totals for the metrics endpoint.
func (s *StatsService) Counts(ctx context.Context) (EntityCounts, error) {
	var counts EntityCounts
	var err error

	if counts.Users, err = s.users.Count(ctx); err != nil {
		return EntityCounts{}, apperrors.MapError(err)
	}
	if counts.Events, err = s.events.Count(ctx); err != nil {
		return EntityCounts{}, apperrors.MapError(err)
	}
	if counts.Vendors, err = s.vendors.Count(ctx); err != nil {
		return EntityCounts{}, apperrors.MapError(err)
	}
	if counts.Bookings, err = s.bookings.Count(ctx); err != nil {
		return EntityCounts{}, apperrors.MapError(err)
	}
	return counts, nil
}
