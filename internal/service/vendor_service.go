package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/event-planner/internal/domain"
	"github.com/spec-kit/event-planner/internal/pagination"
	"github.com/spec-kit/event-planner/internal/repository"
	apperrors "github.com/spec-kit/event-planner/pkg/util/errorutil"
)

// VendorService owns the lifecycle of vendors.
type VendorService struct {
	vendors repository.VendorRepository
}

// VendorCreateInput describes vendor creation.
type VendorCreateInput struct {
	Name         string
	Service      *string
	ContactEmail *string
}

// VendorUpdateInput describes a partial update. Nil fields are untouched;
// present-but-empty clears the optional fields and is rejected for name.
type VendorUpdateInput struct {
	Name         *string
	Service      *string
	ContactEmail *string
}

// NewVendorService constructs the service.
func NewVendorService(vendors repository.VendorRepository) *VendorService {
	return &VendorService{vendors: vendors}
}

// Create adds a vendor.
func (s *VendorService) Create(ctx context.Context, input VendorCreateInput) (*domain.Vendor, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}

	vendor := &domain.Vendor{
		Name:         name,
		Service:      input.Service,
		ContactEmail: input.ContactEmail,
	}
	if err := s.vendors.Create(ctx, vendor); err != nil {
		return nil, apperrors.MapError(err)
	}
	return vendor, nil
}

// List returns one page of vendors ordered by descending id.
func (s *VendorService) List(ctx context.Context, p pagination.Params) ([]domain.Vendor, int64, error) {
	total, err := s.vendors.Count(ctx)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	items, err := s.vendors.List(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// Get fetches a single vendor.
func (s *VendorService) Get(ctx context.Context, id int64) (*domain.Vendor, error) {
	vendor, err := s.vendors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("vendor", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return vendor, nil
}

// Update applies a partial update.
func (s *VendorService) Update(ctx context.Context, id int64, input VendorUpdateInput) (*domain.Vendor, error) {
	vendor, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name must not be empty", map[string]any{"field": "name"})
		}
		vendor.Name = name
	}
	if input.Service != nil {
		vendor.Service = emptyToNil(*input.Service)
	}
	if input.ContactEmail != nil {
		vendor.ContactEmail = emptyToNil(*input.ContactEmail)
	}

	if err := s.vendors.Update(ctx, vendor); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("vendor", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return vendor, nil
}

// Delete removes a vendor. Bookings keep their vendor_id; it is a soft
// reference.
func (s *VendorService) Delete(ctx context.Context, id int64) error {
	if err := s.vendors.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("vendor", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}
