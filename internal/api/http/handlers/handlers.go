package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-planner/internal/api/dto"
	"github.com/spec-kit/event-planner/internal/domain"
	"github.com/spec-kit/event-planner/internal/pagination"
	apperrors "github.com/spec-kit/event-planner/pkg/util/errorutil"
)

// parseID extracts the numeric id path parameter. A non-numeric id can
// never match a row, so it is reported as not found rather than a
// validation failure.
func parseID(c *fiber.Ctx, resource string) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewNotFound(resource, nil)
	}
	return id, nil
}

func pageParams(c *fiber.Ctx) pagination.Params {
	return pagination.Parse(c.Query("page"), c.Query("page_size"))
}

func listResponse(items any, p pagination.Params, total int64) dto.ListResponse {
	return dto.ListResponse{
		Items:    items,
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    total,
	}
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func eventResponse(event *domain.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartTime:   formatTime(event.StartTime),
		EndTime:     formatTime(event.EndTime),
		CreatedBy:   event.CreatedBy,
	}
}

func vendorResponse(vendor *domain.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:           vendor.ID,
		Name:         vendor.Name,
		Service:      vendor.Service,
		ContactEmail: vendor.ContactEmail,
	}
}

func bookingResponse(booking *domain.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:        booking.ID,
		UserID:    booking.UserID,
		EventID:   booking.EventID,
		VendorID:  booking.VendorID,
		Status:    booking.Status,
		CreatedAt: booking.CreatedAt.Format(time.RFC3339),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
