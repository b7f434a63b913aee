package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-planner/internal/api/dto"
	"github.com/spec-kit/event-planner/internal/service"
	apperrors "github.com/spec-kit/event-planner/pkg/util/errorutil"
)

// BookingsHandler manages booking CRUD endpoints.
type BookingsHandler struct {
	service *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{service: bookingService}
}

// List GET /api/bookings.
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	p := pageParams(c)
	bookings, total, err := h.service.List(c.Context(), p)
	if err != nil {
		return err
	}
	items := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, bookingResponse(&bookings[i]))
	}
	return c.JSON(listResponse(items, p, total))
}

// Create POST /api/bookings.
func (h *BookingsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		// non-integer user_id/event_id land here
		return apperrors.NewValidationError("user_id and event_id are required and must be integers", nil)
	}
	booking, err := h.service.Create(c.Context(), service.BookingCreateInput{
		UserID:   req.UserID,
		EventID:  req.EventID,
		VendorID: req.VendorID,
		Status:   req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(bookingResponse(booking))
}

// Get GET /api/bookings/:id.
func (h *BookingsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "booking")
	if err != nil {
		return err
	}
	booking, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(bookingResponse(booking))
}

// Update PUT /api/bookings/:id.
func (h *BookingsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "booking")
	if err != nil {
		return err
	}
	var req dto.UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	booking, err := h.service.Update(c.Context(), id, service.BookingUpdateInput{
		Status:   req.Status,
		VendorID: req.VendorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(bookingResponse(booking))
}

// Delete DELETE /api/bookings/:id.
func (h *BookingsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "booking")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}
