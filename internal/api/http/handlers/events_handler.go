package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-planner/internal/api/dto"
	"github.com/spec-kit/event-planner/internal/service"
	apperrors "github.com/spec-kit/event-planner/pkg/util/errorutil"
)

// EventsHandler manages event CRUD endpoints.
type EventsHandler struct {
	service *service.EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(eventService *service.EventService) *EventsHandler {
	return &EventsHandler{service: eventService}
}

// List GET /api/events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	p := pageParams(c)
	events, total, err := h.service.List(c.Context(), p)
	if err != nil {
		return err
	}
	items := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		items = append(items, eventResponse(&events[i]))
	}
	return c.JSON(listResponse(items, p, total))
}

// Create POST /api/events.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	event, err := h.service.Create(c.Context(), service.EventCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(eventResponse(event))
}

// Get GET /api/events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "event")
	if err != nil {
		return err
	}
	event, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(eventResponse(event))
}

// Update PUT /api/events/:id.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "event")
	if err != nil {
		return err
	}
	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	event, err := h.service.Update(c.Context(), id, service.EventUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		return err
	}
	return c.JSON(eventResponse(event))
}

// Delete DELETE /api/events/:id.
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "event")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}
