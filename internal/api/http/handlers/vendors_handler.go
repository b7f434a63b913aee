package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-planner/internal/api/dto"
	"github.com/spec-kit/event-planner/internal/service"
	apperrors "github.com/spec-kit/event-planner/pkg/util/errorutil"
)

// VendorsHandler manages vendor CRUD endpoints.
type VendorsHandler struct {
	service *service.VendorService
}

// NewVendorsHandler constructs handler.
func NewVendorsHandler(vendorService *service.VendorService) *VendorsHandler {
	return &VendorsHandler{service: vendorService}
}

// List GET /api/vendors.
func (h *VendorsHandler) List(c *fiber.Ctx) error {
	p := pageParams(c)
	vendors, total, err := h.service.List(c.Context(), p)
	if err != nil {
		return err
	}
	items := make([]dto.VendorResponse, 0, len(vendors))
	for i := range vendors {
		items = append(items, vendorResponse(&vendors[i]))
	}
	return c.JSON(listResponse(items, p, total))
}

// Create POST /api/vendors.
func (h *VendorsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	vendor, err := h.service.Create(c.Context(), service.VendorCreateInput{
		Name:         req.Name,
		Service:      req.Service,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(vendorResponse(vendor))
}

// Get GET /api/vendors/:id.
func (h *VendorsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "vendor")
	if err != nil {
		return err
	}
	vendor, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(vendorResponse(vendor))
}

// Update PUT /api/vendors/:id.
func (h *VendorsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "vendor")
	if err != nil {
		return err
	}
	var req dto.UpdateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	vendor, err := h.service.Update(c.Context(), id, service.VendorUpdateInput{
		Name:         req.Name,
		Service:      req.Service,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		return err
	}
	return c.JSON(vendorResponse(vendor))
}

// Delete DELETE /api/vendors/:id.
func (h *VendorsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "vendor")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Deleted: true})
}
