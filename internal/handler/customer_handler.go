package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-orderdesk/internal/service"
)

// Default page size for customer lists
const customerPageSize = 24

type CustomerHandler struct {
	service service.CustomerService
}

func NewCustomerHandler(s service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

// GetCustomers returns a filtered, paginated customer list
// GET /api/v1/customers?q=&page=&limit=
func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	q, err := parseListQuery(c, "", customerPageSize)
	if err != nil {
		return fail(c, 400, err.Error())
	}

	customers, pagination, err := h.service.ListCustomers(q)
	if err != nil {
		return respondError(c, err)
	}
	return listResponse(c, customers, pagination)
}

// GetCustomer returns a single customer by ID
// GET /api/v1/customers/:id
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid customer ID")
	}

	customer, err := h.service.GetCustomer(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "customer": customer})
}

// CreateCustomer handles customer creation (admin only)
// POST /api/v1/customers
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req service.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	customer, err := h.service.CreateCustomer(actorFrom(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":  true,
		"message":  "Customer created successfully",
		"customer": customer,
	})
}

// UpdateCustomer handles a full-field customer update (admin only)
// PUT /api/v1/customers/:id
func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid customer ID")
	}

	var req service.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	customer, err := h.service.UpdateCustomer(actorFrom(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Customer updated successfully",
		"customer": customer,
	})
}

// DeleteCustomer handles permanent customer deletion (admin only)
// DELETE /api/v1/customers/:id
func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid customer ID")
	}

	if err := h.service.DeleteCustomer(actorFrom(c), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Customer deleted successfully"})
}
