package handler

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-orderdesk/internal/model"
	"go-orderdesk/internal/service"
)

// Default page size for order lists
const orderPageSize = 24

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// GetOrders returns a filtered, paginated order list
// GET /api/v1/orders?q=&status=&time=&page=&limit=
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	q, err := parseListQuery(c, "status", orderPageSize)
	if err != nil {
		return fail(c, 400, err.Error())
	}
	if q.Filtered() && !model.OrderStatus(q.Filter).Valid() {
		return fail(c, 400, "Invalid status filter")
	}

	orders, pagination, err := h.service.ListOrders(q)
	if err != nil {
		return respondError(c, err)
	}
	return listResponse(c, orders, pagination)
}

// GetOrder returns a single order with its items and customer
// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid order ID")
	}

	order, err := h.service.GetOrder(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "order": order})
}

// CreateOrder composes a priced order from a customer and product set
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	order, err := h.service.CreateOrder(actorFrom(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Order created successfully",
		"order":   order,
	})
}

// UpdateOrder rewrites an order's items and scalar fields
// PUT /api/v1/orders/:id
func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid order ID")
	}

	var req service.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	order, err := h.service.UpdateOrder(actorFrom(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order updated successfully",
		"order":   order,
	})
}

// UpdateOrderStatus moves an order through its lifecycle
// PATCH /api/v1/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid order ID")
	}

	var req struct {
		Status model.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	order, err := h.service.UpdateOrderStatus(actorFrom(c), id, req.Status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Order marked as %s.", strings.ToLower(string(order.Status))),
		"order":   order,
	})
}

// DeleteOrder removes an order and its items
// DELETE /api/v1/orders/:id
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid order ID")
	}

	if err := h.service.DeleteOrder(actorFrom(c), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Order deleted successfully"})
}
