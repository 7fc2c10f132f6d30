package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-orderdesk/internal/model"
	"go-orderdesk/internal/service"
)

// Default page size for product lists
const productPageSize = 12

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProducts returns a filtered, paginated product list
// GET /api/v1/products?q=&category=&page=&limit=
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	q, err := parseListQuery(c, "category", productPageSize)
	if err != nil {
		return fail(c, 400, err.Error())
	}
	if q.Filtered() && !model.Category(q.Filter).Valid() {
		return fail(c, 400, "Invalid category filter")
	}

	products, pagination, err := h.service.ListProducts(q)
	if err != nil {
		return respondError(c, err)
	}
	return listResponse(c, products, pagination)
}

// GetProduct returns a single product by ID
// GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid product ID")
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "product": product})
}

// CreateProduct handles product creation (admin only)
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	product, err := h.service.CreateProduct(actorFrom(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct handles a full-field product update (admin only)
// PUT /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid product ID")
	}

	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	product, err := h.service.UpdateProduct(actorFrom(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product edited successfully",
		"product": product,
	})
}

// DeleteProduct handles permanent product deletion (admin only)
// DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid product ID")
	}

	if err := h.service.DeleteProduct(actorFrom(c), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Product deleted successfully"})
}
