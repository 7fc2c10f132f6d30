package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-orderdesk/internal/model"
	"go-orderdesk/internal/service"
)

// Default page size for user lists
const userPageSize = 10

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers returns a filtered, paginated staff list
// GET /api/v1/users?q=&role=&page=&limit=
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	q, err := parseListQuery(c, "role", userPageSize)
	if err != nil {
		return fail(c, 400, err.Error())
	}
	if q.Filtered() && !model.Role(q.Filter).Valid() {
		return fail(c, 400, "Invalid role filter")
	}

	users, pagination, err := h.userService.ListUsers(q)
	if err != nil {
		return respondError(c, err)
	}
	return listResponse(c, users, pagination)
}

// GetUser returns a single user by ID
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid user ID")
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "user": user})
}

// CreateUser provisions a staff account (admin any role, manager only
// sales agents)
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	user, err := h.userService.CreateUser(actorFrom(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully.",
		"user":    user.ToResponse(),
	})
}

// DeleteUser removes a staff account (admin only, never an admin target)
// DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, 400, "Invalid user ID")
	}

	if err := h.userService.DeleteUser(actorFrom(c), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "User deleted successfully"})
}
