package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"go-orderdesk/internal/policy"
	"go-orderdesk/internal/repository"
	"go-orderdesk/pkg/jwt"
)

// RequireAuth validates the bearer token and places the acting user in
// context as a policy.Actor. The role is read fresh from the database
// so role changes and deletions take effect on the next request.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid or expired token"})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "User not found"})
		}

		c.Locals("actor", policy.Actor{ID: user.ID, Role: user.Role})

		return c.Next()
	}
}
