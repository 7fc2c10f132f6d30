package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"go-orderdesk/internal/listing"
	"go-orderdesk/internal/policy"
	"go-orderdesk/internal/service"
)

// Every entity action is a boundary: failures are normalized to the
// uniform {success:false, message} shape here and nothing leaks past
// the transport layer as a panic or raw store error.

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

func listResponse(c *fiber.Ctx, data interface{}, pagination listing.Pagination) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

func respondError(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": verr.Message,
			"errors":  verr.Fields,
		})
	}

	switch {
	case errors.Is(err, policy.ErrNotAllowed),
		errors.Is(err, policy.ErrAdminProtected):
		return fail(c, 403, err.Error())
	case errors.Is(err, service.ErrProductsMissing):
		return fail(c, 400, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrWrongPassword):
		return fail(c, 401, err.Error())
	case errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return fail(c, 404, err.Error())
	case errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrCustomerHasOrders):
		return fail(c, 409, err.Error())
	default:
		// Never surface store internals to the client
		log.Printf("unexpected error: %v", err)
		return fail(c, 500, "Something went wrong")
	}
}

// actorFrom reads the authenticated actor placed in context by the
// auth middleware
func actorFrom(c *fiber.Ctx) policy.Actor {
	if actor, ok := c.Locals("actor").(policy.Actor); ok {
		return actor
	}
	return policy.Actor{}
}

// parseListQuery assembles the shared list parameters. filterParam
// names the entity-specific categorical filter ("" when the entity has
// none); the ALL sentinel passes through and disables the filter.
// An unknown time window is rejected rather than silently widened.
func parseListQuery(c *fiber.Ctx, filterParam string, defaultLimit int) (listing.Query, error) {
	q := listing.Query{
		Search: c.Query("q"),
		Window: listing.Window(c.Query("time", string(listing.WindowAll))),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", defaultLimit),
	}
	if !q.Window.Valid() {
		return listing.Query{}, errors.New("Invalid time filter")
	}
	if filterParam != "" {
		q.Filter = c.Query(filterParam, listing.FilterAll)
	}
	return q.Normalize(defaultLimit), nil
}
