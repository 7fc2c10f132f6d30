// Package policy holds the role access matrix. Every mutating entity
// action receives the acting user explicitly and checks it here before
// touching the store; there is no ambient session state.
package policy

import (
	"errors"

	"github.com/google/uuid"

	"go-orderdesk/internal/model"
)

var (
	// ErrNotAllowed is returned when the actor's role does not satisfy
	// the action's matrix entry.
	ErrNotAllowed = errors.New("you don't have access to this action")

	// ErrAdminProtected is returned when a delete targets an ADMIN account.
	ErrAdminProtected = errors.New("you can't delete an admin user")
)

// Actor identifies the user performing an action
type Actor struct {
	ID   uuid.UUID
	Role model.Role
}

// RequireAdmin allows only ADMIN
func RequireAdmin(actor Actor) error {
	if actor.Role != model.RoleAdmin {
		return ErrNotAllowed
	}
	return nil
}

// RequireAdminOrManager allows ADMIN and MANAGER
func RequireAdminOrManager(actor Actor) error {
	if actor.Role != model.RoleAdmin && actor.Role != model.RoleManager {
		return ErrNotAllowed
	}
	return nil
}

// CanCreateUser checks whether the actor may provision an account with
// the target role. ADMIN creates any role, MANAGER only SALES_AGENT.
func CanCreateUser(actor Actor, target model.Role) error {
	switch actor.Role {
	case model.RoleAdmin:
		return nil
	case model.RoleManager:
		if target != model.RoleSalesAgent {
			return ErrNotAllowed
		}
		return nil
	default:
		return ErrNotAllowed
	}
}

// CanDeleteUser checks whether the actor may delete an account with the
// target role. Only ADMIN deletes users, and never another ADMIN.
func CanDeleteUser(actor Actor, target model.Role) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}
	if target == model.RoleAdmin {
		return ErrAdminProtected
	}
	return nil
}
