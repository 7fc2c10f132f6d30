package service

import (
	"errors"

	"github.com/google/uuid"

	"go-orderdesk/internal/listing"
	"go-orderdesk/internal/model"
	"go-orderdesk/internal/policy"
	"go-orderdesk/internal/repository"
	"go-orderdesk/pkg/validator"
)

type UserService interface {
	CreateUser(actor policy.Actor, req *CreateUserRequest) (*model.User, error)
	DeleteUser(actor policy.Actor, userID uuid.UUID) error
	GetUser(id uuid.UUID) (*model.UserResponse, error)
	ListUsers(q listing.Query) ([]model.UserResponse, listing.Pagination, error)
}

type CreateUserRequest struct {
	Username string     `json:"username" validate:"required,min=5"`
	Password string     `json:"password" validate:"required,min=8"`
	Name     string     `json:"name" validate:"required,min=4"`
	Role     model.Role `json:"role" validate:"required,oneof=ADMIN MANAGER SALES_AGENT"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(actor policy.Actor, req *CreateUserRequest) (*model.User, error) {
	if err := policy.RequireAdminOrManager(actor); err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, invalid("Invalid user data", errs)
	}

	// MANAGER may only provision sales agents
	if err := policy.CanCreateUser(actor, req.Role); err != nil {
		return nil, err
	}

	if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
		return nil, ErrUsernameTaken
	}

	user := &model.User{
		Username: req.Username,
		Name:     req.Name,
		Role:     req.Role,
	}
	user.CreatedBy = actor.ID.String()
	user.UpdatedBy = actor.ID.String()

	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a staff account. ADMIN accounts can never be
// deleted through this path. The role check comes before the lookup so
// a denied caller learns nothing about which ids exist.
func (s *userService) DeleteUser(actor policy.Actor, userID uuid.UUID) error {
	if err := policy.RequireAdmin(actor); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if err := policy.CanDeleteUser(actor, user.Role); err != nil {
		return err
	}

	return s.userRepo.Delete(userID)
}

func (s *userService) GetUser(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) ListUsers(q listing.Query) ([]model.UserResponse, listing.Pagination, error) {
	users, total, err := s.userRepo.List(q)
	if err != nil {
		return nil, listing.Pagination{}, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, q.Paginate(total), nil
}
