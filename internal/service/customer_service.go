package service

import (
	"github.com/google/uuid"

	"go-orderdesk/internal/listing"
	"go-orderdesk/internal/model"
	"go-orderdesk/internal/policy"
	"go-orderdesk/internal/repository"
	"go-orderdesk/pkg/validator"
)

type CustomerService interface {
	CreateCustomer(actor policy.Actor, req *CustomerRequest) (*model.Customer, error)
	UpdateCustomer(actor policy.Actor, id uuid.UUID, req *CustomerRequest) (*model.Customer, error)
	DeleteCustomer(actor policy.Actor, id uuid.UUID) error
	GetCustomer(id uuid.UUID) (*model.Customer, error)
	ListCustomers(q listing.Query) ([]model.Customer, listing.Pagination, error)
}

type CustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(actor policy.Actor, req *CustomerRequest) (*model.Customer, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, invalid("Invalid customer data", errs)
	}

	// Email is unique-ish; reject an exact duplicate up front
	if existing, _ := s.customerRepo.FindByEmail(req.Email); existing != nil {
		return nil, ErrEmailExists
	}

	customer := &model.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	customer.CreatedBy = actor.ID.String()
	customer.UpdatedBy = actor.ID.String()

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(actor policy.Actor, id uuid.UUID, req *CustomerRequest) (*model.Customer, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, invalid("Invalid customer data", errs)
	}

	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		return nil, ErrCustomerNotFound
	}

	if req.Email != customer.Email {
		if existing, _ := s.customerRepo.FindByEmail(req.Email); existing != nil {
			return nil, ErrEmailExists
		}
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.UpdatedBy = actor.ID.String()

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer refuses to remove a customer that orders still
// reference; deletion is permanent in this system.
func (s *customerService) DeleteCustomer(actor policy.Actor, id uuid.UUID) error {
	if err := policy.RequireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.customerRepo.FindByID(id); err != nil {
		return ErrCustomerNotFound
	}

	orders, err := s.customerRepo.CountOrders(id)
	if err != nil {
		return err
	}
	if orders > 0 {
		return ErrCustomerHasOrders
	}

	return s.customerRepo.Delete(id)
}

func (s *customerService) GetCustomer(id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *customerService) ListCustomers(q listing.Query) ([]model.Customer, listing.Pagination, error) {
	customers, total, err := s.customerRepo.List(q)
	if err != nil {
		return nil, listing.Pagination{}, err
	}
	return customers, q.Paginate(total), nil
}
