package service

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-orderdesk/internal/listing"
	"go-orderdesk/internal/model"
	"go-orderdesk/internal/policy"
	"go-orderdesk/internal/repository"
	"go-orderdesk/pkg/validator"
)

type OrderService interface {
	CreateOrder(actor policy.Actor, req *OrderRequest) (*model.Order, error)
	UpdateOrder(actor policy.Actor, id uuid.UUID, req *OrderRequest) (*model.Order, error)
	UpdateOrderStatus(actor policy.Actor, id uuid.UUID, status model.OrderStatus) (*model.Order, error)
	DeleteOrder(actor policy.Actor, id uuid.UUID) error
	GetOrder(id uuid.UUID) (*model.Order, error)
	ListOrders(q listing.Query) ([]model.Order, listing.Pagination, error)
}

// OrderRequest composes a customer and a set of products into an order.
// TotalAmount is an optional client hint; the authoritative total is
// always recomputed from the snapshotted product prices.
type OrderRequest struct {
	CustomerID  uuid.UUID         `json:"customerId" validate:"uuid_required"`
	ProductIDs  []uuid.UUID       `json:"productIds" validate:"required,min=1"`
	Status      model.OrderStatus `json:"status" validate:"omitempty,oneof=PENDING COMPLETED CANCELED"`
	TotalAmount *float64          `json:"totalAmount" validate:"omitempty,gte=0"`
}

type orderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, customerRepo repository.CustomerRepository) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// composeItems resolves the requested products in one batch, builds one
// quantity-1 item per reference with the current price snapshotted, and
// sums the total. Any unresolved reference fails the whole composition.
func (s *orderService) composeItems(productIDs []uuid.UUID) ([]model.OrderItem, float64, error) {
	products, err := s.productRepo.FindByIDs(productIDs)
	if err != nil {
		return nil, 0, err
	}
	if len(products) != len(productIDs) {
		return nil, 0, ErrProductsMissing
	}

	byID := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]model.OrderItem, 0, len(productIDs))
	var total float64
	for _, id := range productIDs {
		p, ok := byID[id]
		if !ok {
			return nil, 0, ErrProductsMissing
		}
		item := model.OrderItem{
			ProductID: p.ID,
			Price:     p.Price,
			Quantity:  1,
		}
		items = append(items, item)
		total += item.LineTotal()
	}
	return items, total, nil
}

// checkTotalHint rejects a client-supplied total that disagrees with
// the server-computed one by more than a cent.
func checkTotalHint(hint *float64, computed float64) error {
	if hint == nil {
		return nil
	}
	if math.Abs(*hint-computed) > 0.01 {
		return invalidField("Invalid order data", "totalAmount", "Does not match the total of the selected products")
	}
	return nil
}

func (s *orderService) CreateOrder(actor policy.Actor, req *OrderRequest) (*model.Order, error) {
	if err := policy.RequireAdminOrManager(actor); err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, invalid("Invalid order data", errs)
	}

	if _, err := s.customerRepo.FindByID(req.CustomerID); err != nil {
		return nil, ErrCustomerNotFound
	}

	items, total, err := s.composeItems(req.ProductIDs)
	if err != nil {
		return nil, err
	}
	if err := checkTotalHint(req.TotalAmount, total); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.OrderPending
	}

	order := &model.Order{
		CustomerID:  req.CustomerID,
		Status:      status,
		TotalAmount: total,
		Items:       items,
	}
	order.CreatedBy = actor.ID.String()
	order.UpdatedBy = actor.ID.String()

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	return s.orderRepo.FindByID(order.ID)
}

// UpdateOrder rewrites the order's items from the new product set
// (overwrite in place, not a diff) and refreshes the scalar fields.
func (s *orderService) UpdateOrder(actor policy.Actor, id uuid.UUID, req *OrderRequest) (*model.Order, error) {
	if err := policy.RequireAdminOrManager(actor); err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, invalid("Invalid order data", errs)
	}

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	if _, err := s.customerRepo.FindByID(req.CustomerID); err != nil {
		return nil, ErrCustomerNotFound
	}

	items, total, err := s.composeItems(req.ProductIDs)
	if err != nil {
		return nil, err
	}
	if err := checkTotalHint(req.TotalAmount, total); err != nil {
		return nil, err
	}

	order.CustomerID = req.CustomerID
	if req.Status != "" {
		order.Status = req.Status
	}
	order.TotalAmount = total
	order.UpdatedBy = actor.ID.String()

	if err := s.orderRepo.Update(order, items); err != nil {
		return nil, err
	}

	return s.orderRepo.FindByID(id)
}

func (s *orderService) UpdateOrderStatus(actor policy.Actor, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if err := policy.RequireAdminOrManager(actor); err != nil {
		return nil, err
	}

	if !status.Valid() {
		return nil, invalidField("Invalid order status", "status", "Must be one of: PENDING, COMPLETED, CANCELED")
	}

	if err := s.orderRepo.UpdateStatus(id, status, actor.ID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return s.orderRepo.FindByID(id)
}

func (s *orderService) DeleteOrder(actor policy.Actor, id uuid.UUID) error {
	if err := policy.RequireAdminOrManager(actor); err != nil {
		return err
	}

	if _, err := s.orderRepo.FindByID(id); err != nil {
		return ErrOrderNotFound
	}

	return s.orderRepo.Delete(id)
}

func (s *orderService) GetOrder(id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) ListOrders(q listing.Query) ([]model.Order, listing.Pagination, error) {
	orders, total, err := s.orderRepo.List(q)
	if err != nil {
		return nil, listing.Pagination{}, err
	}
	return orders, q.Paginate(total), nil
}
