package service

import (
	"github.com/google/uuid"

	"go-orderdesk/internal/listing"
	"go-orderdesk/internal/model"
	"go-orderdesk/internal/policy"
	"go-orderdesk/internal/repository"
	"go-orderdesk/pkg/validator"
)

type ProductService interface {
	CreateProduct(actor policy.Actor, req *ProductRequest) (*model.Product, error)
	UpdateProduct(actor policy.Actor, id uuid.UUID, req *ProductRequest) (*model.Product, error)
	DeleteProduct(actor policy.Actor, id uuid.UUID) error
	GetProduct(id uuid.UUID) (*model.Product, error)
	ListProducts(q listing.Query) ([]model.Product, listing.Pagination, error)
}

type ProductRequest struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description" validate:"required"`
	Category    model.Category `json:"category" validate:"required,oneof=ELECTRONICS GROCERY CLOTHING STATIONERY BEAUTY FURNITURE TOYS MEDICINE OTHER"`
	Unit        model.Unit     `json:"unit" validate:"required,oneof=PIECE GRAM KILOGRAM LITRE MILLILITRE METER CENTIMETER BOX PACK"`
	Price       float64        `json:"price" validate:"gte=0"`
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(actor policy.Actor, req *ProductRequest) (*model.Product, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, invalid("Invalid product data", errs)
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Unit:        req.Unit,
		Price:       req.Price,
	}
	product.CreatedBy = actor.ID.String()
	product.UpdatedBy = actor.ID.String()

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) UpdateProduct(actor policy.Actor, id uuid.UUID, req *ProductRequest) (*model.Product, error) {
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, invalid("Invalid product data", errs)
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	// Price changes only affect future orders; existing order items
	// keep their snapshot.
	product.Name = req.Name
	product.Description = req.Description
	product.Category = req.Category
	product.Unit = req.Unit
	product.Price = req.Price
	product.UpdatedBy = actor.ID.String()

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(actor policy.Actor, id uuid.UUID) error {
	if err := policy.RequireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.productRepo.FindByID(id); err != nil {
		return ErrProductNotFound
	}

	return s.productRepo.Delete(id)
}

func (s *productService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) ListProducts(q listing.Query) ([]model.Product, listing.Pagination, error) {
	products, total, err := s.productRepo.List(q)
	if err != nil {
		return nil, listing.Pagination{}, err
	}
	return products, q.Paginate(total), nil
}
