package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-orderdesk/internal/listing"
	"go-orderdesk/internal/model"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindByID(id uuid.UUID) (*model.Customer, error)
	FindByEmail(email string) (*model.Customer, error)
	Update(customer *model.Customer) error
	Delete(id uuid.UUID) error
	List(q listing.Query) ([]model.Customer, int64, error)
	Count() (int64, error)
	CountOrders(id uuid.UUID) (int64, error)
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) FindByEmail(email string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) Update(customer *model.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Customer{}, "id = ?", id).Error
}

// List matches free text against name and email, newest first
func (r *customerRepo) List(q listing.Query) ([]model.Customer, int64, error) {
	db := r.db.Model(&model.Customer{})
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		db = db.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []model.Customer
	err := db.Order("created_at DESC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&customers).Error
	return customers, total, err
}

func (r *customerRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.Customer{}).Count(&total).Error
	return total, err
}

func (r *customerRepo) CountOrders(id uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&model.Order{}).Where("customer_id = ?", id).Count(&total).Error
	return total, err
}
