package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-orderdesk/internal/listing"
	"go-orderdesk/internal/model"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByIDs(ids []uuid.UUID) ([]model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	List(q listing.Query) ([]model.Product, int64, error)
	Count() (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs resolves a batch of product references in one query.
// Callers compare the result count against the requested count to
// detect dangling references.
func (r *productRepo) FindByIDs(ids []uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// List matches free text against the product name and filters on
// category unless the ALL sentinel is passed
func (r *productRepo) List(q listing.Query) ([]model.Product, int64, error) {
	db := r.db.Model(&model.Product{})
	if q.Search != "" {
		db = db.Where("name ILIKE ?", "%"+q.Search+"%")
	}
	if q.Filtered() {
		db = db.Where("category = ?", q.Filter)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := db.Order("created_at DESC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.Product{}).Count(&total).Error
	return total, err
}
