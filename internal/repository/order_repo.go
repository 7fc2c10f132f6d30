package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-orderdesk/internal/listing"
	"go-orderdesk/internal/model"
)

type OrderRepository interface {
	Create(order *model.Order) error
	FindByID(id uuid.UUID) (*model.Order, error)
	Update(order *model.Order, items []model.OrderItem) error
	UpdateStatus(id uuid.UUID, status model.OrderStatus, updatedBy string) error
	Delete(id uuid.UUID) error
	List(q listing.Query) ([]model.Order, int64, error)
	Count() (int64, error)
	CountByStatus() (map[model.OrderStatus]int64, error)
	CompletedRevenue() (float64, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

// Create persists the order together with its items in one statement
// batch; GORM wraps the association insert in a transaction.
func (r *orderRepo) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Customer").Preload("Items.Product").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Update rewrites the order's items (delete all, recreate) and its
// scalar fields atomically. A failure mid-way rolls everything back so
// an order can never be left without items.
func (r *orderRepo) Update(order *model.Order, items []model.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		return tx.Model(&model.Order{}).
			Where("id = ?", order.ID).
			Updates(map[string]interface{}{
				"customer_id":  order.CustomerID,
				"status":       order.Status,
				"total_amount": order.TotalAmount,
				"updated_by":   order.UpdatedBy,
			}).Error
	})
}

func (r *orderRepo) UpdateStatus(id uuid.UUID, status model.OrderStatus, updatedBy string) error {
	res := r.db.Model(&model.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the order and its items in one transaction
func (r *orderRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Order{}, "id = ?", id).Error
	})
}

// List matches free text against the order id and the customer's name
// and phone, filters on status and the creation time window
func (r *orderRepo) List(q listing.Query) ([]model.Order, int64, error) {
	db := r.db.Model(&model.Order{}).Joins("Customer")
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		db = db.Where(`CAST(orders.id AS TEXT) ILIKE ? OR "Customer".name ILIKE ? OR "Customer".phone ILIKE ?`,
			pattern, pattern, pattern)
	}
	if q.Filtered() {
		db = db.Where("orders.status = ?", q.Filter)
	}
	if bound, ok := q.Window.Bound(time.Now()); ok {
		db = db.Where("orders.created_at >= ?", bound)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	err := db.Preload("Items.Product").
		Order("orders.created_at DESC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.Order{}).Count(&total).Error
	return total, err
}

func (r *orderRepo) CountByStatus() (map[model.OrderStatus]int64, error) {
	rows, err := r.db.Model(&model.Order{}).
		Select("status, COUNT(*)").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.OrderStatus]int64, len(model.OrderStatuses))
	for _, s := range model.OrderStatuses {
		counts[s] = 0
	}
	for rows.Next() {
		var status model.OrderStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *orderRepo) CompletedRevenue() (float64, error) {
	var revenue float64
	err := r.db.Model(&model.Order{}).
		Where("status = ?", model.OrderCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	return revenue, err
}
