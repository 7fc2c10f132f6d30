package model

import "github.com/google/uuid"

// OrderStatus is the order lifecycle state
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCanceled  OrderStatus = "CANCELED"
)

// OrderStatuses lists every valid order status
var OrderStatuses = []OrderStatus{OrderPending, OrderCompleted, OrderCanceled}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCanceled:
		return true
	}
	return false
}

type Order struct {
	BaseModel
	CustomerID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"customerId"`
	Customer    *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	TotalAmount float64     `gorm:"not null;default:0" json:"totalAmount"`

	// Relasi
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem joins an order to a product with the price captured at
// order time. Later product price changes never touch historical orders.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"orderId"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Price     float64   `gorm:"not null" json:"price"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
}

// LineTotal is the snapshotted price times quantity
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
