package service

import (
	"go-orderdesk/internal/model"
	"go-orderdesk/internal/repository"
)

// DashboardStats is the overview block on the admin landing page
type DashboardStats struct {
	TotalCustomers int64                       `json:"totalCustomers"`
	TotalProducts  int64                       `json:"totalProducts"`
	TotalOrders    int64                       `json:"totalOrders"`
	OrdersByStatus map[model.OrderStatus]int64 `json:"ordersByStatus"`
	Revenue        float64                     `json:"revenue"` // sum of COMPLETED order totals
}

type DashboardService interface {
	GetDashboardStats() (*DashboardStats, error)
}

type dashboardService struct {
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
}

func NewDashboardService(customerRepo repository.CustomerRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) DashboardService {
	return &dashboardService{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
	}
}

func (s *dashboardService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalCustomers, err = s.customerRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = s.productRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalOrders, err = s.orderRepo.Count(); err != nil {
		return nil, err
	}
	if stats.OrdersByStatus, err = s.orderRepo.CountByStatus(); err != nil {
		return nil, err
	}
	if stats.Revenue, err = s.orderRepo.CompletedRevenue(); err != nil {
		return nil, err
	}

	return stats, nil
}
