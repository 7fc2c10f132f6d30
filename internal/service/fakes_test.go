package service

// In-memory repository fakes for exercising the entity actions without
// a database.

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-orderdesk/internal/listing"
	"go-orderdesk/internal/model"
)

// pageSlice applies the query's offset/limit window the way OFFSET and
// LIMIT do, so past-the-end pages come back empty rather than erroring.
// A zero limit means the caller skipped Normalize and gets everything.
func pageSlice[T any](items []T, q listing.Query) []T {
	if q.Limit <= 0 {
		return items
	}
	off := q.Offset()
	if off >= len(items) {
		return []T{}
	}
	end := off + q.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[off:end]
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
	orders    map[uuid.UUID]int64 // customer id -> referencing order count
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers: make(map[uuid.UUID]*model.Customer),
		orders:    make(map[uuid.UUID]int64),
	}
}

func (r *fakeCustomerRepo) Create(customer *model.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	if c, ok := r.customers[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) FindByEmail(email string) (*model.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCustomerRepo) Update(customer *model.Customer) error {
	if _, ok := r.customers[customer.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(q listing.Query) ([]model.Customer, int64, error) {
	var out []model.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return pageSlice(out, q), int64(len(out)), nil
}

func (r *fakeCustomerRepo) Count() (int64, error) {
	return int64(len(r.customers)), nil
}

func (r *fakeCustomerRepo) CountOrders(id uuid.UUID) (int64, error) {
	return r.orders[id], nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *fakeProductRepo) add(name string, price float64) *model.Product {
	p := &model.Product{
		Name:        name,
		Description: name,
		Category:    model.CategoryOther,
		Unit:        model.UnitPiece,
		Price:       price,
	}
	p.ID = uuid.New()
	r.products[p.ID] = p
	return p
}

func (r *fakeProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// Mirrors an IN query: duplicates in ids resolve to one row
func (r *fakeProductRepo) FindByIDs(ids []uuid.UUID) ([]model.Product, error) {
	seen := make(map[uuid.UUID]bool, len(ids))
	var out []model.Product
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(product *model.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(q listing.Query) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return pageSlice(out, q), int64(len(out)), nil
}

func (r *fakeProductRepo) Count() (int64, error) {
	return int64(len(r.products)), nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*model.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*model.Order)}
}

func (r *fakeOrderRepo) Create(order *model.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
		order.Items[i].OrderID = order.ID
	}
	cp := *order
	cp.Items = append([]model.OrderItem(nil), order.Items...)
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	cp.Items = append([]model.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (r *fakeOrderRepo) Update(order *model.Order, items []model.OrderItem) error {
	stored, ok := r.orders[order.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].OrderID = order.ID
	}
	stored.CustomerID = order.CustomerID
	stored.Status = order.Status
	stored.TotalAmount = order.TotalAmount
	stored.UpdatedBy = order.UpdatedBy
	stored.Items = append([]model.OrderItem(nil), items...)
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(id uuid.UUID, status model.OrderStatus, updatedBy string) error {
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	o.UpdatedBy = updatedBy
	return nil
}

func (r *fakeOrderRepo) Delete(id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) List(q listing.Query) ([]model.Order, int64, error) {
	var out []model.Order
	for _, o := range r.orders {
		if q.Filtered() && string(o.Status) != q.Filter {
			continue
		}
		out = append(out, *o)
	}
	return pageSlice(out, q), int64(len(out)), nil
}

func (r *fakeOrderRepo) Count() (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) CountByStatus() (map[model.OrderStatus]int64, error) {
	counts := make(map[model.OrderStatus]int64)
	for _, s := range model.OrderStatuses {
		counts[s] = 0
	}
	for _, o := range r.orders {
		counts[o.Status]++
	}
	return counts, nil
}

func (r *fakeOrderRepo) CompletedRevenue() (float64, error) {
	var revenue float64
	for _, o := range r.orders {
		if o.Status == model.OrderCompleted {
			revenue += o.TotalAmount
		}
	}
	return revenue, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) add(username string, role model.Role) *model.User {
	u := &model.User{Username: username, Name: "User " + username, Role: role}
	u.ID = uuid.New()
	u.SetPassword("password123")
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	u, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = hashedPassword
	return nil
}

func (r *fakeUserRepo) Delete(id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(q listing.Query) ([]model.User, int64, error) {
	var out []model.User
	for _, u := range r.users {
		if q.Filtered() && string(u.Role) != q.Filter {
			continue
		}
		out = append(out, *u)
	}
	return pageSlice(out, q), int64(len(out)), nil
}
