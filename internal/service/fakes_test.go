package service_test

import (
	"sort"
	"strings"
	"sync"
	"time"

	"go-business-ws/internal/model"
	"go-business-ws/internal/repository"
	"go-business-ws/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type recordingHub struct {
	mu     sync.Mutex
	events []ws.Event
}

func (h *recordingHub) Publish(event ws.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
}

func (h *recordingHub) types() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.events))
	for i, e := range h.events {
		out[i] = e.Type
	}
	return out
}

// ---- products ----

type fakeProductRepo struct {
	products map[uint]*model.Product
	stocks   *fakeStockTable
	nextID   uint
}

func newFakeProductRepo(stocks *fakeStockTable, products ...model.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[uint]*model.Product{}, stocks: stocks, nextID: 1}
	for i := range products {
		p := products[i]
		r.products[p.ID] = &p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *fakeProductRepo) withStocks(p model.Product) model.Product {
	p.Stocks = nil
	if r.stocks != nil {
		for _, s := range r.stocks.rows {
			if s.ProductID == p.ID {
				p.Stocks = append(p.Stocks, *s)
			}
		}
	}
	return p
}

func (r *fakeProductRepo) Create(p *model.Product) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) FindAll() ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		out = append(out, r.withStocks(*p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) FindByID(id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := r.withStocks(*p)
	return &cp, nil
}

func (r *fakeProductRepo) FindByIDs(ids []uint) ([]model.Product, error) {
	var out []model.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindByCode(code string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Update(p *model.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id uint) error {
	delete(r.products, id)
	return nil
}

// ---- warehouses & stock ----

type fakeStockTable struct {
	rows      []*model.Stock
	movements []model.StockMovement
}

func (t *fakeStockTable) record(warehouseID, productID uint, before, after int) {
	if m := model.NewStockMovement(warehouseID, productID, before, after); m != nil {
		m.ID = uint(len(t.movements) + 1)
		t.movements = append(t.movements, *m)
	}
}

type fakeWarehouseRepo struct {
	warehouses map[uint]*model.Warehouse
	stocks     *fakeStockTable
	products   *fakeProductRepo
}

func (r *fakeWarehouseRepo) withStocks(w model.Warehouse) model.Warehouse {
	w.Stocks = nil
	for _, s := range r.stocks.rows {
		if s.WarehouseID == w.ID {
			cp := *s
			if p, ok := r.products.products[s.ProductID]; ok {
				pc := *p
				cp.Product = &pc
			}
			w.Stocks = append(w.Stocks, cp)
		}
	}
	return w
}

func (r *fakeWarehouseRepo) Create(w *model.Warehouse) error {
	w.ID = uint(len(r.warehouses) + 1)
	cp := *w
	r.warehouses[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) FindAll() ([]model.Warehouse, error) {
	var out []model.Warehouse
	for _, w := range r.warehouses {
		out = append(out, r.withStocks(*w))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeWarehouseRepo) FindByID(id uint) (*model.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := r.withStocks(*w)
	return &cp, nil
}

func (r *fakeWarehouseRepo) FindByName(name string) (*model.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.Name == name {
			cp := *w
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeWarehouseRepo) Update(w *model.Warehouse) error {
	cp := *w
	r.warehouses[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) Delete(id uint) error {
	delete(r.warehouses, id)
	return nil
}

func (r *fakeWarehouseRepo) FindStocks(warehouseID uint) ([]model.Stock, error) {
	var out []model.Stock
	for _, s := range r.stocks.rows {
		if s.WarehouseID == warehouseID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeWarehouseRepo) UpsertStock(warehouseID, productID uint, quantity int, updatedBy string) (*model.Stock, int, error) {
	for _, s := range r.stocks.rows {
		if s.WarehouseID == warehouseID && s.ProductID == productID {
			previous := s.Quantity
			s.Quantity = quantity
			s.UpdatedBy = updatedBy
			r.stocks.record(warehouseID, productID, previous, quantity)
			cp := *s
			return &cp, previous, nil
		}
	}
	s := &model.Stock{WarehouseID: warehouseID, ProductID: productID, Quantity: quantity}
	s.ID = uint(len(r.stocks.rows) + 1)
	s.UpdatedBy = updatedBy
	r.stocks.rows = append(r.stocks.rows, s)
	r.stocks.record(warehouseID, productID, 0, quantity)
	cp := *s
	return &cp, 0, nil
}

// ---- movements ----

type fakeMovementRepo struct {
	stocks *fakeStockTable
}

func (r *fakeMovementRepo) FindByWarehouse(warehouseID uint, limit int) ([]model.StockMovement, error) {
	var out []model.StockMovement
	for i := len(r.stocks.movements) - 1; i >= 0; i-- {
		m := r.stocks.movements[i]
		if m.WarehouseID != warehouseID {
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) GetStockMovement(startDate, endDate time.Time) ([]repository.StockMovementData, error) {
	day := repository.StockMovementData{Date: endDate.UTC().Format("2006-01-02")}
	for _, m := range r.stocks.movements {
		if m.Type == model.MovementIn {
			day.Inbound += m.Quantity
		} else {
			day.Outbound += m.Quantity
		}
	}
	return []repository.StockMovementData{day}, nil
}

// ---- customers ----

type fakeCustomerRepo struct {
	customers map[uint]*model.Customer
}

func newFakeCustomerRepo(customers ...model.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: map[uint]*model.Customer{}}
	for i := range customers {
		c := customers[i]
		r.customers[c.ID] = &c
	}
	return r
}

func (r *fakeCustomerRepo) Create(c *model.Customer) error {
	c.ID = uint(len(r.customers) + 1)
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) FindAll() ([]model.Customer, error) {
	var out []model.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) FindByID(id uint) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
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

func (r *fakeCustomerRepo) Update(c *model.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(id uint) error {
	delete(r.customers, id)
	return nil
}

// ---- orders ----

type fakeOrderRepo struct {
	orders map[uint]*model.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uint]*model.Order{}}
}

func (r *fakeOrderRepo) Create(o *model.Order) error {
	o.ID = uint(len(r.orders) + 1)
	if o.Reference == uuid.Nil {
		o.Reference = uuid.New()
	}
	cp := *o
	cp.Items = append([]model.OrderLineItem{}, o.Items...)
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) FindAll() ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) FindByID(id uint) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	cp.Items = append([]model.OrderLineItem{}, o.Items...)
	return &cp, nil
}

func (r *fakeOrderRepo) ReplaceItems(o *model.Order) error {
	cp := *o
	cp.Items = append([]model.OrderLineItem{}, o.Items...)
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(id uint, status model.OrderStatus, updatedBy string) error {
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	o.UpdatedBy = updatedBy
	return nil
}

func (r *fakeOrderRepo) Delete(id uint) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) CountByStatus() (map[model.OrderStatus]int64, error) {
	counts := map[model.OrderStatus]int64{}
	for _, s := range model.OrderStatuses {
		counts[s] = 0
	}
	for _, o := range r.orders {
		counts[o.Status]++
	}
	return counts, nil
}

// ---- users ----

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*model.User{}}
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *fakeUserRepo) Delete(id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Create(u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(u *model.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) EmailTaken(email string, except uuid.UUID) (bool, error) {
	for id, u := range r.users {
		if id != except && strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) RotateSession(id uuid.UUID, version string, seenAt time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.TokenVersion = version
	u.LastSeenAt = &seenAt
	return nil
}

// ---- fixtures ----

func productFixture(id uint, code, name, price string) model.Product {
	p := model.Product{Code: code, Name: name, Price: model.ParseAmount(price), Category: model.CategoryOther}
	p.ID = id
	return p
}

func customerFixture(id uint) model.Customer {
	c := model.Customer{Name: "Acme", Email: "buyer@acme.com"}
	c.ID = id
	return c
}

func warehouseFixture(id uint, name string) *model.Warehouse {
	w := &model.Warehouse{Name: name}
	w.ID = id
	return w
}

var testActor = ws.Actor{ID: "u-1", Name: "Tester", Email: "tester@example.com"}
