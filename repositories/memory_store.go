package repositories

import (
	"boutique-admin/models"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// DefaultOrderStates mirrors the rows seeded by the etat_commande migration.
var DefaultOrderStates = []models.OrderState{
	{ID: 1, Name: "en attente"},
	{ID: 2, Name: "expédiée"},
	{ID: 3, Name: "livrée"},
	{ID: 4, Name: "annulée"},
}

// MemoryStore keeps products and orders in process memory. It serves local
// runs with STORE_DRIVER=memory and the service tests.
type MemoryStore struct {
	mu            sync.RWMutex
	products      map[int64]models.Product
	orders        map[int64]models.Order
	states        []models.OrderState
	nextProductID int64
	nextOrderID   int64
}

func NewMemoryStore() *MemoryStore {
	states := make([]models.OrderState, len(DefaultOrderStates))
	copy(states, DefaultOrderStates)

	return &MemoryStore{
		products: make(map[int64]models.Product),
		orders:   make(map[int64]models.Order),
		states:   states,
	}
}

func (m *MemoryStore) CreateProduct(_ context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextProductID++
	product.ID = m.nextProductID
	m.products[product.ID] = *product
	return nil
}

func (m *MemoryStore) ListProducts(_ context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (m *MemoryStore) GetProduct(_ context.Context, id int64) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *MemoryStore) DeleteProduct(_ context.Context, id int64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return "", ErrNotFound
	}
	for _, o := range m.orders {
		for _, item := range o.Items {
			if item.ProductID == id {
				return "", fmt.Errorf("%w: product %d is in order %d", ErrReferenced, id, o.ID)
			}
		}
	}
	delete(m.products, id)
	return p.ImagePath, nil
}

func (m *MemoryStore) CreateOrder(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range order.Items {
		if _, ok := m.products[item.ProductID]; !ok {
			return fmt.Errorf("insert line item for product %d: %w", item.ProductID, ErrReferenced)
		}
	}

	m.nextOrderID++
	order.ID = m.nextOrderID

	items := make([]models.OrderLineItem, len(order.Items))
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		items[i] = order.Items[i]
	}

	stored := *order
	stored.Items = items
	m.orders[order.ID] = stored
	return nil
}

func (m *MemoryStore) ListOrderLines(_ context.Context) ([]models.OrderLine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lines := []models.OrderLine{}
	for _, o := range m.orders {
		state := strconv.FormatInt(o.StateID, 10)
		if s, ok := m.stateByID(o.StateID); ok {
			state = s.Name
		}

		for _, item := range o.Items {
			p, ok := m.products[item.ProductID]
			if !ok {
				continue
			}
			lines = append(lines, models.OrderLine{
				OrderID:     o.ID,
				ProductID:   p.ID,
				ProductName: p.Name,
				Price:       p.Price,
				Quantity:    item.Quantity,
				State:       state,
			})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].OrderID != lines[j].OrderID {
			return lines[i].OrderID < lines[j].OrderID
		}
		return lines[i].ProductID < lines[j].ProductID
	})
	return lines, nil
}

func (m *MemoryStore) FindOrderState(_ context.Context, ref string) (*models.OrderState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if id, err := strconv.ParseInt(ref, 10, 32); err == nil {
		if s, ok := m.stateByID(id); ok {
			return &s, nil
		}
		return nil, ErrNotFound
	}

	for _, s := range m.states {
		if strings.EqualFold(s.Name, ref) {
			state := s
			return &state, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) ListOrderStates(_ context.Context) ([]models.OrderState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	states := make([]models.OrderState, len(m.states))
	copy(states, m.states)
	return states, nil
}

func (m *MemoryStore) UpdateOrderState(_ context.Context, orderID, stateID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return ErrNotFound
	}
	o.StateID = stateID
	m.orders[orderID] = o
	return nil
}

func (m *MemoryStore) DeleteOrder(_ context.Context, orderID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.orders, orderID)
	return nil
}

// Order returns a copy of a stored order, line items included.
func (m *MemoryStore) Order(orderID int64) (models.Order, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.orders[orderID]
	if !ok {
		return models.Order{}, false
	}
	items := make([]models.OrderLineItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o, true
}

func (m *MemoryStore) stateByID(id int64) (models.OrderState, bool) {
	for _, s := range m.states {
		if s.ID == id {
			return s, true
		}
	}
	return models.OrderState{}, false
}
