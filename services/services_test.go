package services

import (
	"boutique-admin/models"
	"boutique-admin/repositories"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// 1x1 transparent PNG.
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

var errBoom = errors.New("boom")

func pngReader() io.Reader { return bytes.NewReader(pngPixel) }

type memoryImages struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemoryImages() *memoryImages {
	return &memoryImages{files: map[string][]byte{}}
}

func (m *memoryImages) Save(_ context.Context, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = data
	return name, nil
}

func (m *memoryImages) Delete(_ context.Context, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, ref)
	return nil
}

func (m *memoryImages) has(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[name]
	return ok
}

type countingCache struct {
	products    []models.Product
	cached      bool
	invalidated int
}

func (c *countingCache) GetProducts(context.Context) ([]models.Product, bool) {
	return c.products, c.cached
}

func (c *countingCache) SetProducts(_ context.Context, products []models.Product) {
	c.products = products
	c.cached = true
}

func (c *countingCache) Invalidate(context.Context) {
	c.products = nil
	c.cached = false
	c.invalidated++
}

type failingProducts struct {
	*repositories.MemoryStore
}

func (failingProducts) CreateProduct(context.Context, *models.Product) error { return errBoom }
func (failingProducts) ListProducts(context.Context) ([]models.Product, error) {
	return nil, errBoom
}
func (failingProducts) DeleteProduct(context.Context, int64) (string, error) { return "", errBoom }
func (failingProducts) GetProduct(context.Context, int64) (*models.Product, error) {
	return nil, errBoom
}

type failingOrders struct {
	*repositories.MemoryStore
}

func (failingOrders) CreateOrder(context.Context, *models.Order) error { return errBoom }
func (failingOrders) DeleteOrder(context.Context, int64) error         { return errBoom }
func (failingOrders) ListOrderLines(context.Context) ([]models.OrderLine, error) {
	return nil, errBoom
}

type recordingNotifier struct {
	sent chan models.Order
}

func (n *recordingNotifier) SendOrderConfirmation(order models.Order, _ []models.CartItem) error {
	n.sent <- order
	return nil
}

// referencingOrders fails every insert the way a bad id_etat foreign key does.
type referencingOrders struct {
	*repositories.MemoryStore
}

func (referencingOrders) CreateOrder(context.Context, *models.Order) error {
	return fmt.Errorf("insert order: %w: commande_id_etat_fkey", repositories.ErrReferenced)
}
