package repositories

import (
	"boutique-admin/models"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Products(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	chaise := &models.Product{Name: "Chaise", ImagePath: "Chaise.jpg", Price: decimal.NewFromInt(20)}
	table := &models.Product{Name: "Table", ImagePath: "Table.jpg", Price: decimal.NewFromInt(150)}
	require.NoError(t, m.CreateProduct(ctx, chaise))
	require.NoError(t, m.CreateProduct(ctx, table))
	assert.Equal(t, int64(1), chaise.ID)
	assert.Equal(t, int64(2), table.ID)

	products, err := m.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Chaise", products[0].Name)

	path, err := m.DeleteProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Chaise.jpg", path)

	_, err = m.DeleteProduct(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.GetProduct(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Orders(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	p := &models.Product{Name: "Chaise", ImagePath: "Chaise.jpg", Price: decimal.NewFromInt(20)}
	require.NoError(t, m.CreateProduct(ctx, p))

	order := &models.Order{UserID: 1, StateID: 1, CreatedAt: time.Now(), Items: []models.OrderLineItem{{ProductID: p.ID, Quantity: 3}}}
	require.NoError(t, m.CreateOrder(ctx, order))
	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, order.ID, order.Items[0].OrderID)

	lines, err := m.ListOrderLines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "en attente", lines[0].State)
	assert.Equal(t, 3, lines[0].Quantity)

	state, err := m.FindOrderState(ctx, "EXPÉDIÉE")
	require.NoError(t, err)
	require.NoError(t, m.UpdateOrderState(ctx, order.ID, state.ID))

	lines, err = m.ListOrderLines(ctx)
	require.NoError(t, err)
	assert.Equal(t, "expédiée", lines[0].State)

	assert.ErrorIs(t, m.UpdateOrderState(ctx, 99, 2), ErrNotFound)

	_, err = m.FindOrderState(ctx, "9")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.DeleteOrder(ctx, order.ID))
	require.NoError(t, m.DeleteOrder(ctx, order.ID))

	lines, err = m.ListOrderLines(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestProductCache_NilClientIsNoop(t *testing.T) {
	ctx := context.Background()
	cache := NewProductCache(nil, time.Minute)

	cache.SetProducts(ctx, []models.Product{{ID: 1}})
	cache.Invalidate(ctx)

	products, ok := cache.GetProducts(ctx)
	assert.False(t, ok)
	assert.Nil(t, products)

	var none *ProductCache
	_, ok = none.GetProducts(ctx)
	assert.False(t, ok)
}

func TestMemoryStore_EnforcesProductReferences(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	p := &models.Product{Name: "Chaise", ImagePath: "Chaise.jpg", Price: decimal.NewFromInt(20)}
	require.NoError(t, m.CreateProduct(ctx, p))

	err := m.CreateOrder(ctx, &models.Order{UserID: 1, StateID: 1, Items: []models.OrderLineItem{
		{ProductID: p.ID, Quantity: 1},
		{ProductID: 77, Quantity: 1},
	}})
	assert.ErrorIs(t, err, ErrReferenced)
	_, ok := m.Order(1)
	assert.False(t, ok, "a rejected order stores nothing")

	order := &models.Order{UserID: 1, StateID: 1, Items: []models.OrderLineItem{{ProductID: p.ID, Quantity: 2}}}
	require.NoError(t, m.CreateOrder(ctx, order))
	assert.Equal(t, int64(1), order.ID)

	_, err = m.DeleteProduct(ctx, p.ID)
	assert.ErrorIs(t, err, ErrReferenced)
	_, err = m.GetProduct(ctx, p.ID)
	require.NoError(t, err)

	require.NoError(t, m.DeleteOrder(ctx, order.ID))
	path, err := m.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chaise.jpg", path)
}
