package services

import (
	"boutique-admin/models"
	"boutique-admin/repositories"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	ListOrderLines(ctx context.Context) ([]models.OrderLine, error)
	FindOrderState(ctx context.Context, ref string) (*models.OrderState, error)
	ListOrderStates(ctx context.Context) ([]models.OrderState, error)
	UpdateOrderState(ctx context.Context, orderID, stateID int64) error
	DeleteOrder(ctx context.Context, orderID int64) error
}

type OrderNotifier interface {
	SendOrderConfirmation(order models.Order, items []models.CartItem) error
}

type OrderServiceConfig struct {
	UserID         int64
	InitialStateID int64
}

type OrderService struct {
	orderRepo OrderRepository
	cart      *CartService
	notifier  OrderNotifier
	cfg       OrderServiceConfig
	now       func() time.Time
}

// NewOrderService wires order handling; notifier may be nil.
func NewOrderService(orderRepo OrderRepository, cart *CartService, notifier OrderNotifier, cfg OrderServiceConfig) *OrderService {
	if cfg.UserID == 0 {
		cfg.UserID = 1
	}
	if cfg.InitialStateID == 0 {
		cfg.InitialStateID = 1
	}
	return &OrderService{
		orderRepo: orderRepo,
		cart:      cart,
		notifier:  notifier,
		cfg:       cfg,
		now:       time.Now,
	}
}

// ConvertCartToOrder persists the cart as one order plus one line item per
// cart item. The cart is left empty on success and restored on failure.
func (s *OrderService) ConvertCartToOrder(ctx context.Context) (*models.Order, error) {
	items := s.cart.Take()
	if len(items) == 0 {
		return nil, invalid("cart", "is empty")
	}

	order := &models.Order{
		UserID:    s.cfg.UserID,
		StateID:   s.cfg.InitialStateID,
		CreatedAt: s.now().UTC(),
		Items:     make([]models.OrderLineItem, 0, len(items)),
	}
	for _, item := range items {
		order.Items = append(order.Items, models.OrderLineItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		s.cart.Restore(items)
		if errors.Is(err, repositories.ErrReferenced) {
			return nil, s.dropDeletedProducts(ctx, err)
		}
		return nil, storeError("create order", err)
	}

	log.Info().Int64("order_id", order.ID).Int("items", len(order.Items)).Msg("cart converted to order")

	if s.notifier != nil {
		go func(o models.Order) {
			if err := s.notifier.SendOrderConfirmation(o, items); err != nil {
				log.Error().Err(err).Int64("order_id", o.ID).Msg("failed to send order confirmation")
			}
		}(*order)
	}

	return order, nil
}

// dropDeletedProducts clears cart items whose product was deleted after being
// added, so the next conversion can succeed.
func (s *OrderService) dropDeletedProducts(ctx context.Context, createErr error) error {
	dropped, err := s.cart.DropMissing(ctx)
	if err != nil {
		return err
	}
	if dropped == 0 {
		return fmt.Errorf("create order: %w: %w", ErrStore, createErr)
	}

	log.Warn().Int("dropped", dropped).Msg("removed deleted products from cart")
	return fmt.Errorf("create order: product no longer exists: %w", ErrNotFound)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.OrderLine, error) {
	lines, err := s.orderRepo.ListOrderLines(ctx)
	if err != nil {
		return nil, storeError("list orders", err)
	}
	return lines, nil
}

func (s *OrderService) ListOrderStates(ctx context.Context) ([]models.OrderState, error) {
	states, err := s.orderRepo.ListOrderStates(ctx)
	if err != nil {
		return nil, storeError("list order states", err)
	}
	return states, nil
}

// UpdateOrderState moves an order to the state named (or numbered) by newState.
func (s *OrderService) UpdateOrderState(ctx context.Context, orderID int64, newState string) (*models.OrderState, error) {
	if orderID <= 0 {
		return nil, invalid("id", "must be a positive integer")
	}
	newState = strings.TrimSpace(newState)
	if newState == "" {
		return nil, invalid("newState", "is required")
	}

	state, err := s.orderRepo.FindOrderState(ctx, newState)
	if err != nil {
		return nil, storeError(fmt.Sprintf("find order state %q", newState), err)
	}

	if err := s.orderRepo.UpdateOrderState(ctx, orderID, state.ID); err != nil {
		return nil, storeError(fmt.Sprintf("update order %d", orderID), err)
	}

	log.Info().Int64("order_id", orderID).Str("etat", state.Name).Msg("order state updated")
	return state, nil
}

// DeleteOrder removes the order and its line items; unknown ids succeed.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return invalid("id", "must be a positive integer")
	}

	if err := s.orderRepo.DeleteOrder(ctx, orderID); err != nil {
		return storeError(fmt.Sprintf("delete order %d", orderID), err)
	}

	log.Info().Int64("order_id", orderID).Msg("order deleted")
	return nil
}
