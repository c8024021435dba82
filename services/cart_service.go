package services

import (
	"boutique-admin/models"
	"boutique-admin/repositories"
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

type ProductFinder interface {
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}

// CartService holds the single, process-wide cart. Every access goes through mu.
type CartService struct {
	mu       sync.Mutex
	items    []models.CartItem
	products ProductFinder
}

func NewCartService(products ProductFinder) *CartService {
	return &CartService{products: products}
}

// AddToCart snapshots the product's name and price. Ids and quantities come
// from request bodies as numbers or numeric strings.
func (s *CartService) AddToCart(ctx context.Context, rawProductID, rawQuantity string) (models.CartItem, error) {
	productID, err := ParseID("productId", rawProductID)
	if err != nil {
		return models.CartItem{}, err
	}
	quantity, err := ParseQuantity(rawQuantity)
	if err != nil {
		return models.CartItem{}, err
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return models.CartItem{}, storeError(fmt.Sprintf("find product %d", productID), err)
	}

	item := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()

	log.Debug().Int64("product_id", productID).Int("quantity", quantity).Msg("item added to cart")
	return item, nil
}

// RemoveFromCart drops every item for productID and reports how many went.
func (s *CartService) RemoveFromCart(rawProductID string) (int, error) {
	productID, err := ParseID("productId", rawProductID)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	removed := len(s.items) - len(kept)
	clear(s.items[len(kept):])
	s.items = kept
	return removed, nil
}

func (s *CartService) ListCart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// DropMissing removes items whose product no longer exists and reports how
// many went.
func (s *CartService) DropMissing(ctx context.Context) (int, error) {
	s.mu.Lock()
	ids := make(map[int64]bool, len(s.items))
	for _, item := range s.items {
		ids[item.ProductID] = true
	}
	s.mu.Unlock()

	missing := make(map[int64]bool)
	for id := range ids {
		if _, err := s.products.GetProduct(ctx, id); err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return 0, storeError(fmt.Sprintf("find product %d", id), err)
			}
			missing[id] = true
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if !missing[item.ProductID] {
			kept = append(kept, item)
		}
	}
	dropped := len(s.items) - len(kept)
	clear(s.items[len(kept):])
	s.items = kept
	return dropped, nil
}

// Take empties the cart and hands back what it held.
func (s *CartService) Take() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items
	s.items = nil
	return items
}

// Restore puts items back in front of whatever was added since Take.
func (s *CartService) Restore(items []models.CartItem) {
	if len(items) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	restored := make([]models.CartItem, 0, len(items)+len(s.items))
	restored = append(restored, items...)
	s.items = append(restored, s.items...)
}

func ParseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid(field, "must be a positive integer")
	}
	return id, nil
}

// ParseQuantity accepts a positive integer that fits commande_produit.quantite.
func ParseQuantity(raw string) (int, error) {
	q, err := parsePositiveInt32("quantity", raw)
	return int(q), err
}

func parsePositiveInt32(field, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseInt(raw, 10, 32)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return 0, invalid(field, fmt.Sprintf("must not exceed %d", math.MaxInt32))
	}
	if err != nil || n <= 0 {
		return 0, invalid(field, "must be a positive integer")
	}
	return n, nil
}
