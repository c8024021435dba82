package services

import (
	"boutique-admin/libs"
	"boutique-admin/models"
	"boutique-admin/repositories"
	"boutique-admin/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	ImageNamingProduct = "product"
	ImageNamingUUID    = "uuid"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) (string, error)
}

type ImageStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Delete(ctx context.Context, ref string) error
}

type ProductCache interface {
	GetProducts(ctx context.Context) ([]models.Product, bool)
	SetProducts(ctx context.Context, products []models.Product)
	Invalidate(ctx context.Context)
}

type ProductServiceConfig struct {
	ImageNaming   string
	MaxUploadSize int64
}

type ProductService struct {
	productRepo ProductRepository
	images      ImageStore
	cache       ProductCache
	cfg         ProductServiceConfig

	// cacheGen is bumped on every invalidation; a listing read under an
	// older generation is not written back.
	cacheGen atomic.Uint64
}

// NewProductService wires the catalog; cache may be nil.
func NewProductService(productRepo ProductRepository, images ImageStore, cache ProductCache, cfg ProductServiceConfig) *ProductService {
	if cfg.ImageNaming == "" {
		cfg.ImageNaming = ImageNamingProduct
	}
	return &ProductService{
		productRepo: productRepo,
		images:      images,
		cache:       cache,
		cfg:         cfg,
	}
}

type NewProduct struct {
	Name      string
	Price     string
	Image     io.Reader
	ImageSize int64
}

func (s *ProductService) CreateProduct(ctx context.Context, in NewProduct) (*models.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("nom", "is required")
	}

	price, err := ParsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	if in.Image == nil {
		return nil, invalid("p_image", "is required")
	}
	if s.cfg.MaxUploadSize > 0 && in.ImageSize > s.cfg.MaxUploadSize {
		return nil, invalid("p_image", fmt.Sprintf("exceeds the maximum size of %d bytes", s.cfg.MaxUploadSize))
	}

	fileName, err := s.imageName(name)
	if err != nil {
		return nil, err
	}

	content, _, err := libs.SniffImage(in.Image)
	if err != nil {
		if errors.Is(err, libs.ErrNotAnImage) {
			return nil, invalid("p_image", "must be an image")
		}
		return nil, fmt.Errorf("read image: %w", err)
	}

	ref, err := s.images.Save(ctx, fileName, content)
	if err != nil {
		return nil, fmt.Errorf("save image: %w: %w", ErrStore, err)
	}

	product := &models.Product{Name: name, ImagePath: ref, Price: price}
	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		// Name-derived files may already back another product; only
		// generated names are safe to remove.
		if s.cfg.ImageNaming == ImageNamingUUID {
			if delErr := s.images.Delete(ctx, ref); delErr != nil {
				log.Warn().Err(delErr).Str("image", ref).Msg("failed to remove orphaned image")
			}
		}
		return nil, storeError("create product", err)
	}

	s.invalidateCache(ctx)

	log.Info().Int64("product_id", product.ID).Str("nom", product.Name).Str("image", ref).Msg("product created")
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.GetProducts(ctx); ok {
			return products, nil
		}
	}

	gen := s.cacheGen.Load()
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, storeError("list products", err)
	}

	// Writes from other instances are only bounded by the cache TTL.
	if s.cache != nil && s.cacheGen.Load() == gen {
		s.cache.SetProducts(ctx, products)
	}
	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	if id <= 0 {
		return nil, invalid("id", "must be a positive integer")
	}

	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return nil, storeError(fmt.Sprintf("get product %d", id), err)
	}
	return product, nil
}

// DeleteProduct is idempotent: deleting an unknown id succeeds.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return invalid("id", "must be a positive integer")
	}

	ref, err := s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return storeError(fmt.Sprintf("delete product %d", id), err)
	}

	s.invalidateCache(ctx)
	s.removeImage(ctx, ref)

	log.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) imageName(productName string) (string, error) {
	if s.cfg.ImageNaming == ImageNamingUUID {
		return utils.UniqueImageName(), nil
	}

	name, err := utils.ProductImageName(productName)
	if err != nil {
		return "", invalid("nom", "cannot be used as an image name")
	}
	return name, nil
}

// removeImage deletes the stored file unless another product still points at it.
func (s *ProductService) removeImage(ctx context.Context, ref string) {
	if ref == "" {
		return
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		log.Warn().Err(err).Str("image", ref).Msg("skipping image removal")
		return
	}
	for _, p := range products {
		if p.ImagePath == ref {
			return
		}
	}

	if err := s.images.Delete(ctx, ref); err != nil {
		log.Warn().Err(err).Str("image", ref).Msg("failed to remove product image")
	}
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	s.cacheGen.Add(1)
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

// maxPrice is the first value NUMERIC(10, 2) cannot hold.
var maxPrice = decimal.New(1, 8)

// ParsePrice accepts a decimal string such as "20" or "19.90"; it must be
// positive and fit produit.prix.
func ParsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, invalid("prix", "is required")
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, invalid("prix", "must be a number")
	}
	if !price.IsPositive() {
		return decimal.Zero, invalid("prix", "must be positive")
	}
	if !price.Equal(price.Truncate(2)) {
		return decimal.Zero, invalid("prix", "must have at most 2 decimal places")
	}
	if price.GreaterThanOrEqual(maxPrice) {
		return decimal.Zero, invalid("prix", "must be less than "+maxPrice.String())
	}
	return price, nil
}
