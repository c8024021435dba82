package repositories

import (
	"boutique-admin/models"
	"context"
	"database/sql"
)

type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	query := `INSERT INTO produit (nom, chemin_image, prix) VALUES ($1, $2, $3) RETURNING id_produit`
	return r.store.QueryOne(ctx, query, []any{&product.ID}, product.Name, product.ImagePath, product.Price)
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id_produit, nom, chemin_image, prix FROM produit ORDER BY id_produit`

	products := []models.Product{}
	err := r.store.QueryAll(ctx, query, func(rows *sql.Rows) error {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.ImagePath, &p.Price); err != nil {
			return err
		}
		products = append(products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	if !fitsKey(id) {
		return nil, ErrNotFound
	}
	query := `SELECT id_produit, nom, chemin_image, prix FROM produit WHERE id_produit = $1`

	var p models.Product
	if err := r.store.QueryOne(ctx, query, []any{&p.ID, &p.Name, &p.ImagePath, &p.Price}, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProduct returns the image reference of the deleted row, or ErrNotFound.
func (r *ProductRepository) DeleteProduct(ctx context.Context, id int64) (string, error) {
	if !fitsKey(id) {
		return "", ErrNotFound
	}
	query := `DELETE FROM produit WHERE id_produit = $1 RETURNING chemin_image`

	var imagePath string
	if err := r.store.QueryOne(ctx, query, []any{&imagePath}, id); err != nil {
		return "", err
	}
	return imagePath, nil
}
