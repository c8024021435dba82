package repositories

import (
	"boutique-admin/models"
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

type OrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// CreateOrder inserts the header and its line items in one transaction and
// fills in the generated order id.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.store.InTx(ctx, func(tx *Store) error {
		err := tx.QueryOne(ctx,
			`INSERT INTO commande (id_utilisateur, id_etat, date_commande) VALUES ($1, $2, $3) RETURNING id_commande`,
			[]any{&order.ID}, order.UserID, order.StateID, order.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for i := range order.Items {
			order.Items[i].OrderID = order.ID
			_, err := tx.Exec(ctx,
				`INSERT INTO commande_produit (id_commande, id_produit, quantite) VALUES ($1, $2, $3)`,
				order.ID, order.Items[i].ProductID, order.Items[i].Quantity)
			if err != nil {
				return fmt.Errorf("insert line item for product %d: %w", order.Items[i].ProductID, err)
			}
		}
		return nil
	})
}

func (r *OrderRepository) ListOrderLines(ctx context.Context) ([]models.OrderLine, error) {
	query := `
		SELECT c.id_commande, p.id_produit, p.nom, p.prix, cp.quantite, COALESCE(e.nom, CAST(c.id_etat AS TEXT))
		FROM commande_produit cp
		JOIN commande c ON c.id_commande = cp.id_commande
		JOIN produit p ON p.id_produit = cp.id_produit
		LEFT JOIN etat_commande e ON e.id_etat = c.id_etat
		ORDER BY c.id_commande, p.id_produit`

	lines := []models.OrderLine{}
	err := r.store.QueryAll(ctx, query, func(rows *sql.Rows) error {
		var l models.OrderLine
		if err := rows.Scan(&l.OrderID, &l.ProductID, &l.ProductName, &l.Price, &l.Quantity, &l.State); err != nil {
			return err
		}
		lines = append(lines, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// FindOrderState resolves a state given by numeric id or by name.
func (r *OrderRepository) FindOrderState(ctx context.Context, ref string) (*models.OrderState, error) {
	var s models.OrderState
	dest := []any{&s.ID, &s.Name}

	if id, err := strconv.ParseInt(ref, 10, 32); err == nil {
		if err := r.store.QueryOne(ctx, `SELECT id_etat, nom FROM etat_commande WHERE id_etat = $1`, dest, id); err != nil {
			return nil, err
		}
		return &s, nil
	}

	if err := r.store.QueryOne(ctx, `SELECT id_etat, nom FROM etat_commande WHERE LOWER(nom) = LOWER($1)`, dest, ref); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *OrderRepository) ListOrderStates(ctx context.Context) ([]models.OrderState, error) {
	states := []models.OrderState{}
	err := r.store.QueryAll(ctx, `SELECT id_etat, nom FROM etat_commande ORDER BY id_etat`, func(rows *sql.Rows) error {
		var s models.OrderState
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return err
		}
		states = append(states, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return states, nil
}

// UpdateOrderState points the order at another state row.
func (r *OrderRepository) UpdateOrderState(ctx context.Context, orderID, stateID int64) error {
	if !fitsKey(orderID) || !fitsKey(stateID) {
		return ErrNotFound
	}
	result, err := r.store.Exec(ctx, `UPDATE commande SET id_etat = $1 WHERE id_commande = $2`, stateID, orderID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOrder removes the line items, then the header. Unknown ids are not an error.
func (r *OrderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	if !fitsKey(orderID) {
		return nil
	}
	return r.store.InTx(ctx, func(tx *Store) error {
		if _, err := tx.Exec(ctx, `DELETE FROM commande_produit WHERE id_commande = $1`, orderID); err != nil {
			return fmt.Errorf("delete line items: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM commande WHERE id_commande = $1`, orderID); err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}
