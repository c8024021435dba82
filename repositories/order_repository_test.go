package repositories

import (
	"boutique-admin/models"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	insertOrderQuery = regexp.QuoteMeta(`INSERT INTO commande (id_utilisateur, id_etat, date_commande) VALUES ($1, $2, $3) RETURNING id_commande`)
	insertLineQuery  = regexp.QuoteMeta(`INSERT INTO commande_produit (id_commande, id_produit, quantite) VALUES ($1, $2, $3)`)
)

func TestOrderRepository_CreateOrder(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)

	mock.ExpectBegin()
	mock.ExpectQuery(insertOrderQuery).
		WithArgs(int64(1), int64(1), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id_commande"}).AddRow(int64(7)))
	mock.ExpectExec(insertLineQuery).WithArgs(int64(7), int64(1), 3).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertLineQuery).WithArgs(int64(7), int64(2), 1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order := &models.Order{
		UserID:    1,
		StateID:   1,
		CreatedAt: time.Now(),
		Items: []models.OrderLineItem{
			{ProductID: 1, Quantity: 3},
			{ProductID: 2, Quantity: 1},
		},
	}
	require.NoError(t, repo.CreateOrder(context.Background(), order))

	assert.Equal(t, int64(7), order.ID)
	for _, item := range order.Items {
		assert.Equal(t, int64(7), item.OrderID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateOrderRollsBackOnLineFailure(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)

	mock.ExpectBegin()
	mock.ExpectQuery(insertOrderQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id_commande"}).AddRow(int64(8)))
	mock.ExpectExec(insertLineQuery).WithArgs(int64(8), int64(1), 2).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertLineQuery).WithArgs(int64(8), int64(404), 1).
		WillReturnError(errors.New("violates foreign key constraint"))
	mock.ExpectRollback()

	order := &models.Order{
		UserID:    1,
		StateID:   1,
		CreatedAt: time.Now(),
		Items: []models.OrderLineItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 404, Quantity: 1},
		},
	}
	err := repo.CreateOrder(context.Background(), order)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "product 404")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_ListOrderLines(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)

	mock.ExpectQuery(`LEFT JOIN etat_commande e ON e.id_etat = c.id_etat`).
		WillReturnRows(sqlmock.NewRows([]string{"id_commande", "id_produit", "nom", "prix", "quantite", "etat"}).
			AddRow(int64(7), int64(1), "Chaise", "20.00", int64(3), "en attente").
			AddRow(int64(8), int64(2), "Table", "150", int64(1), "expédiée"))

	lines, err := repo.ListOrderLines(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, models.OrderLine{
		OrderID: 7, ProductID: 1, ProductName: "Chaise", Price: lines[0].Price, Quantity: 3, State: "en attente",
	}, lines[0])
	assert.True(t, lines[0].Price.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "expédiée", lines[1].State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindOrderState(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id_etat, nom FROM etat_commande WHERE id_etat = $1`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id_etat", "nom"}).AddRow(int64(2), "expédiée"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id_etat, nom FROM etat_commande WHERE LOWER(nom) = LOWER($1)`)).
		WithArgs("Livrée").
		WillReturnRows(sqlmock.NewRows([]string{"id_etat", "nom"}).AddRow(int64(3), "livrée"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id_etat, nom FROM etat_commande WHERE LOWER(nom) = LOWER($1)`)).
		WithArgs("perdue").
		WillReturnRows(sqlmock.NewRows([]string{"id_etat", "nom"}))

	s, err := repo.FindOrderState(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, models.OrderState{ID: 2, Name: "expédiée"}, *s)

	s, err = repo.FindOrderState(context.Background(), "Livrée")
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.ID)

	_, err = repo.FindOrderState(context.Background(), "perdue")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_ListOrderStates(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id_etat, nom FROM etat_commande ORDER BY id_etat`)).
		WillReturnRows(sqlmock.NewRows([]string{"id_etat", "nom"}).AddRow(int64(1), "en attente").AddRow(int64(2), "expédiée"))

	states, err := repo.ListOrderStates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.OrderState{{ID: 1, Name: "en attente"}, {ID: 2, Name: "expédiée"}}, states)
}

func TestOrderRepository_UpdateOrderState(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)

	query := regexp.QuoteMeta(`UPDATE commande SET id_etat = $1 WHERE id_commande = $2`)
	mock.ExpectExec(query).WithArgs(int64(2), int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).WithArgs(int64(2), int64(99)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateOrderState(context.Background(), 7, 2))
	assert.ErrorIs(t, repo.UpdateOrderState(context.Background(), 99, 2), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_DeleteOrder(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM commande_produit WHERE id_commande = $1`)).
		WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM commande WHERE id_commande = $1`)).
		WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteOrder(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_DeleteOrderRollsBack(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM commande_produit WHERE id_commande = $1`)).
		WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM commande WHERE id_commande = $1`)).
		WithArgs(int64(7)).WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	err := repo.DeleteOrder(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock detected")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_InTxNestedReusesTransaction(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SELECT 1`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := store.InTx(context.Background(), func(tx *Store) error {
		return tx.InTx(context.Background(), func(inner *Store) error {
			_, err := inner.Exec(context.Background(), `SELECT 1`)
			return err
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_CreateOrderMissingProduct(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)

	mock.ExpectBegin()
	mock.ExpectQuery(insertOrderQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id_commande"}).AddRow(int64(9)))
	mock.ExpectExec(insertLineQuery).WithArgs(int64(9), int64(5), 1).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "commande_produit_id_produit_fkey"})
	mock.ExpectRollback()

	order := &models.Order{UserID: 1, StateID: 1, CreatedAt: time.Now(), Items: []models.OrderLineItem{{ProductID: 5, Quantity: 1}}}
	err := repo.CreateOrder(context.Background(), order)

	assert.ErrorIs(t, err, ErrReferenced)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_IDsBeyondKeyRange(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id_etat, nom FROM etat_commande WHERE LOWER(nom) = LOWER($1)`)).
		WithArgs("9999999999").
		WillReturnRows(sqlmock.NewRows([]string{"id_etat", "nom"}))

	assert.ErrorIs(t, repo.UpdateOrderState(context.Background(), 9999999999, 2), ErrNotFound)
	assert.NoError(t, repo.DeleteOrder(context.Background(), 9999999999))

	_, err := repo.FindOrderState(context.Background(), "9999999999")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
