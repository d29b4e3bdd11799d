package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInvoice() *Invoice {
	return &Invoice{
		InvoiceNumber: "INV-20260815-001",
		Items: []Item{
			{ProductID: 10, ProductName: "Cavendish 18kg", Quantity: 4},
			{ProductID: 11, ProductName: "Robusta 13kg", Quantity: 2},
		},
		Total: 5200,
	}
}

func TestRepository_CreateForOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		inv := testInvoice()
		itemsJSON, _ := json.Marshal(inv.Items)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs(uint(7)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("confirmed"))
		mock.ExpectQuery(`INSERT INTO invoices`).
			WithArgs(uint(7), inv.InvoiceNumber, itemsJSON, inv.Total).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
		mock.ExpectExec(`UPDATE orders SET status = 'completed'`).
			WithArgs(uint(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateForOrder(ctx, 7, inv)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), inv.ID)
		assert.Equal(t, uint(7), inv.OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("OrderNotFound", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs(uint(99)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}))
		mock.ExpectRollback()

		err := repo.CreateForOrder(ctx, 99, testInvoice())
		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotConfirmedAfterLock", func(t *testing.T) {
		// The status check runs under the row lock, so an order a
		// concurrent winner already completed is rejected here.
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs(uint(7)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("completed"))
		mock.ExpectRollback()

		err := repo.CreateForOrder(ctx, 7, testInvoice())
		assert.ErrorIs(t, err, ErrOrderNotConfirmed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("PendingOrderRejected", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs(uint(7)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("pending"))
		mock.ExpectRollback()

		err := repo.CreateForOrder(ctx, 7, testInvoice())
		assert.ErrorIs(t, err, ErrOrderNotConfirmed)
	})

	t.Run("DuplicateInvoice", func(t *testing.T) {
		inv := testInvoice()
		itemsJSON, _ := json.Marshal(inv.Items)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs(uint(7)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("confirmed"))
		mock.ExpectQuery(`INSERT INTO invoices`).
			WithArgs(uint(7), inv.InvoiceNumber, itemsJSON, inv.Total).
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		err := repo.CreateForOrder(ctx, 7, inv)
		assert.ErrorIs(t, err, ErrInvoiceExists)
	})

	t.Run("CompleteUpdateFailureRollsBack", func(t *testing.T) {
		inv := testInvoice()
		itemsJSON, _ := json.Marshal(inv.Items)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs(uint(7)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("confirmed"))
		mock.ExpectQuery(`INSERT INTO invoices`).
			WithArgs(uint(7), inv.InvoiceNumber, itemsJSON, inv.Total).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
		mock.ExpectExec(`UPDATE orders SET status = 'completed'`).
			WithArgs(uint(7)).
			WillReturnError(errors.New("db down"))
		mock.ExpectRollback()

		err := repo.CreateForOrder(ctx, 7, inv)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByOrderID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		items := []Item{{ProductID: 10, ProductName: "Cavendish 18kg", Quantity: 4}}
		itemsJSON, _ := json.Marshal(items)

		mock.ExpectQuery(`SELECT id, order_id, invoice_number, items, total, created_at FROM invoices`).
			WithArgs(uint(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "invoice_number", "items", "total", "created_at"}).
				AddRow(1, 7, "INV-20260815-001", itemsJSON, 5200.0, now))

		inv, err := repo.GetByOrderID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "INV-20260815-001", inv.InvoiceNumber)
		assert.Equal(t, items, inv.Items)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, order_id, invoice_number, items, total, created_at FROM invoices`).
			WithArgs(uint(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByOrderID(ctx, 99)
		assert.ErrorIs(t, err, ErrInvoiceNotFound)
	})
}
