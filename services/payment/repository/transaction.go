package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/payment"
)

const transactionColumns = `id, uid, object_id, status, amount, gateway_fee, net_after_fee,
	affiliate_fee, merchant_after_fee, customer_id, product_id, merchant_id,
	option_id, affiliate_id, affiliate_customer_id, created_at, updated_at`

// CreateTransaction inserts a NEW transaction with its fee split
func (r *PaymentRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES (:id, :uid, :object_id, :status, :amount, :gateway_fee, :net_after_fee,
			:affiliate_fee, :merchant_after_fee, :customer_id, :product_id, :merchant_id,
			:option_id, :affiliate_id, :affiliate_customer_id, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, tx); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransactionByUID retrieves a transaction by the id used in callback URLs
func (r *PaymentRepo) GetTransactionByUID(ctx context.Context, uid string) (*models.Transaction, error) {
	return r.getTransaction(ctx, "uid", uid)
}

// GetTransactionByID retrieves a transaction by primary key
func (r *PaymentRepo) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	return r.getTransaction(ctx, "id", id)
}

func (r *PaymentRepo) getTransaction(ctx context.Context, field, value string) (*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE %s = $1`, transactionColumns, field)

	var tx models.Transaction
	if err := r.db.GetContext(ctx, &tx, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

// MarkTransactionPaid moves a transaction from NEW to PAID. It reports false
// when the row was not NEW anymore, leaving it untouched.
func (r *PaymentRepo) MarkTransactionPaid(ctx context.Context, id string, paidAt time.Time) (bool, error) {
	query := `UPDATE transactions SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`

	res, err := r.db.ExecContext(ctx, query,
		models.TransactionStatusPaid, paidAt, id, models.TransactionStatusNew)
	if err != nil {
		return false, fmt.Errorf("failed to mark transaction paid: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

// CountPaidTransactions counts the settled purchases of a product
func (r *PaymentRepo) CountPaidTransactions(ctx context.Context, productID string) (int64, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE product_id = $1 AND status = $2`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, productID, models.TransactionStatusPaid); err != nil {
		return 0, fmt.Errorf("failed to count paid transactions: %w", err)
	}
	return count, nil
}
