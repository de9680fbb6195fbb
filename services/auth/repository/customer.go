package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/socialclub/internal/pkg/apperror"
	"github.com/piresc/socialclub/internal/pkg/database"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/auth"
)

const customerColumns = `id, uid, email, name, password_hash, created_at, updated_at`

// GetCustomerByEmail retrieves a customer by email
func (r *AuthRepo) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return r.getCustomer(ctx, "email", email)
}

// GetCustomerByID retrieves a customer by primary key
func (r *AuthRepo) GetCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	return r.getCustomer(ctx, "id", id)
}

func (r *AuthRepo) getCustomer(ctx context.Context, field, value string) (*models.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE %s = $1`, customerColumns, field)

	var customer models.Customer
	if err := r.db.GetContext(ctx, &customer, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

// CreateCustomer inserts a registered customer
func (r *AuthRepo) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (id, uid, email, name, password_hash, created_at, updated_at)
		VALUES (:id, :uid, :email, :name, :password_hash, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, customer); err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.WithCause(auth.ErrEmailTaken, err)
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// SetPasswordHash stores the password of a customer that has none yet
func (r *AuthRepo) SetPasswordHash(ctx context.Context, customerID, hash string) error {
	query := `
		UPDATE customers
		SET password_hash = $1, updated_at = $2
		WHERE id = $3 AND password_hash = ''
	`
	result, err := r.db.ExecContext(ctx, query, hash, models.Now(), customerID)
	if err != nil {
		return fmt.Errorf("failed to set password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return auth.ErrEmailTaken
	}
	return nil
}

// UpdatePasswordHash replaces the password of a customer
func (r *AuthRepo) UpdatePasswordHash(ctx context.Context, customerID, hash string) error {
	query := `UPDATE customers SET password_hash = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, hash, models.Now(), customerID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return auth.ErrCustomerNotFound
	}
	return nil
}
