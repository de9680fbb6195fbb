package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/affiliate"
)

func setupAffiliateRepoTest(t *testing.T) (*AffiliateRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewAffiliateRepo(&models.Config{}, sqlxDB), mock
}

func newAffiliates() []models.Affiliate {
	now := time.Now()
	return []models.Affiliate{
		{ID: "a-1", UID: "u-1", Status: "ACTIVE", Type: "AFFILIATE", Commission: decimal.NewFromInt(20), ProductID: "p-1", MerchantID: "m-1", AffiliateCustomerID: "ac-1", CreatedAt: now},
		{ID: "a-2", UID: "u-2", Status: "ACTIVE", Type: "AFFILIATE", Commission: decimal.NewFromInt(15), ProductID: "p-2", MerchantID: "m-1", AffiliateCustomerID: "ac-1", CreatedAt: now},
	}
}

func TestCreateAffiliates(t *testing.T) {
	t.Run("commits the batch", func(t *testing.T) {
		repo, mock := setupAffiliateRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO affiliates").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO affiliates").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.CreateAffiliates(context.Background(), newAffiliates()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation is a conflict", func(t *testing.T) {
		repo, mock := setupAffiliateRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO affiliates").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO affiliates").WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		err := repo.CreateAffiliates(context.Background(), newAffiliates())
		assert.ErrorIs(t, err, affiliate.ErrAffiliateExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other insert errors", func(t *testing.T) {
		repo, mock := setupAffiliateRepoTest(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO affiliates").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.CreateAffiliates(context.Background(), newAffiliates())
		assert.ErrorContains(t, err, "failed to insert affiliate")
		assert.False(t, errors.Is(err, affiliate.ErrAffiliateExists))
	})
}

func TestNotFoundLookups(t *testing.T) {
	repo, mock := setupAffiliateRepoTest(t)
	ctx := context.Background()

	mock.ExpectQuery("FROM merchants WHERE customer_id").WithArgs("c-1").WillReturnError(sql.ErrNoRows)
	_, err := repo.GetMerchantByCustomer(ctx, "c-1")
	assert.ErrorIs(t, err, affiliate.ErrMerchantRequired)

	mock.ExpectQuery("FROM customers WHERE email").WithArgs("x@example.com").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetCustomerByEmail(ctx, "x@example.com")
	assert.ErrorIs(t, err, affiliate.ErrCustomerNotFound)

	mock.ExpectQuery("FROM affiliate_customers WHERE customer_id").WithArgs("c-1").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetAffiliateCustomerByCustomer(ctx, "c-1")
	assert.ErrorIs(t, err, affiliate.ErrAffiliateCustomerNotFound)

	mock.ExpectQuery("FROM affiliates").WithArgs("a-uid").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetAffiliateByUID(ctx, "a-uid")
	assert.ErrorIs(t, err, affiliate.ErrAffiliateNotFound)

	mock.ExpectQuery("FROM products").WithArgs("p-1").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetProduct(ctx, "p-1")
	assert.ErrorIs(t, err, affiliate.ErrProductNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateAffiliateCustomer(t *testing.T) {
	repo, mock := setupAffiliateRepoTest(t)

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (customer_id) DO UPDATE")).
		WithArgs(sqlmock.AnyArg(), "c-2", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "created_at"}).AddRow("ac-1", "c-2", time.Now()))

	affCustomer, err := repo.FindOrCreateAffiliateCustomer(context.Background(), "c-2")
	require.NoError(t, err)
	assert.Equal(t, "ac-1", affCustomer.ID)
}

func TestListLinksAndProducts(t *testing.T) {
	repo, mock := setupAffiliateRepoTest(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT uid, product_id").
		WithArgs("ac-1").
		WillReturnRows(sqlmock.NewRows([]string{"uid", "product_id"}).AddRow("u-1", "p-1").AddRow("u-2", "p-2"))
	links, err := repo.ListLinksByAffiliateCustomer(ctx, "ac-1")
	require.NoError(t, err)
	assert.Equal(t, []models.AffiliateLink{{UID: "u-1", ProductID: "p-1"}, {UID: "u-2", ProductID: "p-2"}}, links)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE merchant_id = $1 AND affiliate_customer_id = $2")).
		WithArgs("m-1", "ac-1").
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}).AddRow("p-1"))
	ids, err := repo.ListAffiliatedProductIDs(ctx, "m-1", "ac-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1"}, ids)
}
