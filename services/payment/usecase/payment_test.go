package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/socialclub/internal/pkg/apperror"
	invmocks "github.com/piresc/socialclub/internal/pkg/invalidation/mocks"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/services/payment"
	"github.com/piresc/socialclub/services/payment/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	uc          *PaymentUC
	repo        *mocks.MockPaymentRepo
	gw          *mocks.MockPaymentGW
	invalidator *invmocks.MockInvalidator
}

func setup(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)
	d := &testDeps{
		repo:        mocks.NewMockPaymentRepo(ctrl),
		gw:          mocks.NewMockPaymentGW(ctrl),
		invalidator: invmocks.NewMockInvalidator(ctrl),
	}
	cfg := &models.Config{
		QPay:     models.QPayConfig{CallbackBaseURL: "https://api.example.mn"},
		Commerce: models.CommerceConfig{BaseURL: "https://shop.example.mn", GatewayFeePercent: 1, InvoiceExpiryMinutes: 15, SignupTokenTTLHours: 72},
	}
	d.uc = NewPaymentUC(d.repo, d.gw, d.invalidator, cfg)
	d.uc.now = func() time.Time { return fixedNow }
	return d
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newTx() *models.Transaction {
	return &models.Transaction{
		ID:         "t-1",
		UID:        "u-1",
		ObjectID:   "inv-1",
		Status:     models.TransactionStatusNew,
		Amount:     decimal.NewFromInt(10000),
		CustomerID: "c-1",
		ProductID:  "p-1",
		MerchantID: "m-1",
	}
}

func newProduct(limit *int) *models.Product {
	return &models.Product{ID: "p-1", MerchantID: "m-1", Title: "Course", Price: decimal.NewFromInt(10000), LimitCustomer: limit}
}

func TestConfirmPayment_Success(t *testing.T) {
	d := setup(t)
	tx := newTx()

	gomock.InOrder(
		d.repo.EXPECT().GetTransactionByUID(gomock.Any(), "u-1").Return(tx, nil),
		d.gw.EXPECT().CheckPayment(gomock.Any(), "inv-1").Return(&models.Settlement{Count: 1}, nil),
		d.repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(newProduct(intPtr(10)), nil),
		d.repo.EXPECT().PaidCounterExists(gomock.Any(), "p-1").Return(true, nil),
		d.repo.EXPECT().ReservePaidSlot(gomock.Any(), "p-1", 10).Return(true, nil),
		d.repo.EXPECT().MarkTransactionPaid(gomock.Any(), "t-1", fixedNow).Return(true, nil),
		d.invalidator.EXPECT().OnTransactionPaid(gomock.Any(), tx),
		d.repo.EXPECT().GetCustomerByID(gomock.Any(), "c-1").Return(&models.Customer{ID: "c-1", Email: "buyer@example.com", PasswordHash: "hash"}, nil),
		d.gw.EXPECT().PublishPurchasePaid(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *models.PurchasePaidEvent) error {
				assert.Equal(t, "buyer@example.com", event.CustomerEmail)
				assert.Equal(t, "Course", event.ProductTitle)
				assert.Empty(t, event.AffiliateID)
				assert.Empty(t, event.SignupURL)
				return nil
			}),
	)

	got, err := d.uc.ConfirmPayment(context.Background(), "u-1", models.PaymentModeSimple)

	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPaid, got.Status)
	assert.Equal(t, fixedNow, got.UpdatedAt)
}

func TestConfirmPayment_SeedsCounterFromLedger(t *testing.T) {
	d := setup(t)
	tx := newTx()

	d.repo.EXPECT().GetTransactionByUID(gomock.Any(), "u-1").Return(tx, nil)
	d.gw.EXPECT().CheckPayment(gomock.Any(), "inv-1").Return(&models.Settlement{Count: 1}, nil)
	d.repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(newProduct(nil), nil)
	gomock.InOrder(
		d.repo.EXPECT().PaidCounterExists(gomock.Any(), "p-1").Return(false, nil),
		d.repo.EXPECT().CountPaidTransactions(gomock.Any(), "p-1").Return(int64(7), nil),
		d.repo.EXPECT().SeedPaidCounter(gomock.Any(), "p-1", int64(7)).Return(nil),
		d.repo.EXPECT().ReservePaidSlot(gomock.Any(), "p-1", 0).Return(true, nil),
	)
	d.repo.EXPECT().MarkTransactionPaid(gomock.Any(), "t-1", fixedNow).Return(true, nil)
	d.invalidator.EXPECT().OnTransactionPaid(gomock.Any(), tx)
	d.repo.EXPECT().GetCustomerByID(gomock.Any(), "c-1").Return(nil, errors.New("gone"))

	_, err := d.uc.ConfirmPayment(context.Background(), "u-1", models.PaymentModeSimple)

	require.NoError(t, err)
}

func TestConfirmPayment_AffiliateMode(t *testing.T) {
	d := setup(t)
	tx := newTx()
	tx.AffiliateID = strPtr("a-1")
	tx.AffiliateCustomerID = strPtr("ac-1")

	d.repo.EXPECT().GetTransactionByUID(gomock.Any(), "u-1").Return(tx, nil)
	d.repo.EXPECT().GetAffiliateByID(gomock.Any(), "a-1").Return(&models.Affiliate{ID: "a-1"}, nil)
	d.gw.EXPECT().CheckPayment(gomock.Any(), "inv-1").Return(&models.Settlement{Count: 1}, nil)
	d.repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(newProduct(nil), nil)
	d.repo.EXPECT().PaidCounterExists(gomock.Any(), "p-1").Return(true, nil)
	d.repo.EXPECT().ReservePaidSlot(gomock.Any(), "p-1", 0).Return(true, nil)
	d.repo.EXPECT().MarkTransactionPaid(gomock.Any(), "t-1", fixedNow).Return(true, nil)
	d.invalidator.EXPECT().OnTransactionPaid(gomock.Any(), tx)
	d.repo.EXPECT().GetCustomerByID(gomock.Any(), "c-1").Return(&models.Customer{Email: "buyer@example.com", PasswordHash: "hash"}, nil)
	d.gw.EXPECT().PublishPurchasePaid(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PurchasePaidEvent) error {
			assert.Equal(t, "a-1", event.AffiliateID)
			return errors.New("nats down")
		})

	_, err := d.uc.ConfirmPayment(context.Background(), "u-1", models.PaymentModeAffiliate)

	require.NoError(t, err, "publish failures are not reported")
}

func TestConfirmPayment_GuestBuyerGetsSignupLink(t *testing.T) {
	d := setup(t)
	tx := newTx()

	d.repo.EXPECT().GetTransactionByUID(gomock.Any(), "u-1").Return(tx, nil)
	d.gw.EXPECT().CheckPayment(gomock.Any(), "inv-1").Return(&models.Settlement{Count: 1}, nil)
	d.repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(newProduct(nil), nil)
	d.repo.EXPECT().PaidCounterExists(gomock.Any(), "p-1").Return(true, nil)
	d.repo.EXPECT().ReservePaidSlot(gomock.Any(), "p-1", 0).Return(true, nil)
	d.repo.EXPECT().MarkTransactionPaid(gomock.Any(), "t-1", fixedNow).Return(true, nil)
	d.invalidator.EXPECT().OnTransactionPaid(gomock.Any(), tx)
	d.repo.EXPECT().GetCustomerByID(gomock.Any(), "c-1").Return(&models.Customer{ID: "c-1", Email: "buyer@example.com"}, nil)

	var token string
	d.repo.EXPECT().StoreSignupToken(gomock.Any(), gomock.Any(), "buyer@example.com", 72*time.Hour).
		DoAndReturn(func(_ context.Context, tok, _ string, _ time.Duration) error {
			token = tok
			return nil
		})
	d.gw.EXPECT().PublishPurchasePaid(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PurchasePaidEvent) error {
			assert.Equal(t, "https://shop.example.mn/signup/"+token+"/buyer@example.com", event.SignupURL)
			return nil
		})

	_, err := d.uc.ConfirmPayment(context.Background(), "u-1", models.PaymentModeSimple)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestConfirmPayment_SignupTokenFailureSendsPlainReceipt(t *testing.T) {
	d := setup(t)
	tx := newTx()

	d.repo.EXPECT().GetTransactionByUID(gomock.Any(), "u-1").Return(tx, nil)
	d.gw.EXPECT().CheckPayment(gomock.Any(), "inv-1").Return(&models.Settlement{Count: 1}, nil)
	d.repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(newProduct(nil), nil)
	d.repo.EXPECT().PaidCounterExists(gomock.Any(), "p-1").Return(true, nil)
	d.repo.EXPECT().ReservePaidSlot(gomock.Any(), "p-1", 0).Return(true, nil)
	d.repo.EXPECT().MarkTransactionPaid(gomock.Any(), "t-1", fixedNow).Return(true, nil)
	d.invalidator.EXPECT().OnTransactionPaid(gomock.Any(), tx)
	d.repo.EXPECT().GetCustomerByID(gomock.Any(), "c-1").Return(&models.Customer{ID: "c-1", Email: "buyer@example.com"}, nil)
	d.repo.EXPECT().StoreSignupToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	d.gw.EXPECT().PublishPurchasePaid(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PurchasePaidEvent) error {
			assert.Empty(t, event.SignupURL)
			return nil
		})

	_, err := d.uc.ConfirmPayment(context.Background(), "u-1", models.PaymentModeSimple)

	require.NoError(t, err)
}

// expectFailedUpdate walks every guard and makes the PAID update error out
func expectFailedUpdate(d *testDeps) {
	d.repo.EXPECT().GetTransactionByUID(gomock.Any(), "u-1").Return(newTx(), nil)
	d.gw.EXPECT().CheckPayment(gomock.Any(), "inv-1").Return(&models.Settlement{Count: 1}, nil)
	d.repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(newProduct(intPtr(3)), nil)
	d.repo.EXPECT().PaidCounterExists(gomock.Any(), "p-1").Return(true, nil)
	d.repo.EXPECT().ReservePaidSlot(gomock.Any(), "p-1", 3).Return(true, nil)
	d.repo.EXPECT().MarkTransactionPaid(gomock.Any(), "t-1", fixedNow).Return(false, errors.New("db down"))
}

func TestConfirmPayment_Guards(t *testing.T) {
	tests := []struct {
		name     string
		mode     models.PaymentMode
		setup    func(d *testDeps)
		wantErr  error
		wantKind apperror.Kind
	}{
		{
			name: "unknown transaction",
			mode: models.PaymentModeSimple,
			setup: func(d *testDeps) {
				d.repo.EXPECT().GetTransactionByUID(gomock.Any(), "u-1").Return(nil, payment.ErrTransactionNotFound)
			},
			wantErr:  payment.ErrTransactionNotFound,
			wantKind: apperror.KindNotFound,
		},
		{
			name: "already paid",
			mode: models.PaymentModeSimple,
			setup: func(d *testDeps) {
				tx := newTx()
				tx.Status = models.TransactionStatusPaid
				d.repo.EXPECT().GetTransactionByUID(gomock.Any(), "u-1").Return(tx, nil)
			},
			wantErr:  payment.ErrAlreadyPaid,
			wantKind: apperror.KindConflict,
		},
		{
			name: "affiliate callback for a direct sale",
			mode: models.PaymentModeAffiliate,
			setup: func(d *testDeps) {
				d.repo.EXPECT().GetTransactionByUID(gomock.Any(), "u-1").Return(newTx(), nil)
			},
			wantErr:  payment.ErrAffiliateNotFound,
			wantKind: apperror.KindNotFound,
		},
		{
			name: "affiliate deleted",
			mode: models.PaymentModeAffiliate,
			setup: func(d *testDeps) {
				tx := newTx()
				tx.AffiliateID = strPtr("a-1")
				d.repo.EXPECT().GetTransactionByUID(gomock.Any(), "u-1").Return(tx, nil)
				d.repo.EXPECT().GetAffiliateByID(gomock.Any(), "a-1").Return(nil, payment.ErrAffiliateNotFound)
			},
			wantErr:  payment.ErrAffiliateNotFound,
			wantKind: apperror.KindNotFound,
		},
		{
			name: "gateway failure",
			mode: models.PaymentModeSimple,
			setup: func(d *testDeps) {
				d.repo.EXPECT().GetTransactionByUID(gomock.Any(), "u-1").Return(newTx(), nil)
				d.gw.EXPECT().CheckPayment(gomock.Any(), "inv-1").Return(nil, errors.New("timeout"))
			},
			wantErr:  payment.ErrGateway,
			wantKind: apperror.KindUpstream,
		},
		{
			name: "not settled",
			mode: models.PaymentModeSimple,
			setup: func(d *testDeps) {
				d.repo.EXPECT().GetTransactionByUID(gomock.Any(), "u-1").Return(newTx(), nil)
				d.gw.EXPECT().CheckPayment(gomock.Any(), "inv-1").Return(&models.Settlement{Count: 0}, nil)
			},
			wantErr:  payment.ErrNotYetPaid,
			wantKind: apperror.KindNotYetPaid,
		},
		{
			name: "sold out",
			mode: models.PaymentModeSimple,
			setup: func(d *testDeps) {
				d.repo.EXPECT().GetTransactionByUID(gomock.Any(), "u-1").Return(newTx(), nil)
				d.gw.EXPECT().CheckPayment(gomock.Any(), "inv-1").Return(&models.Settlement{Count: 1}, nil)
				d.repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(newProduct(intPtr(1)), nil)
				d.repo.EXPECT().PaidCounterExists(gomock.Any(), "p-1").Return(true, nil)
				d.repo.EXPECT().ReservePaidSlot(gomock.Any(), "p-1", 1).Return(false, nil)
			},
			wantErr:  payment.ErrSoldOut,
			wantKind: apperror.KindPreconditionFailed,
		},
		{
			name: "lost the race to a concurrent confirmation",
			mode: models.PaymentModeSimple,
			setup: func(d *testDeps) {
				d.repo.EXPECT().GetTransactionByUID(gomock.Any(), "u-1").Return(newTx(), nil)
				d.gw.EXPECT().CheckPayment(gomock.Any(), "inv-1").Return(&models.Settlement{Count: 2}, nil)
				d.repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(newProduct(intPtr(5)), nil)
				d.repo.EXPECT().PaidCounterExists(gomock.Any(), "p-1").Return(true, nil)
				d.repo.EXPECT().ReservePaidSlot(gomock.Any(), "p-1", 5).Return(true, nil)
				d.repo.EXPECT().MarkTransactionPaid(gomock.Any(), "t-1", fixedNow).Return(false, nil)
				d.repo.EXPECT().ReleasePaidSlot(gomock.Any(), "p-1").Return(nil)
			},
			wantErr:  payment.ErrAlreadyPaid,
			wantKind: apperror.KindConflict,
		},
		{
			name: "store failure on an unpaid row releases the slot",
			mode: models.PaymentModeSimple,
			setup: func(d *testDeps) {
				expectFailedUpdate(d)
				d.repo.EXPECT().GetTransactionByID(gomock.Any(), "t-1").Return(newTx(), nil)
				d.repo.EXPECT().ReleasePaidSlot(gomock.Any(), "p-1").Return(errors.New("redis down"))
			},
			wantKind: apperror.KindInternal,
		},
		{
			name: "store failure after the row committed keeps the slot",
			mode: models.PaymentModeSimple,
			setup: func(d *testDeps) {
				expectFailedUpdate(d)
				paid := newTx()
				paid.Status = models.TransactionStatusPaid
				d.repo.EXPECT().GetTransactionByID(gomock.Any(), "t-1").Return(paid, nil)
				d.invalidator.EXPECT().OnTransactionPaid(gomock.Any(), paid)
			},
			wantKind: apperror.KindInternal,
		},
		{
			name: "store failure with unknown row state keeps the slot",
			mode: models.PaymentModeSimple,
			setup: func(d *testDeps) {
				expectFailedUpdate(d)
				d.repo.EXPECT().GetTransactionByID(gomock.Any(), "t-1").Return(nil, errors.New("db down"))
			},
			wantKind: apperror.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setup(t)
			tt.setup(d)

			tx, err := d.uc.ConfirmPayment(context.Background(), "u-1", tt.mode)

			require.Error(t, err)
			assert.Nil(t, tx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}
}

func TestCreateInvoice_WithOption(t *testing.T) {
	d := setup(t)
	product := newProduct(nil)
	product.Options = []models.Option{{ID: "o-1", ProductID: "p-1", Price: decimal.NewFromInt(5000)}}

	d.repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(product, nil)
	d.repo.EXPECT().FindOrCreateCustomer(gomock.Any(), "buyer@example.com").Return(&models.Customer{ID: "c-1"}, nil)
	d.gw.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.InvoiceRequest) (*models.Invoice, error) {
			assert.True(t, decimal.NewFromInt(5000).Equal(req.Amount))
			assert.Equal(t, "https://api.example.mn/call-back/simple/"+req.SenderInvoiceNo, req.CallbackURL)
			assert.Equal(t, "c-1", req.ReceiverCode)
			return &models.Invoice{InvoiceID: "inv-1", QRText: "qr"}, nil
		})
	d.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.uc.CreateInvoice(context.Background(), &models.CreateInvoiceRequest{
		ProductID: "p-1",
		OptionID:  "o-1",
		Email:     " Buyer@Example.com ",
	})

	require.NoError(t, err)
	tx := result.Transaction
	assert.Equal(t, models.TransactionStatusNew, tx.Status)
	assert.Equal(t, "inv-1", tx.ObjectID)
	assert.Equal(t, "50", tx.GatewayFee.String())
	assert.Equal(t, "4950", tx.NetAfterFee.String())
	assert.True(t, tx.AffiliateFee.IsZero())
	assert.Equal(t, "4950", tx.MerchantAfterFee.String())
	require.NotNil(t, tx.OptionID)
	assert.Equal(t, "o-1", *tx.OptionID)
	assert.Nil(t, tx.AffiliateID)
	assert.Equal(t, "inv-1", result.Invoice.InvoiceID)
}

func TestCreateInvoice_Validation(t *testing.T) {
	d := setup(t)

	_, err := d.uc.CreateInvoice(context.Background(), &models.CreateInvoiceRequest{ProductID: "p-1", Email: "nope"})
	assert.ErrorIs(t, err, payment.ErrInvalidEmail)

	_, err = d.uc.CreateInvoice(context.Background(), &models.CreateInvoiceRequest{Email: "buyer@example.com"})
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))

	d.repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(newProduct(nil), nil)
	_, err = d.uc.CreateInvoice(context.Background(), &models.CreateInvoiceRequest{ProductID: "p-1", OptionID: "o-x", Email: "buyer@example.com"})
	assert.ErrorIs(t, err, payment.ErrOptionNotFound)
}

func TestCreateInvoice_GatewayFailure(t *testing.T) {
	d := setup(t)

	d.repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(newProduct(nil), nil)
	d.repo.EXPECT().FindOrCreateCustomer(gomock.Any(), "buyer@example.com").Return(&models.Customer{ID: "c-1"}, nil)
	d.gw.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil, errors.New("502"))

	_, err := d.uc.CreateInvoice(context.Background(), &models.CreateInvoiceRequest{ProductID: "p-1", Email: "buyer@example.com"})

	assert.ErrorIs(t, err, payment.ErrGateway)
	assert.Equal(t, apperror.KindUpstream, apperror.KindOf(err))
}

func TestCreateAffiliateInvoice(t *testing.T) {
	d := setup(t)
	aff := &models.Affiliate{
		ID:                  "a-1",
		UID:                 "au-1",
		Status:              models.AffiliateStatusActive,
		Commission:          decimal.NewFromInt(20),
		AffiliateCustomerID: "ac-1",
		ProductID:           "p-1",
		MerchantID:          "m-1",
	}

	d.repo.EXPECT().GetAffiliateByUID(gomock.Any(), "au-1").Return(aff, nil)
	d.repo.EXPECT().GetProduct(gomock.Any(), "p-1").Return(newProduct(nil), nil)
	d.repo.EXPECT().FindOrCreateCustomer(gomock.Any(), "buyer@example.com").Return(&models.Customer{ID: "c-1"}, nil)
	d.gw.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.InvoiceRequest) (*models.Invoice, error) {
			assert.Contains(t, req.CallbackURL, "/call-back/affiliate/")
			return &models.Invoice{InvoiceID: "inv-2"}, nil
		})
	d.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.uc.CreateAffiliateInvoice(context.Background(), &models.CreateAffiliateInvoiceRequest{
		AffiliateUID: "au-1",
		Email:        "buyer@example.com",
	})

	require.NoError(t, err)
	tx := result.Transaction
	assert.Equal(t, "100", tx.GatewayFee.String())
	assert.Equal(t, "9900", tx.NetAfterFee.String())
	assert.Equal(t, "1980", tx.AffiliateFee.String())
	assert.Equal(t, "7920", tx.MerchantAfterFee.String())
	assert.Equal(t, "a-1", *tx.AffiliateID)
	assert.Equal(t, "ac-1", *tx.AffiliateCustomerID)
}

func TestCreateAffiliateInvoice_Inactive(t *testing.T) {
	d := setup(t)
	d.repo.EXPECT().GetAffiliateByUID(gomock.Any(), "au-1").Return(&models.Affiliate{Status: "DISABLED"}, nil)

	_, err := d.uc.CreateAffiliateInvoice(context.Background(), &models.CreateAffiliateInvoiceRequest{AffiliateUID: "au-1", Email: "buyer@example.com"})

	assert.ErrorIs(t, err, payment.ErrAffiliateInactive)
}

func TestCheckTransaction(t *testing.T) {
	tests := []struct {
		name        string
		status      models.TransactionStatus
		age         time.Duration
		wantExpired bool
	}{
		{"fresh invoice", models.TransactionStatusNew, 5 * time.Minute, false},
		{"lapsed invoice", models.TransactionStatusNew, 16 * time.Minute, true},
		{"paid never expires", models.TransactionStatusPaid, 48 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setup(t)
			tx := newTx()
			tx.Status = tt.status
			tx.CreatedAt = fixedNow.Add(-tt.age)
			d.repo.EXPECT().GetTransactionByID(gomock.Any(), "t-1").Return(tx, nil)

			view, err := d.uc.CheckTransaction(context.Background(), "t-1")

			require.NoError(t, err)
			assert.Equal(t, tt.wantExpired, view.Expired)
			assert.Equal(t, tx.CreatedAt.Add(15*time.Minute), view.ExpiresAt)
		})
	}
}
