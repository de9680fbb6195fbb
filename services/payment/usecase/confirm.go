package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/socialclub/internal/pkg/apperror"
	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/models"
	nrpkg "github.com/piresc/socialclub/internal/pkg/newrelic"
	"github.com/piresc/socialclub/services/payment"
)

// ConfirmPayment settles a transaction after the gateway reported a payment.
// Guards run in order and the first failure short-circuits: the transaction
// exists, is not yet PAID, the gateway confirms settlement, and the product is
// not sold out.
func (u *PaymentUC) ConfirmPayment(ctx context.Context, uid string, mode models.PaymentMode) (*models.Transaction, error) {
	tx, err := u.repo.GetTransactionByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !tx.Status.CanTransitionTo(models.TransactionStatusPaid) {
		return nil, payment.ErrAlreadyPaid
	}

	if mode == models.PaymentModeAffiliate {
		if !tx.IsAffiliate() {
			return nil, payment.ErrAffiliateNotFound
		}
		if _, err := u.repo.GetAffiliateByID(ctx, *tx.AffiliateID); err != nil {
			return nil, err
		}
	}

	settlement, err := u.gw.CheckPayment(ctx, tx.ObjectID)
	if err != nil {
		return nil, apperror.WithCause(payment.ErrGateway, err)
	}
	if !settlement.Settled() {
		return nil, payment.ErrNotYetPaid
	}

	product, err := u.repo.GetProduct(ctx, tx.ProductID)
	if err != nil {
		return nil, err
	}

	err = nrpkg.WithSegment(ctx, "payment.reserve_slot", func() error {
		return u.reserveSlot(ctx, tx, product)
	})
	if err != nil {
		return nil, err
	}

	paidAt := u.now()
	updated, err := u.repo.MarkTransactionPaid(ctx, tx.ID, paidAt)
	if err != nil {
		u.recoverFailedUpdate(ctx, tx, product.ID)
		return nil, err
	}
	if !updated {
		// a concurrent confirmation won the NEW -> PAID transition
		u.releaseSlot(ctx, product.ID)
		return nil, payment.ErrAlreadyPaid
	}
	tx.Status = models.TransactionStatusPaid
	tx.UpdatedAt = paidAt

	// after the commit, so a concurrent read cannot re-cache the pre-payment totals
	u.invalidator.OnTransactionPaid(ctx, tx)

	logger.InfoCtx(ctx, "Transaction paid",
		logger.String("transaction_id", tx.ID),
		logger.String("product_id", tx.ProductID),
		logger.String("mode", string(mode)),
		logger.Int("payments", settlement.Count))

	u.publishPaid(ctx, tx, product)

	return tx, nil
}

// reserveSlot takes one paid-customer slot of the product, seeding the counter
// from the ledger the first time it is used
func (u *PaymentUC) reserveSlot(ctx context.Context, tx *models.Transaction, product *models.Product) error {
	exists, err := u.repo.PaidCounterExists(ctx, product.ID)
	if err != nil {
		return fmt.Errorf("failed to check paid counter: %w", err)
	}
	if !exists {
		// reserved slots not yet committed as PAID are missing from this count
		count, err := u.repo.CountPaidTransactions(ctx, product.ID)
		if err != nil {
			return err
		}
		if err := u.repo.SeedPaidCounter(ctx, product.ID, count); err != nil {
			return fmt.Errorf("failed to seed paid counter: %w", err)
		}
	}

	limit := 0
	if product.HasCustomerLimit() {
		limit = *product.LimitCustomer
	}

	reserved, err := u.repo.ReservePaidSlot(ctx, product.ID, limit)
	if err != nil {
		return fmt.Errorf("failed to reserve paid slot: %w", err)
	}
	if !reserved {
		// the customer paid but the product is full; the transaction stays NEW
		logger.WarnCtx(ctx, "Settled payment rejected, product sold out",
			logger.String("transaction_id", tx.ID),
			logger.String("product_id", product.ID),
			logger.Int("limit", limit))
		return payment.ErrSoldOut
	}
	return nil
}

// recoverFailedUpdate decides the fate of the reserved slot when the PAID
// update errored and may still have committed. The slot is released only when
// the row is known to be unpaid.
func (u *PaymentUC) recoverFailedUpdate(ctx context.Context, tx *models.Transaction, productID string) {
	current, err := u.repo.GetTransactionByID(ctx, tx.ID)
	if err != nil {
		logger.ErrorCtx(ctx, "Keeping paid slot, transaction state unknown",
			logger.String("transaction_id", tx.ID),
			logger.String("product_id", productID),
			logger.Err(err))
		return
	}
	if current.Status == models.TransactionStatusPaid {
		u.invalidator.OnTransactionPaid(ctx, current)
		return
	}
	u.releaseSlot(ctx, productID)
}

func (u *PaymentUC) releaseSlot(ctx context.Context, productID string) {
	if err := u.repo.ReleasePaidSlot(ctx, productID); err != nil {
		logger.ErrorCtx(ctx, "Failed to release paid slot",
			logger.String("product_id", productID),
			logger.Err(err))
	}
}

func (u *PaymentUC) publishPaid(ctx context.Context, tx *models.Transaction, product *models.Product) {
	customer, err := u.repo.GetCustomerByID(ctx, tx.CustomerID)
	if err != nil {
		logger.WarnCtx(ctx, "Skipping purchase email, customer lookup failed",
			logger.String("transaction_id", tx.ID),
			logger.Err(err))
		return
	}

	event := &models.PurchasePaidEvent{
		TransactionID: tx.ID,
		CustomerEmail: customer.Email,
		ProductID:     product.ID,
		ProductTitle:  product.Title,
		Amount:        tx.Amount,
		PaidAt:        tx.UpdatedAt,
	}
	if tx.IsAffiliate() {
		event.AffiliateID = *tx.AffiliateID
	}
	if customer.PasswordHash == "" {
		event.SignupURL = u.signupURL(ctx, customer)
	}

	if err := u.gw.PublishPurchasePaid(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish purchase paid event",
			logger.String("transaction_id", tx.ID),
			logger.Err(err))
	}
}

// signupURL issues a signup token for a guest buyer. Empty when it could not be stored.
func (u *PaymentUC) signupURL(ctx context.Context, customer *models.Customer) string {
	token := uuid.NewString()
	ttl := time.Duration(u.cfg.Commerce.SignupTokenTTLHours) * time.Hour
	if err := u.repo.StoreSignupToken(ctx, token, customer.Email, ttl); err != nil {
		logger.WarnCtx(ctx, "Failed to store signup token",
			logger.String("customer_id", customer.ID),
			logger.Err(err))
		return ""
	}
	return fmt.Sprintf("%s/signup/%s/%s", u.cfg.Commerce.BaseURL, token, url.PathEscape(customer.Email))
}
