package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/socialclub/internal/pkg/apperror"
	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/pkg/money"
	"github.com/piresc/socialclub/internal/utils"
	"github.com/piresc/socialclub/services/payment"
	"github.com/shopspring/decimal"
)

// CreateInvoice bills a customer for a product bought directly
func (u *PaymentUC) CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.InvoiceResult, error) {
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, payment.ErrInvalidEmail
	}
	if req.ProductID == "" {
		return nil, apperror.BadRequest("productId is required")
	}

	product, err := u.repo.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	return u.issue(ctx, product, nil, req.OptionID, email)
}

// CreateAffiliateInvoice bills a customer for a product bought through an affiliate link
func (u *PaymentUC) CreateAffiliateInvoice(ctx context.Context, req *models.CreateAffiliateInvoiceRequest) (*models.InvoiceResult, error) {
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, payment.ErrInvalidEmail
	}
	if req.AffiliateUID == "" {
		return nil, apperror.BadRequest("affiliateId is required")
	}

	aff, err := u.repo.GetAffiliateByUID(ctx, req.AffiliateUID)
	if err != nil {
		return nil, err
	}
	if aff.Status != models.AffiliateStatusActive {
		return nil, payment.ErrAffiliateInactive
	}

	product, err := u.repo.GetProduct(ctx, aff.ProductID)
	if err != nil {
		return nil, err
	}

	return u.issue(ctx, product, aff, req.OptionID, email)
}

// issue creates the gateway invoice and records the NEW transaction with its fee split
func (u *PaymentUC) issue(ctx context.Context, product *models.Product, aff *models.Affiliate, optionID, email string) (*models.InvoiceResult, error) {
	price := product.Price
	var optionRef *string
	if optionID != "" {
		option := product.FindOption(optionID)
		if option == nil {
			return nil, payment.ErrOptionNotFound
		}
		price = option.Price
		optionRef = &option.ID
	}

	customer, err := u.repo.FindOrCreateCustomer(ctx, email)
	if err != nil {
		return nil, err
	}

	mode := models.PaymentModeSimple
	commission := decimal.Zero
	if aff != nil {
		mode = models.PaymentModeAffiliate
		commission = aff.Commission
	}

	uid := uuid.NewString()
	invoice, err := u.gw.CreateInvoice(ctx, &models.InvoiceRequest{
		SenderInvoiceNo: uid,
		ReceiverCode:    customer.ID,
		Description:     product.Title,
		Amount:          price,
		CallbackURL:     fmt.Sprintf("%s/call-back/%s/%s", u.cfg.QPay.CallbackBaseURL, mode, uid),
	})
	if err != nil {
		return nil, apperror.WithCause(payment.ErrGateway, err)
	}

	split := money.Split(price, decimal.NewFromFloat(u.cfg.Commerce.GatewayFeePercent), commission)
	now := u.now()
	tx := &models.Transaction{
		ID:               uuid.NewString(),
		UID:              uid,
		ObjectID:         invoice.InvoiceID,
		Status:           models.TransactionStatusNew,
		Amount:           split.Gross,
		GatewayFee:       split.GatewayFee,
		NetAfterFee:      split.NetAfterFee,
		AffiliateFee:     split.AffiliateFee,
		MerchantAfterFee: split.MerchantAfterFee,
		CustomerID:       customer.ID,
		ProductID:        product.ID,
		MerchantID:       product.MerchantID,
		OptionID:         optionRef,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if aff != nil {
		tx.AffiliateID = &aff.ID
		tx.AffiliateCustomerID = &aff.AffiliateCustomerID
	}

	if err := u.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Invoice created",
		logger.String("transaction_id", tx.ID),
		logger.String("invoice_id", invoice.InvoiceID),
		logger.String("product_id", product.ID),
		logger.String("mode", string(mode)),
		logger.String("amount", price.StringFixed(2)))

	return &models.InvoiceResult{Transaction: tx, Invoice: invoice}, nil
}

// CheckTransaction reports the status of a transaction and whether its invoice lapsed
func (u *PaymentUC) CheckTransaction(ctx context.Context, id string) (*models.TransactionStatusView, error) {
	tx, err := u.repo.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	expiresAt := tx.CreatedAt.Add(time.Duration(u.cfg.Commerce.InvoiceExpiryMinutes) * time.Minute)
	return &models.TransactionStatusView{
		ID:        tx.ID,
		UID:       tx.UID,
		Status:    tx.Status,
		Amount:    tx.Amount,
		CreatedAt: tx.CreatedAt,
		ExpiresAt: expiresAt,
		Expired:   tx.Status == models.TransactionStatusNew && u.now().After(expiresAt),
	}, nil
}
