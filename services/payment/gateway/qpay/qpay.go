// Package qpay is the client of the QPay merchant API v2.
package qpay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/socialclub/internal/pkg/constants"
	"github.com/piresc/socialclub/internal/pkg/database"
	httpclient "github.com/piresc/socialclub/internal/pkg/http"
	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/pkg/retry"
)

const (
	tokenPath   = "/v2/auth/token"
	invoicePath = "/v2/invoice"
	checkPath   = "/v2/payment/check"

	// tokens are dropped from the cache this long before QPay expires them
	tokenExpiryMargin = 15 * time.Second
)

// Client talks to QPay with a bearer token shared through Redis
type Client struct {
	http        *httpclient.Client
	cfg         models.QPayConfig
	redisClient *database.RedisClient
	retrier     *retry.Retrier
	now         func() time.Time
}

// NewClient creates a QPay client
func NewClient(cfg models.QPayConfig, redisClient *database.RedisClient) *Client {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.MaxRetries
	retryCfg.RetryableFunc = isRetryable

	return &Client{
		http:        httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.Timeout)*time.Second),
		cfg:         cfg,
		redisClient: redisClient,
		retrier:     retry.New(retryCfg, nil),
		now:         time.Now,
	}
}

// CreateInvoice registers an invoice. It is not retried on transport errors
// since QPay could have created it already.
func (c *Client) CreateInvoice(ctx context.Context, req *models.InvoiceRequest) (*models.Invoice, error) {
	body := models.QPayInvoiceBody{
		InvoiceCode:         c.cfg.InvoiceCode,
		SenderInvoiceNo:     req.SenderInvoiceNo,
		InvoiceReceiverCode: req.ReceiverCode,
		InvoiceDescription:  req.Description,
		Amount:              req.Amount.Round(2).InexactFloat64(),
		CallbackURL:         req.CallbackURL,
	}

	var invoice models.Invoice
	if err := c.call(ctx, http.MethodPost, invoicePath, body, &invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return &invoice, nil
}

// CheckPayment asks QPay which payments settled an invoice
func (c *Client) CheckPayment(ctx context.Context, invoiceID string) (*models.Settlement, error) {
	body := models.QPayCheckBody{
		ObjectType: "INVOICE",
		ObjectID:   invoiceID,
		Offset:     models.QPayOffset{PageNumber: 1, PageLimit: 100},
	}

	var result models.QPayCheckResult
	err := c.retrier.Execute(ctx, func(ctx context.Context) error {
		return c.call(ctx, http.MethodPost, checkPath, body, &result)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check payment: %w", err)
	}

	return &models.Settlement{Count: result.Count, PaidAmount: result.PaidAmount}, nil
}

// call sends an authenticated request, fetching a fresh token once when QPay rejects the cached one
func (c *Client) call(ctx context.Context, method, path string, body, out interface{}) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	err = c.http.DoJSON(ctx, c.authorized(method, path, body, token), out)

	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusUnauthorized {
		if delErr := c.redisClient.Delete(ctx, constants.KeyQPayAccessToken); delErr != nil {
			logger.WarnCtx(ctx, "Failed to drop rejected QPay token", logger.Err(delErr))
		}
		if token, err = c.fetchToken(ctx); err != nil {
			return err
		}
		err = c.http.DoJSON(ctx, c.authorized(method, path, body, token), out)
	}
	return err
}

func (c *Client) authorized(method, path string, body interface{}, token string) httpclient.Request {
	return httpclient.Request{
		Method:  method,
		Path:    path,
		Body:    body,
		Headers: map[string]string{"Authorization": "Bearer " + token},
	}
}

// token returns the cached access token or fetches a new one
func (c *Client) token(ctx context.Context) (string, error) {
	cached, err := c.redisClient.Get(ctx, constants.KeyQPayAccessToken)
	if err == nil && cached != "" {
		return cached, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.WarnCtx(ctx, "Failed to read cached QPay token", logger.Err(err))
	}
	return c.fetchToken(ctx)
}

func (c *Client) fetchToken(ctx context.Context) (string, error) {
	var tok models.QPayToken
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method:    http.MethodPost,
		Path:      tokenPath,
		BasicAuth: &[2]string{c.cfg.Username, c.cfg.Password},
	}, &tok)
	if err != nil {
		return "", fmt.Errorf("failed to fetch access token: %w", err)
	}
	if tok.AccessToken == "" {
		return "", errors.New("empty access token")
	}

	if ttl := c.tokenTTL(tok.ExpiresIn); ttl > 0 {
		if err := c.redisClient.Set(ctx, constants.KeyQPayAccessToken, tok.AccessToken, ttl); err != nil {
			logger.WarnCtx(ctx, "Failed to cache QPay token", logger.Err(err))
		}
	}
	return tok.AccessToken, nil
}

// tokenTTL turns expires_in into a cache lifetime. QPay sends a unix
// timestamp; small values are treated as a lifetime in seconds.
func (c *Client) tokenTTL(expiresIn int64) time.Duration {
	now := c.now()
	expiry := time.Unix(expiresIn, 0)
	if expiresIn < 1_000_000_000 {
		expiry = now.Add(time.Duration(expiresIn) * time.Second)
	}
	return expiry.Sub(now) - tokenExpiryMargin
}

func isRetryable(err error) bool {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= http.StatusInternalServerError
	}
	return retry.NetworkRetryableFunc()(err)
}
