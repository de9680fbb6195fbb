package models

import "github.com/shopspring/decimal"

// Invoice is the gateway side of a transaction
type Invoice struct {
	InvoiceID string       `json:"invoice_id"`
	QRText    string       `json:"qr_text"`
	QRImage   string       `json:"qr_image,omitempty"`
	ShortURL  string       `json:"qPay_shortUrl"`
	URLs      []InvoiceURL `json:"urls,omitempty"`
}

// InvoiceURL is a deep link into a banking app
type InvoiceURL struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Link        string `json:"link"`
}

// InvoiceRequest asks the gateway to bill a customer
type InvoiceRequest struct {
	SenderInvoiceNo string
	ReceiverCode    string
	Description     string
	Amount          decimal.Decimal
	CallbackURL     string
}

// QPayToken is the gateway access token response
type QPayToken struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires_in"`
}

// QPayInvoiceBody is the gateway invoice creation payload
type QPayInvoiceBody struct {
	InvoiceCode         string  `json:"invoice_code"`
	SenderInvoiceNo     string  `json:"sender_invoice_no"`
	InvoiceReceiverCode string  `json:"invoice_receiver_code"`
	InvoiceDescription  string  `json:"invoice_description"`
	Amount              float64 `json:"amount"`
	CallbackURL         string  `json:"callback_url"`
}

// QPayCheckBody is the gateway payment check payload
type QPayCheckBody struct {
	ObjectType string     `json:"object_type"`
	ObjectID   string     `json:"object_id"`
	Offset     QPayOffset `json:"offset"`
}

// QPayOffset pages the payment check result
type QPayOffset struct {
	PageNumber int `json:"page_number"`
	PageLimit  int `json:"page_limit"`
}

// QPayCheckResult is the gateway payment check response
type QPayCheckResult struct {
	Count      int              `json:"count"`
	PaidAmount decimal.Decimal  `json:"paid_amount"`
	Rows       []QPayPaymentRow `json:"rows"`
}

// QPayPaymentRow is one settled payment of an invoice
type QPayPaymentRow struct {
	PaymentID       string `json:"payment_id"`
	PaymentStatus   string `json:"payment_status"`
	PaymentAmount   string `json:"payment_amount"`
	PaymentCurrency string `json:"payment_currency"`
}

// Settlement summarises a payment check
type Settlement struct {
	Count      int
	PaidAmount decimal.Decimal
}

// Settled reports whether at least one payment covers the invoice
func (s Settlement) Settled() bool {
	return s.Count > 0
}
