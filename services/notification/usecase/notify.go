package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/socialclub/internal/pkg/logger"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/piresc/socialclub/internal/utils"
	"github.com/piresc/socialclub/services/notification"
)

const timeLayout = "2006-01-02 15:04"

// NotifyPurchasePaid sends the receipt of a settled transaction to the buyer
func (uc *NotificationUC) NotifyPurchasePaid(ctx context.Context, event *models.PurchasePaidEvent) error {
	if event.CustomerEmail == "" {
		return notification.ErrMissingRecipient
	}

	data := struct {
		ProductTitle  string
		Amount        string
		TransactionID string
		PaidAt        string
		SignupURL     string
	}{
		ProductTitle:  event.ProductTitle,
		Amount:        event.Amount.StringFixed(2),
		TransactionID: event.TransactionID,
		PaidAt:        uc.localTime(event.PaidAt),
		SignupURL:     event.SignupURL,
	}
	html, err := render(purchasePaidTmpl, data)
	if err != nil {
		return err
	}

	return uc.send(ctx, &models.Email{
		To:      event.CustomerEmail,
		Subject: fmt.Sprintf("Payment received: %s", event.ProductTitle),
		HTML:    html,
		Text: fmt.Sprintf("Thank you for your purchase of %s. Amount: %s MNT. Transaction: %s.",
			data.ProductTitle, data.Amount, data.TransactionID),
	})
}

// NotifyAffiliateCreated mails the new referral links to the affiliate
func (uc *NotificationUC) NotifyAffiliateCreated(ctx context.Context, event *models.AffiliateCreatedEvent) error {
	if event.Email == "" {
		return notification.ErrMissingRecipient
	}
	if len(event.Links) == 0 {
		return notification.ErrEmptyLinks
	}

	html, err := render(affiliateCreatedTmpl, event)
	if err != nil {
		return err
	}

	return uc.send(ctx, &models.Email{
		To:      event.Email,
		Subject: "Your affiliate links",
		HTML:    html,
		Text:    "Share these links:\n" + strings.Join(event.Links, "\n"),
	})
}

// NotifyOTPRequested mails a signup code
func (uc *NotificationUC) NotifyOTPRequested(ctx context.Context, event *models.OTPRequestedEvent) error {
	if event.Email == "" {
		return notification.ErrMissingRecipient
	}

	data := struct {
		Code      string
		ExpiresAt string
	}{
		Code:      event.Code,
		ExpiresAt: uc.localTime(event.ExpiresAt),
	}
	html, err := render(otpTmpl, data)
	if err != nil {
		return err
	}

	return uc.send(ctx, &models.Email{
		To:      event.Email,
		Subject: "Your verification code",
		HTML:    html,
		Text:    fmt.Sprintf("Your verification code is %s. It expires at %s.", data.Code, data.ExpiresAt),
	})
}

// NotifyPasswordResetRequested mails a password reset link
func (uc *NotificationUC) NotifyPasswordResetRequested(ctx context.Context, event *models.PasswordResetRequestedEvent) error {
	if event.Email == "" {
		return notification.ErrMissingRecipient
	}
	if event.Link == "" {
		return notification.ErrMissingLink
	}

	data := struct {
		Link      string
		ExpiresAt string
	}{
		Link:      event.Link,
		ExpiresAt: uc.localTime(event.ExpiresAt),
	}
	html, err := render(passwordResetTmpl, data)
	if err != nil {
		return err
	}

	return uc.send(ctx, &models.Email{
		To:      event.Email,
		Subject: "Reset your password",
		HTML:    html,
		Text:    fmt.Sprintf("Reset your password here: %s\nThe link expires at %s.", data.Link, data.ExpiresAt),
	})
}

func (uc *NotificationUC) send(ctx context.Context, email *models.Email) error {
	if err := uc.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("failed to send %q: %w", email.Subject, err)
	}
	logger.InfoCtx(ctx, "Email sent",
		logger.String("to", utils.MaskEmail(email.To)),
		logger.String("subject", email.Subject))
	return nil
}

// localTime renders t in the report timezone, UTC when it is unknown
func (uc *NotificationUC) localTime(t time.Time) string {
	loc, err := time.LoadLocation(uc.cfg.Commerce.ReportTimezone)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format(timeLayout)
}
