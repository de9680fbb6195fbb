package ses

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/piresc/socialclub/internal/pkg/models"
)

const charset = "UTF-8"

// sendEmailAPI is the part of the SES client the mailer uses
type sendEmailAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Mailer sends emails through Amazon SES
type Mailer struct {
	client sendEmailAPI
	sender string
}

// NewMailer loads the default AWS credential chain for the configured region
func NewMailer(ctx context.Context, cfg models.NotificationConfig) (*Mailer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return newMailer(ses.NewFromConfig(awsCfg), cfg.SenderEmail), nil
}

func newMailer(client sendEmailAPI, sender string) *Mailer {
	return &Mailer{client: client, sender: sender}
}

// Send delivers one email
func (m *Mailer) Send(ctx context.Context, email *models.Email) error {
	body := &types.Body{}
	if email.HTML != "" {
		body.Html = &types.Content{Charset: aws.String(charset), Data: aws.String(email.HTML)}
	}
	if email.Text != "" {
		body.Text = &types.Content{Charset: aws.String(charset), Data: aws.String(email.Text)}
	}

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(m.sender),
		Destination: &types.Destination{ToAddresses: []string{email.To}},
		Message: &types.Message{
			Subject: &types.Content{Charset: aws.String(charset), Data: aws.String(email.Subject)},
			Body:    body,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
