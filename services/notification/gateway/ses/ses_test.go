package ses

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/piresc/socialclub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSES struct {
	mock.Mock
}

func (m *mockSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*ses.SendEmailOutput)
	return out, args.Error(1)
}

func TestSend(t *testing.T) {
	client := new(mockSES)
	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *ses.SendEmailInput) bool {
		return aws.ToString(in.Source) == "noreply@example.com" &&
			len(in.Destination.ToAddresses) == 1 &&
			in.Destination.ToAddresses[0] == "buyer@example.com"
	})).Return(&ses.SendEmailOutput{MessageId: aws.String("m-1")}, nil).Once()

	err := newMailer(client, "noreply@example.com").Send(context.Background(), &models.Email{
		To:      "buyer@example.com",
		Subject: "Your verification code",
		HTML:    "<b>123456</b>",
		Text:    "123456",
	})

	require.NoError(t, err)
	client.AssertExpectations(t)

	input := client.Calls[0].Arguments.Get(1).(*ses.SendEmailInput)
	assert.Equal(t, "Your verification code", aws.ToString(input.Message.Subject.Data))
	assert.Equal(t, "<b>123456</b>", aws.ToString(input.Message.Body.Html.Data))
	assert.Equal(t, "123456", aws.ToString(input.Message.Body.Text.Data))
	assert.Equal(t, "UTF-8", aws.ToString(input.Message.Body.Text.Charset))
}

func TestSend_TextOnly(t *testing.T) {
	client := new(mockSES)
	client.On("SendEmail", mock.Anything, mock.Anything).Return(&ses.SendEmailOutput{}, nil)

	require.NoError(t, newMailer(client, "noreply@example.com").Send(context.Background(), &models.Email{To: "a@example.com", Text: "hi"}))

	input := client.Calls[0].Arguments.Get(1).(*ses.SendEmailInput)
	assert.Nil(t, input.Message.Body.Html)
}

func TestSend_Error(t *testing.T) {
	client := new(mockSES)
	client.On("SendEmail", mock.Anything, mock.Anything).Return(nil, errors.New("MessageRejected"))

	err := newMailer(client, "noreply@example.com").Send(context.Background(), &models.Email{To: "a@example.com", Text: "hi"})
	assert.ErrorContains(t, err, "failed to send email")
	assert.ErrorContains(t, err, "MessageRejected")
}
