package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESMailer sends report emails through AWS SES.
type SESMailer struct {
	client *ses.Client
	from   string
}

// NewSES creates an SES-backed mailer using the default AWS credential chain.
func NewSES(ctx context.Context, region, from string) (*SESMailer, error) {
	if from == "" {
		return nil, fmt.Errorf("sender address is required")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SESMailer{client: ses.NewFromConfig(cfg), from: from}, nil
}

// SendReportReady implements Mailer.
func (m *SESMailer) SendReportReady(ctx context.Context, to, reportURL string) error {
	input := &ses.SendEmailInput{
		Source: aws.String(m.from),
		Destination: &sestypes.Destination{
			ToAddresses: []string{to},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(reportReadySubject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(reportReadyBody(reportURL))},
			},
		},
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send report email to %s: %w", to, err)
	}
	return nil
}
