package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESNotifier delivers contact notifications through Amazon SES.
type SESNotifier struct {
	client     *ses.Client
	from       string
	recipients []string
}

// NewSESNotifier builds an SES-backed notifier using the default AWS
// credential chain for the given region.
func NewSESNotifier(ctx context.Context, region, from string, recipients []string) (*SESNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SESNotifier{
		client:     ses.NewFromConfig(cfg),
		from:       from,
		recipients: recipients,
	}, nil
}

// NotifyContact renders the notification email and sends it to every
// configured recipient in a single SES call.
func (s *SESNotifier) NotifyContact(ctx context.Context, data ContactData) error {
	html, err := renderContactEmail(data)
	if err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Source: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: s.recipients,
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(contactEmailSubject(data)),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(html),
					Charset: aws.String("UTF-8"),
				},
			},
		},
		ReplyToAddresses: []string{data.Email},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("send ses email: %w", err)
	}

	return nil
}
