// Package notify delivers internal email notifications for contact
// form submissions. Delivery failures are reported to the caller but
// must never fail the submission itself; the record is already saved
// by the time a notifier runs.
package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ContactData carries the submission details rendered into the
// notification email.
type ContactData struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notifier sends an internal notification about a contact submission.
type Notifier interface {
	NotifyContact(ctx context.Context, data ContactData) error
}

// NopNotifier is used when no email provider is configured. It logs
// the skip so a misconfigured environment is visible.
type NopNotifier struct {
	log *zap.Logger
}

// NewNopNotifier returns a Notifier that only logs.
func NewNopNotifier(log *zap.Logger) *NopNotifier {
	return &NopNotifier{log: log}
}

func (n *NopNotifier) NotifyContact(_ context.Context, data ContactData) error {
	n.log.Info("email notification skipped: no provider configured",
		zap.String("name", data.Name),
		zap.String("email", data.Email),
	)
	return nil
}
