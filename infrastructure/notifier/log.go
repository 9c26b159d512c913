package notifier

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fuel-station-api/internal/domain"
	"github.com/vfg2006/fuel-station-api/pkg/metrics"
)

// LogDispatcher só registra a notificação no log
type LogDispatcher struct {
	recipient string
}

func NewLogDispatcher(recipient string) *LogDispatcher {
	return &LogDispatcher{recipient: recipient}
}

func (d *LogDispatcher) Dispatch(_ context.Context, n domain.Notification) error {
	n, err := stamp(n, d.recipient)
	metrics.NotificationSent(string(n.Kind), err)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"reference": n.Reference,
		"kind":      n.Kind,
		"recipient": n.Recipient,
		"severity":  n.Severity,
		"subject":   n.Subject,
	}).Info(n.Message)

	return nil
}
