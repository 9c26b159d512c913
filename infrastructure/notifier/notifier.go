package notifier

//go:generate mockgen -source=notifier.go -destination=mocks/notifier.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/fuel-station-api/internal/config"
	"github.com/vfg2006/fuel-station-api/internal/domain"
	"github.com/vfg2006/fuel-station-api/pkg/utils"
)

var ErrDeliveryFailed = errors.New("notification delivery failed")

// Dispatcher entrega notificações para o dono do posto
type Dispatcher interface {
	Dispatch(ctx context.Context, n domain.Notification) error
}

// New escolhe o webhook quando há URL configurada; sem URL as notificações só são logadas
func New(cfg config.Notification) Dispatcher {
	if cfg.WebhookURL == "" {
		return NewLogDispatcher(cfg.Recipient)
	}
	return NewWebhookDispatcher(cfg)
}

// stamp completa referência, destinatário e data quando vierem vazios
func stamp(n domain.Notification, recipient string) (domain.Notification, error) {
	if n.Reference == "" {
		ref, err := utils.NewReference(string(n.Kind))
		if err != nil {
			return n, err
		}
		n.Reference = ref
	}
	if n.Recipient == "" {
		n.Recipient = recipient
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	return n, nil
}
