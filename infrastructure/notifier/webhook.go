package notifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fuel-station-api/internal/config"
	"github.com/vfg2006/fuel-station-api/internal/domain"
	"github.com/vfg2006/fuel-station-api/pkg/metrics"
)

type WebhookDispatcher struct {
	httpClient *resty.Client
	url        string
	recipient  string
}

func NewWebhookDispatcher(cfg config.Notification) *WebhookDispatcher {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return r != nil && r.StatusCode() >= http.StatusInternalServerError
		})
	client.JSONMarshal = jsoniter.Marshal
	client.JSONUnmarshal = jsoniter.Unmarshal

	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}

	return &WebhookDispatcher{
		httpClient: client,
		url:        cfg.WebhookURL,
		recipient:  cfg.Recipient,
	}
}

// Dispatch publica a notificação no webhook. Qualquer status fora de 2xx é erro.
func (d *WebhookDispatcher) Dispatch(ctx context.Context, n domain.Notification) (err error) {
	defer func() { metrics.NotificationSent(string(n.Kind), err) }()

	n, err = stamp(n, d.recipient)
	if err != nil {
		return fmt.Errorf("erro ao gerar referência da notificação: %w", err)
	}

	resp, err := d.httpClient.R().
		SetContext(ctx).
		SetBody(n).
		Post(d.url)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: status=%d body=%s", ErrDeliveryFailed, resp.StatusCode(), resp.String())
	}

	logrus.WithFields(logrus.Fields{
		"reference": n.Reference,
		"kind":      n.Kind,
		"severity":  n.Severity,
	}).Info("Notificação entregue ao webhook")

	return nil
}
