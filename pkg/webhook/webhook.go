package webhook

import (
	"net/http"
	"net/url"

	"github.com/gigboard/gigboard-api/pkg/circuitbreaker"
	"github.com/gigboard/gigboard-api/pkg/httpclient"
	"github.com/gigboard/gigboard-api/pkg/logger"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const breakerName = "registration-webhook"

// Notifier pings a webhook URL with a record_id query parameter after a
// freelancer registers, kicking off downstream processing (moderation queue,
// notifications). Delivery is best effort: failures are logged but never
// block the calling operation, and repeated failures trip a circuit breaker
// so a dead endpoint is not hammered on every registration.
type Notifier struct {
	url            string
	httpClient     httpclient.Client
	circuitBreaker *gobreaker.CircuitBreaker
}

// NewNotifier creates a webhook notifier. An empty URL disables delivery.
func NewNotifier(webhookURL string, httpClient httpclient.Client) *Notifier {
	cb := circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig(breakerName))

	return &Notifier{
		url:            webhookURL,
		httpClient:     httpClient,
		circuitBreaker: cb,
	}
}

// NotifyAsync delivers the notification in the background.
func (n *Notifier) NotifyAsync(recordID string) {
	if n == nil || n.url == "" {
		// No webhook configured, skip silently
		return
	}

	go n.notify(recordID)
}

func (n *Notifier) notify(recordID string) {
	targetURL := n.url + "?record_id=" + url.QueryEscape(recordID)

	logger.Info("Calling registration webhook",
		zap.String("url", n.url),
		zap.String("record_id", recordID))

	resp, err := circuitbreaker.Execute(n.circuitBreaker, func() (*http.Response, error) {
		return n.httpClient.Get(targetURL)
	})
	if err != nil {
		logger.Error("Failed to call registration webhook",
			zap.Error(circuitbreaker.FormatError(breakerName, err)),
			zap.String("url", n.url),
			zap.String("record_id", recordID))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		logger.Info("Registration webhook called successfully",
			zap.String("url", n.url),
			zap.String("record_id", recordID),
			zap.Int("status_code", resp.StatusCode))
	} else {
		logger.Warn("Registration webhook returned non-success status",
			zap.String("url", n.url),
			zap.String("record_id", recordID),
			zap.Int("status_code", resp.StatusCode))
	}
}
