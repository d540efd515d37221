package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "trainbook/internal/delivery/context"
	"trainbook/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// localHTTPPublisher implements AlarmCommandPublisher by POSTing Pub/Sub style push
// envelopes to an HTTP endpoint. Requests are throttled to the configured rate.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	now        func() time.Time
}

// PushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a webhook publisher. ratePerSecond <= 0 disables throttling.
func NewLocalHTTPPublisher(endpoint string, ratePerSecond float64, logger *slog.Logger) service.AlarmCommandPublisher {
	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}

	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
		now:     time.Now,
	}
}

// PublishAlarmCommand sends cmd to the endpoint once the limiter admits it
func (p *localHTTPPublisher) PublishAlarmCommand(ctx context.Context, cmd *service.AlarmCommand) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "webhook rate limit")
	}

	commandData, err := json.Marshal(cmd)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{
		Subscription: "projects/local/subscriptions/alarm-commands",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(commandData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = p.now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = commandAttributes(cmd)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cmd.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, cmd.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("alarm endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Alarm command delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("action", string(cmd.Action)),
		slog.Int64("alarm_id", cmd.AlarmID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
