// Package pubsub forwards alarm commands to the device that owns the alarm clock.
package pubsub

import (
	"context"
	"log/slog"

	"trainbook/config"
	"trainbook/internal/domain/constants"
	"trainbook/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is used when alarms are not forwarded to a remote device
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAlarmCommand(_ context.Context, cmd *service.AlarmCommand) error {
	p.logger.Debug("[NoopPubSub] Alarm command forwarding disabled, skipping",
		slog.String("action", string(cmd.Action)),
		slog.Int64("alarm_id", cmd.AlarmID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for AlarmCommandPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAlarmCommandPublisher creates an AlarmCommandPublisher based on the alarm provider
func NewAlarmCommandPublisher(params PublisherParams) (service.AlarmCommandPublisher, error) {
	cfg := params.Config.Alarm
	logger := params.Logger

	var publisher service.AlarmCommandPublisher
	var err error

	switch cfg.Provider {
	case constants.AlarmProviderWebhook:
		if cfg.WebhookEndpoint == "" {
			return nil, errors.New("webhook endpoint is required for webhook provider")
		}
		logger.Info("Using webhook publisher for alarm commands",
			slog.String("endpoint", cfg.WebhookEndpoint),
			slog.Float64("rate_limit", cfg.WebhookRateLimit),
		)

		publisher = NewLocalHTTPPublisher(cfg.WebhookEndpoint, cfg.WebhookRateLimit, logger)

	case constants.AlarmProviderPubSub:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for pubsub provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for pubsub provider")
		}

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return &noopPublisher{logger: logger}, nil
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing AlarmCommandPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAlarmCommandPublisher),
)
