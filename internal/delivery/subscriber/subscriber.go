// Package subscriber pulls fired-alarm events from a Pub/Sub subscription. It is
// the alternative to the push endpoint for deployments that cannot be reached
// by Pub/Sub.
package subscriber

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"trainbook/config"
	"trainbook/internal/delivery"
	deliverycontext "trainbook/internal/delivery/context"
	"trainbook/internal/domain/entity"
	"trainbook/internal/errors"
	"trainbook/internal/usecase"

	"cloud.google.com/go/pubsub/v2"
	"go.uber.org/fx"
)

// receiver is the part of *pubsub.Subscriber the subscriber needs
type receiver interface {
	Receive(ctx context.Context, f func(context.Context, *pubsub.Message)) error
}

// Params holds dependencies for the alarm subscriber, injected by Fx.
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Cfg     *config.Config
	Logger  *slog.Logger
	AlarmUC usecase.AlarmUsecase
}

// NewSubscriber returns the pull delivery. Without alarm.subscriptionId it
// returns a delivery that serves nothing.
func NewSubscriber(params Params) (delivery.Delivery, error) {
	cfg := params.Cfg.Alarm
	if cfg.SubscriptionID == "" {
		return disabledSubscriber{}, nil
	}

	client, err := pubsub.NewClient(params.Ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	sub := newAlarmSubscriber(client.Subscriber(cfg.SubscriptionID), params.AlarmUC, params.Logger.With(
		slog.String("subscription_id", cfg.SubscriptionID),
	))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stopErr := sub.stop(ctx)

			return errors.WithStack(errors.Join(stopErr, client.Close()))
		},
	})

	return sub, nil
}

type disabledSubscriber struct{}

func (disabledSubscriber) Serve(context.Context) error {
	return nil
}

type alarmSubscriber struct {
	receiver receiver
	alarmUC  usecase.AlarmUsecase
	logger   *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
	done    chan struct{}
}

func newAlarmSubscriber(r receiver, alarmUC usecase.AlarmUsecase, logger *slog.Logger) *alarmSubscriber {
	return &alarmSubscriber{
		receiver: r,
		alarmUC:  alarmUC,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Serve receives until stop is called. Serve must be called at most once.
func (s *alarmSubscriber) Serve(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		close(s.done)

		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	defer close(s.done)
	defer cancel()

	s.logger.Info("Receiving fired alarms")

	err := s.receiver.Receive(ctx, func(msgCtx context.Context, msg *pubsub.Message) {
		if s.handle(msgCtx, msg) {
			msg.Ack()
		} else {
			msg.Nack()
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "receive fired alarms")
	}

	return nil
}

// handle reports whether msg is done with. Malformed events are acknowledged so
// they are not redelivered forever; failures of the use case ask for redelivery.
func (s *alarmSubscriber) handle(ctx context.Context, msg *pubsub.Message) bool {
	var event entity.AlarmFiredEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil || event.AlarmID <= 0 {
		s.logger.Error("[Pull] Message carries no alarm id",
			slog.String("message_id", msg.ID),
			slog.Any("error", err),
		)

		return true
	}

	logger := s.logger
	if requestID := event.TraceID(msg.Attributes); requestID != "" {
		ctx, logger = deliverycontext.WithRequestScope(ctx, requestID, s.logger)
	}

	outcome, err := s.alarmUC.HandleTrigger(ctx, event.AlarmID)
	if err != nil {
		logger.Error("[Pull] Failed to handle alarm", slog.Int64("alarm_id", event.AlarmID), slog.Any("error", err))

		return false
	}

	logger.Info("[Pull] Alarm handled",
		slog.Int64("alarm_id", event.AlarmID),
		slog.Bool("found", outcome.Found),
		slog.String("message_id", msg.ID),
	)

	return true
}

func (s *alarmSubscriber) stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	cancel := s.cancel
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
