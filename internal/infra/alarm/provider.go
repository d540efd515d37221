package alarm

import (
	"context"
	"log/slog"

	"trainbook/config"
	"trainbook/internal/domain/constants"
	"trainbook/internal/domain/lifecycle"
	"trainbook/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for AlarmScheduler, injected by Fx
type SchedulerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Publisher service.AlarmCommandPublisher
}

// SchedulerResult exposes the scheduler and, for in-process schedulers, the source of fired alarms
type SchedulerResult struct {
	fx.Out

	Scheduler service.AlarmScheduler
	Source    service.TriggerSource
}

// NewAlarmScheduler creates an AlarmScheduler based on configuration
func NewAlarmScheduler(params SchedulerParams) (SchedulerResult, error) {
	cfg := params.Config.Alarm
	logger := params.Logger

	switch cfg.Provider {
	case constants.AlarmProviderLog:
		logger.Info("Using log alarm scheduler")

		return SchedulerResult{Scheduler: NewLogScheduler(logger)}, nil

	case constants.AlarmProviderCron, "":
		scheduler := NewCronScheduler(logger)

		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				scheduler.Start()
				logger.Info("In-process alarm scheduler started")

				return nil
			},
			OnStop: func(stopCtx context.Context) error {
				ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return scheduler.Stop(ctx)
			},
		})

		return SchedulerResult{Scheduler: scheduler, Source: scheduler}, nil

	case constants.AlarmProviderPubSub, constants.AlarmProviderWebhook:
		logger.Info("Forwarding alarms to the device", slog.String("provider", cfg.Provider))

		return SchedulerResult{Scheduler: NewRemoteScheduler(params.Publisher, logger)}, nil

	default:
		return SchedulerResult{}, errors.Errorf("unknown alarm provider: %s", cfg.Provider)
	}
}

// BindTriggerSink routes alarms fired in-process to sink. It does nothing for
// schedulers whose alarms fire on the device.
func BindTriggerSink(source service.TriggerSource, sink service.TriggerSink) {
	if source == nil {
		return
	}
	source.SetTriggerSink(sink)
}

// Module provides the alarm FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAlarmScheduler),
)
