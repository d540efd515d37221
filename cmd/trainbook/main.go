package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"trainbook/config"
	"trainbook/internal/delivery"
	"trainbook/internal/delivery/api"
	"trainbook/internal/delivery/api/router/handler"
	"trainbook/internal/delivery/subscriber"
	"trainbook/internal/domain/lifecycle"
	"trainbook/internal/domain/service"
	"trainbook/internal/infra/alarm"
	"trainbook/internal/infra/cache"
	logs "trainbook/internal/infra/log"
	"trainbook/internal/infra/notification"
	"trainbook/internal/infra/persistence/database"
	"trainbook/internal/infra/pubsub"
	"trainbook/internal/usecase"
	"trainbook/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type restoreParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	AlarmUC usecase.AlarmUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			bindTriggerSink,
			restoreOnBoot,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newLocation,
		newClock,
		database.New,
		cache.New,
	)
}

// newLocation is the zone reminder dates are turned into fire instants in
func newLocation(cfg *config.Config) (*time.Location, error) {
	return cfg.Location()
}

func newClock() usecase.Clock {
	return time.Now
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			database.NewReminderRepository,
			database.NewAlarmSequenceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		alarm.Module,
		notification.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReminderService,
			impl.NewAlarmService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewReminderHandler,
			handler.NewAlarmHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				subscriber.NewSubscriber,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bindTriggerSink hands alarms fired by the in-process scheduler to the alarm use case
func bindTriggerSink(source service.TriggerSource, alarmUC usecase.AlarmUsecase, logger *slog.Logger) {
	alarm.BindTriggerSink(source, func(ctx context.Context, alarmID int64) {
		if _, err := alarmUC.HandleTrigger(ctx, alarmID); err != nil {
			logger.Error("Failed to handle fired alarm", slog.Int64("alarm_id", alarmID), slog.Any("error", err))
		}
	})
}

// restoreOnBoot re-issues pending alarms once the scheduler is running.
// A failed restore is logged and does not stop the process.
func restoreOnBoot(params restoreParams) {
	if !params.Config.App.RestoreOnBoot {
		return
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(startCtx), lifecycle.RestoreTimeout)
			defer cancel()

			report, err := params.AlarmUC.RestorePending(ctx)
			if err != nil {
				params.Logger.Error("Failed to restore pending alarms", slog.Any("error", err))

				return nil
			}
			if report.Failed > 0 {
				params.Logger.Warn("Some alarms were not restored", slog.Int("failed", report.Failed))
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
