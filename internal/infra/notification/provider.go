package notification

import (
	"context"
	"log/slog"

	"trainbook/config"
	"trainbook/internal/domain/constants"
	"trainbook/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotifierParams holds dependencies for AlarmNotifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAlarmNotifier creates an AlarmNotifier based on configuration
func NewAlarmNotifier(params NotifierParams) (service.AlarmNotifier, error) {
	cfg := params.Config.Notification
	logger := params.Logger

	switch cfg.Provider {
	case constants.NotificationProviderLog, "":
		logger.Info("Using log notifier for alarms")

		return NewLogNotifier(logger), nil

	case constants.NotificationProviderFirebase:
		if cfg.Firebase == nil {
			return nil, errors.New("firebase settings are required for firebase provider")
		}
		if len(cfg.Firebase.DeviceTokens) == 0 {
			return nil, errors.New("at least one device token is required for firebase provider")
		}

		sender, err := NewFirebaseSender(params.Ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
		if err != nil {
			return nil, err
		}

		logger.Info("Using Firebase push notifier for alarms",
			slog.String("project_id", cfg.Firebase.ProjectID),
			slog.Int("device_count", len(cfg.Firebase.DeviceTokens)),
		)

		return NewPushNotifier(sender, cfg.Firebase.DeviceTokens, logger), nil

	default:
		return nil, errors.Errorf("unknown notification provider: %s", cfg.Provider)
	}
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAlarmNotifier),
)
