package handler

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"trainbook/config"
	"trainbook/internal/delivery/api/response"
	deliverycontext "trainbook/internal/delivery/context"
	"trainbook/internal/domain/constants"
	"trainbook/internal/domain/entity"
	"trainbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// HeaderCallbackToken carries the shared secret of device callbacks
const HeaderCallbackToken = "X-Callback-Token"

// TokenVerifier validates the OIDC token of a push request
type TokenVerifier func(req *http.Request) error

// AlarmHandlerParams holds dependencies for AlarmHandler, injected by Fx.
type AlarmHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	AlarmUC usecase.AlarmUsecase
}

// AlarmHandler serves the callbacks of the platform alarm service
type AlarmHandler struct {
	alarmUC       usecase.AlarmUsecase
	logger        *slog.Logger
	verifyToken   TokenVerifier
	callbackToken string
}

// NewAlarmHandler is the constructor for AlarmHandler. Push requests are
// authenticated when alarms travel over Google Pub/Sub outside development.
func NewAlarmHandler(params AlarmHandlerParams) *AlarmHandler {
	var verify TokenVerifier
	if params.Config.Alarm.Provider == constants.AlarmProviderPubSub &&
		params.Config.Env.Env != constants.EnvDevelop {
		verify = verifyPubSubToken
	}

	return &AlarmHandler{
		alarmUC:       params.AlarmUC,
		logger:        params.Logger,
		verifyToken:   verify,
		callbackToken: params.Config.Alarm.CallbackToken,
	}
}

// CallbackAuth guards the device callbacks with alarm.callbackToken. Without a
// configured token every request passes.
func (h *AlarmHandler) CallbackAuth() echo.MiddlewareFunc {
	if h.callbackToken == "" {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:" + HeaderCallbackToken,
		Validator: func(key string, _ echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(h.callbackToken)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
				Warn("[Callback] Rejected alarm callback", slog.Any("error", err))

			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid callback token", nil)
		},
	})
}

// TriggerAlarm handles a fired alarm reported directly by the device
func (h *AlarmHandler) TriggerAlarm(c echo.Context) error {
	alarmID, err := strconv.ParseInt(c.Param("alarmId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid alarm ID")
	}

	outcome, err := h.alarmUC.HandleTrigger(c.Request().Context(), alarmID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, outcome)
}

// RestoreAlarms re-issues every pending alarm, e.g. after the device rebooted
func (h *AlarmHandler) RestoreAlarms(c echo.Context) error {
	report, err := h.alarmUC.RestorePending(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, report)
}

// HandlePush handles fired alarms delivered as Pub/Sub push messages.
// Malformed messages are acknowledged so that Pub/Sub does not redeliver them;
// store failures answer 503 so that it does.
func (h *AlarmHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyToken != nil {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Push] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Push] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Push] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.AlarmFiredEvent
	if err := json.Unmarshal(data, &event); err != nil || event.AlarmID <= 0 {
		h.logger.Error("[Push] Message carries no alarm id",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := h.withRequestID(ctx, &pushMsg, &event)

	outcome, err := h.alarmUC.HandleTrigger(ctx, event.AlarmID)
	if err != nil {
		reqLogger.Error("[Push] Failed to handle alarm",
			slog.Int64("alarm_id", event.AlarmID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Push] Alarm handled",
		slog.Int64("alarm_id", event.AlarmID),
		slog.Bool("found", outcome.Found),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	return c.NoContent(http.StatusOK)
}

// withRequestID continues the trace of the request that scheduled the alarm,
// falling back to the X-Request-Id of this push.
func (h *AlarmHandler) withRequestID(ctx context.Context, pushMsg *PubSubMessage, event *entity.AlarmFiredEvent) (context.Context, *slog.Logger) {
	requestID := event.TraceID(pushMsg.Message.Attributes)
	if requestID == "" {
		return ctx, deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	}

	return deliverycontext.WithRequestScope(ctx, requestID, h.logger)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
