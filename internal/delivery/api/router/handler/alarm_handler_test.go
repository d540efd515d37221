package handler

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trainbook/config"
	deliverycontext "trainbook/internal/delivery/context"
	"trainbook/internal/domain/entity"
	mockUsecase "trainbook/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestAlarmHandler(t *testing.T, env, provider string) (*AlarmHandler, *mockUsecase.MockAlarmUsecase) {
	cfg := &config.Config{}
	cfg.Env.Env = env
	cfg.Alarm.Provider = provider

	alarmUC := mockUsecase.NewMockAlarmUsecase(t)
	h := NewAlarmHandler(AlarmHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		AlarmUC: alarmUC,
	})

	return h, alarmUC
}

func TestNewAlarmHandler_VerificationToggle(t *testing.T) {
	tests := []struct {
		env        string
		provider   string
		wantVerify bool
	}{
		{env: "develop", provider: "pubsub", wantVerify: false},
		{env: "production", provider: "pubsub", wantVerify: true},
		{env: "production", provider: "webhook", wantVerify: false},
		{env: "staging", provider: "cron", wantVerify: false},
	}

	for _, tt := range tests {
		t.Run(tt.env+"/"+tt.provider, func(t *testing.T) {
			h, _ := newTestAlarmHandler(t, tt.env, tt.provider)
			assert.Equal(t, tt.wantVerify, h.verifyToken != nil)
		})
	}
}

func TestAlarmHandler_HandlePush_RejectsUnverifiedToken(t *testing.T) {
	h, alarmUC := newTestAlarmHandler(t, "production", "pubsub")
	h.verifyToken = func(*http.Request) error { return errors.New("token expired") }

	data := base64.StdEncoding.EncodeToString([]byte(`{"alarm_id":1000}`))
	req := httptest.NewRequest(http.MethodPost, "/alarms/push", strings.NewReader(`{"message":{"data":"`+data+`"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := h.HandlePush(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	alarmUC.AssertNotCalled(t, "HandleTrigger", mock.Anything, mock.Anything)
}

func TestVerifyPubSubToken_HeaderChecks(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/alarms/push", nil)
	assert.ErrorContains(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	assert.ErrorContains(t, verifyPubSubToken(req), "invalid authorization header format")
}

func TestAlarmHandler_WithRequestID(t *testing.T) {
	h, _ := newTestAlarmHandler(t, "develop", "pubsub")

	tests := []struct {
		name       string
		attribute  string
		eventID    string
		incomingID string
		want       string
	}{
		{name: "attribute wins", attribute: "attr", eventID: "event", incomingID: "push", want: "attr"},
		{name: "event field", eventID: "event", incomingID: "push", want: "event"},
		{name: "push request", incomingID: "push", want: "push"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msg PubSubMessage
			if tt.attribute != "" {
				msg.Message.Attributes = map[string]string{"request_id": tt.attribute}
			}
			event := entity.AlarmFiredEvent{RequestID: tt.eventID, AlarmID: 1000}

			ctx := deliverycontext.WithRequestID(context.Background(), tt.incomingID)
			ctx, logger := h.withRequestID(ctx, &msg, &event)

			assert.NotNil(t, logger)
			assert.Equal(t, tt.want, deliverycontext.GetRequestIDFromContext(ctx))
		})
	}
}

func TestAlarmHandler_CallbackAuth(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantCode   int
		wantCalled bool
	}{
		{name: "no token configured", wantCode: http.StatusOK, wantCalled: true},
		{name: "matching token", configured: "s3cret", sent: "s3cret", wantCode: http.StatusOK, wantCalled: true},
		{name: "missing token", configured: "s3cret", wantCode: http.StatusUnauthorized},
		{name: "wrong token", configured: "s3cret", sent: "guess", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, alarmUC := newTestAlarmHandler(t, "production", "cron")
			h.callbackToken = tt.configured
			if tt.wantCalled {
				alarmUC.EXPECT().HandleTrigger(mock.Anything, int64(1000)).
					Return(&entity.TriggerOutcome{AlarmID: 1000, Found: true}, nil)
			}

			e := echo.New()
			e.POST("/alarms/:alarmId/trigger", h.TriggerAlarm, h.CallbackAuth())

			req := httptest.NewRequest(http.MethodPost, "/alarms/1000/trigger", nil)
			if tt.sent != "" {
				req.Header.Set(HeaderCallbackToken, tt.sent)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if !tt.wantCalled {
				assert.Contains(t, rec.Body.String(), `"UNAUTHORIZED"`)
				alarmUC.AssertNotCalled(t, "HandleTrigger", mock.Anything, mock.Anything)
			}
		})
	}
}
