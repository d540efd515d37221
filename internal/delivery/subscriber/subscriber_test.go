package subscriber

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"trainbook/config"
	deliverycontext "trainbook/internal/delivery/context"
	"trainbook/internal/domain/entity"
	domainerrors "trainbook/internal/domain/errors"
	mockUsecase "trainbook/internal/mocks/usecase"

	"cloud.google.com/go/pubsub/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// fakeReceiver hands every queued message to the callback, then blocks until cancelled.
type fakeReceiver struct {
	messages []*pubsub.Message
}

func (r *fakeReceiver) Receive(ctx context.Context, f func(context.Context, *pubsub.Message)) error {
	for _, msg := range r.messages {
		f(ctx, msg)
	}
	<-ctx.Done()

	return ctx.Err()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAlarmSubscriber_Handle(t *testing.T) {
	tests := []struct {
		name    string
		msg     *pubsub.Message
		ucErr   error
		callUC  bool
		wantAck bool
	}{
		{name: "handled", msg: &pubsub.Message{ID: "1", Data: []byte(`{"alarm_id":1000}`)}, callUC: true, wantAck: true},
		{name: "not json", msg: &pubsub.Message{ID: "2", Data: []byte(`alarm`)}, wantAck: true},
		{name: "no alarm id", msg: &pubsub.Message{ID: "3", Data: []byte(`{"note":"x"}`)}, wantAck: true},
		{
			name:    "store failure",
			msg:     &pubsub.Message{ID: "4", Data: []byte(`{"alarm_id":1000}`)},
			ucErr:   domainerrors.ErrPersistenceFailed,
			callUC:  true,
			wantAck: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alarmUC := mockUsecase.NewMockAlarmUsecase(t)
			if tt.callUC {
				var outcome *entity.TriggerOutcome
				if tt.ucErr == nil {
					outcome = &entity.TriggerOutcome{AlarmID: 1000, Found: true}
				}
				alarmUC.EXPECT().HandleTrigger(mock.Anything, int64(1000)).Return(outcome, tt.ucErr)
			}

			s := newAlarmSubscriber(&fakeReceiver{}, alarmUC, discardLogger())

			assert.Equal(t, tt.wantAck, s.handle(context.Background(), tt.msg))
		})
	}
}

func TestAlarmSubscriber_HandleContinuesTrace(t *testing.T) {
	alarmUC := mockUsecase.NewMockAlarmUsecase(t)

	var gotRequestID string
	alarmUC.EXPECT().HandleTrigger(mock.Anything, int64(1000)).
		RunAndReturn(func(ctx context.Context, alarmID int64) (*entity.TriggerOutcome, error) {
			gotRequestID = deliverycontext.GetRequestIDFromContext(ctx)

			return &entity.TriggerOutcome{AlarmID: alarmID}, nil
		})

	s := newAlarmSubscriber(&fakeReceiver{}, alarmUC, discardLogger())
	msg := &pubsub.Message{
		Data:       []byte(`{"alarm_id":1000,"request_id":"from-payload"}`),
		Attributes: map[string]string{"request_id": "from-attribute"},
	}

	require.True(t, s.handle(context.Background(), msg))
	assert.Equal(t, "from-attribute", gotRequestID)
}

func TestAlarmSubscriber_ServeUntilStopped(t *testing.T) {
	alarmUC := mockUsecase.NewMockAlarmUsecase(t)
	handled := make(chan int64, 1)
	alarmUC.EXPECT().HandleTrigger(mock.Anything, int64(1001)).
		RunAndReturn(func(_ context.Context, alarmID int64) (*entity.TriggerOutcome, error) {
			handled <- alarmID

			return &entity.TriggerOutcome{AlarmID: alarmID, Found: true}, nil
		})

	r := &fakeReceiver{messages: []*pubsub.Message{{Data: []byte(`{"alarm_id":1001}`)}}}
	s := newAlarmSubscriber(r, alarmUC, discardLogger())

	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	select {
	case id := <-handled:
		assert.Equal(t, int64(1001), id)
	case <-time.After(2 * time.Second):
		t.Fatal("alarm was not handled")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.stop(ctx))
	assert.NoError(t, <-served)
}

func TestAlarmSubscriber_StopBeforeServe(t *testing.T) {
	s := newAlarmSubscriber(&fakeReceiver{}, mockUsecase.NewMockAlarmUsecase(t), discardLogger())

	require.NoError(t, s.stop(context.Background()))
	assert.NoError(t, s.Serve(context.Background()))
}

func TestNewSubscriber_DisabledWithoutSubscription(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	d, err := NewSubscriber(Params{
		Lc:      lc,
		Ctx:     context.Background(),
		Cfg:     &config.Config{},
		Logger:  discardLogger(),
		AlarmUC: mockUsecase.NewMockAlarmUsecase(t),
	})
	require.NoError(t, err)
	assert.IsType(t, disabledSubscriber{}, d)
	assert.NoError(t, d.Serve(context.Background()))
}
