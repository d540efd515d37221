// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"trainbook/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ReminderHandler *handler.ReminderHandler
	AlarmHandler    *handler.AlarmHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	reminderHandler *handler.ReminderHandler
	alarmHandler    *handler.AlarmHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		reminderHandler: params.ReminderHandler,
		alarmHandler:    params.AlarmHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Reminder screen
	reminderGroup := e.Group("/reminders")
	{
		reminderGroup.GET("", r.reminderHandler.ListReminders)
		reminderGroup.POST("", r.reminderHandler.CreateReminder)
		reminderGroup.GET("/preview", r.reminderHandler.PreviewReminder)
		reminderGroup.DELETE("/:id", r.reminderHandler.DeleteReminder)
	}

	// Platform alarm callbacks
	alarmGroup := e.Group("/alarms")
	{
		// Pub/Sub push authenticates with its own OIDC token
		alarmGroup.POST("/push", r.alarmHandler.HandlePush)

		callbackAuth := r.alarmHandler.CallbackAuth()
		alarmGroup.POST("/restore", r.alarmHandler.RestoreAlarms, callbackAuth)
		alarmGroup.POST("/:alarmId/trigger", r.alarmHandler.TriggerAlarm, callbackAuth)
	}
}
