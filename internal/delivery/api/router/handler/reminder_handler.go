// Package handler contains the echo handlers of the API server.
package handler

import (
	"log/slog"
	"strconv"

	"trainbook/internal/delivery/api/response"
	"trainbook/internal/domain/daterule"
	"trainbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	ReminderUC usecase.ReminderUsecase
	Logger     *slog.Logger
}

// ReminderHandler serves the reminder screen of the app
type ReminderHandler struct {
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
	}
}

// CreateReminderRequest represents the request body for creating a reminder.
// An empty note is rejected by the use case with its own reason code.
type CreateReminderRequest struct {
	EventDate string `json:"event_date" validate:"required"`
	Note      string `json:"note" validate:"max=500"`
}

// CreateReminder handles reminder creation
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	var req CreateReminderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reminder input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	eventDate, err := daterule.ParseDate(req.EventDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.reminderUC.CreateReminder(c.Request().Context(), &usecase.CreateReminderInput{
		EventDate: eventDate,
		Note:      req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, summary)
}

// ListReminders handles the reminder list, soonest journey first
func (h *ReminderHandler) ListReminders(c echo.Context) error {
	reminders, err := h.reminderUC.ListReminders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, reminders)
}

// PreviewReminder handles the date picker preview
func (h *ReminderHandler) PreviewReminder(c echo.Context) error {
	eventDate, err := daterule.ParseDate(c.QueryParam("event_date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	preview, err := h.reminderUC.PreviewReminder(c.Request().Context(), eventDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, preview)
}

// DeleteReminder handles removing a reminder and its alarm
func (h *ReminderHandler) DeleteReminder(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.BadRequest(c, "INVALID_ID", "Invalid reminder ID")
	}

	if err := h.reminderUC.DeleteReminder(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Acknowledge(c, "Reminder deleted")
}
