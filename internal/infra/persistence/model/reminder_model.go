// Package model contains the GORM row structs of the reminder store.
package model

import (
	"time"
)

// ReminderModel is the GORM-specific struct for the 'reminders' table.
// Dates are stored as ISO 8601 text so that they sort chronologically in every dialect.
type ReminderModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	EventDate    string    `gorm:"type:varchar(10);not null"`
	ReminderDate string    `gorm:"type:varchar(10);not null;index"`
	ReminderTime string    `gorm:"type:varchar(5);not null;default:'07:45'"`
	Note         string    `gorm:"type:text"`
	AlarmID      int64     `gorm:"not null;uniqueIndex"`
	IsTriggered  bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (ReminderModel) TableName() string {
	return "reminders"
}
