package model

// AlarmSequenceName is the row of 'alarm_sequence' that hands out alarm ids.
const AlarmSequenceName = "alarm_id"

// AlarmSequenceModel is a named monotonic counter.
type AlarmSequenceModel struct {
	Name  string `gorm:"type:varchar(32);primaryKey"`
	Value int64  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AlarmSequenceModel) TableName() string {
	return "alarm_sequence"
}
