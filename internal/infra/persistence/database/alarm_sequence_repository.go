package database

import (
	"context"

	"trainbook/internal/domain/repository"
	"trainbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type alarmSequenceRepository struct {
	db *gorm.DB
}

// NewAlarmSequenceRepository is the constructor for alarmSequenceRepository.
func NewAlarmSequenceRepository(db *gorm.DB) repository.AlarmSequenceRepository {
	return &alarmSequenceRepository{
		db: db,
	}
}

// Next advances the persisted counter and returns its new value.
// Ids survive restarts and are never reused, even after the reminder is deleted.
func (repo *alarmSequenceRepository) Next(ctx context.Context) (int64, error) {
	var next int64

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.AlarmSequenceModel{}).
			Where("name = ?", model.AlarmSequenceName).
			Update("value", gorm.Expr("value + 1"))
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to advance alarm sequence")
		}
		if result.RowsAffected == 0 {
			return errors.New("alarm sequence is not initialised")
		}

		var seq model.AlarmSequenceModel
		if err := tx.Where("name = ?", model.AlarmSequenceName).First(&seq).Error; err != nil {
			return errors.Wrap(err, "failed to read alarm sequence")
		}
		next = seq.Value

		return nil
	})
	if err != nil {
		return 0, err
	}

	return next, nil
}
