package database

import (
	"context"

	"trainbook/internal/domain/daterule"
	"trainbook/internal/domain/entity"
	"trainbook/internal/domain/repository"
	"trainbook/internal/infra/persistence/model"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reminderRepository implements the repository.ReminderRepository interface.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

// Create inserts an untriggered reminder due ReminderOffsetDays before eventDate.
func (repo *reminderRepository) Create(ctx context.Context, eventDate civil.Date, note string, alarmID int64) (int64, error) {
	reminderM := &model.ReminderModel{
		EventDate:    eventDate.String(),
		ReminderDate: daterule.ReminderDateFor(eventDate).String(),
		ReminderTime: daterule.FormatTimeOfDay(daterule.DefaultReminderTime),
		Note:         note,
		AlarmID:      alarmID,
		IsTriggered:  false,
	}

	if err := repo.db.WithContext(ctx).Create(reminderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return 0, repository.ErrDuplicateAlarmID
		}

		return 0, errors.Wrap(err, "failed to create reminder")
	}

	return reminderM.ID, nil
}

// FindByID retrieves a reminder by its id.
func (repo *reminderRepository) FindByID(ctx context.Context, id int64) (*entity.Reminder, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByAlarmID retrieves a reminder by the alarm id it was scheduled with.
func (repo *reminderRepository) FindByAlarmID(ctx context.Context, alarmID int64) (*entity.Reminder, error) {
	return repo.findOne(ctx, "alarm_id = ?", alarmID)
}

func (repo *reminderRepository) findOne(ctx context.Context, query string, arg int64) (*entity.Reminder, error) {
	var reminderM model.ReminderModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&reminderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReminderNotFound
		}

		return nil, errors.Wrap(err, "failed to find reminder")
	}

	return toReminderDomain(&reminderM)
}

// ListAll returns every reminder, soonest event first.
func (repo *reminderRepository) ListAll(ctx context.Context) ([]*entity.Reminder, error) {
	var reminderModels []*model.ReminderModel

	if err := repo.db.WithContext(ctx).
		Order("event_date ASC").
		Order("id ASC").
		Find(&reminderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reminders")
	}

	return toReminderDomains(reminderModels)
}

// ListPending returns the reminders whose alarm has not fired, soonest alarm first.
func (repo *reminderRepository) ListPending(ctx context.Context) ([]*entity.Reminder, error) {
	var reminderModels []*model.ReminderModel

	if err := repo.db.WithContext(ctx).
		Where("is_triggered = ?", false).
		Order("reminder_date ASC").
		Order("id ASC").
		Find(&reminderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending reminders")
	}

	return toReminderDomains(reminderModels)
}

// MarkTriggered sets is_triggered on the reminder with alarmID. Marking twice is not an error.
func (repo *reminderRepository) MarkTriggered(ctx context.Context, alarmID int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ReminderModel{}).
		Where("alarm_id = ?", alarmID).
		Update("is_triggered", true)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark reminder triggered")
	}

	// Both dialects count matched rows, so zero means the alarm id is unknown.
	return result.RowsAffected > 0, nil
}

// Delete removes the reminder with id.
func (repo *reminderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReminderModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete reminder")
	}

	return result.RowsAffected > 0, nil
}

// Mapper functions

func toReminderDomains(reminderModels []*model.ReminderModel) ([]*entity.Reminder, error) {
	reminders := make([]*entity.Reminder, 0, len(reminderModels))
	for _, reminderM := range reminderModels {
		reminder, err := toReminderDomain(reminderM)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}

	return reminders, nil
}

func toReminderDomain(data *model.ReminderModel) (*entity.Reminder, error) {
	if data == nil {
		return nil, nil
	}

	eventDate, err := civil.ParseDate(data.EventDate)
	if err != nil {
		return nil, errors.Wrapf(err, "reminder %d has a malformed event date", data.ID)
	}

	reminderDate, err := civil.ParseDate(data.ReminderDate)
	if err != nil {
		return nil, errors.Wrapf(err, "reminder %d has a malformed reminder date", data.ID)
	}

	reminderTime, err := daterule.ParseTimeOfDay(data.ReminderTime)
	if err != nil {
		return nil, errors.Wrapf(err, "reminder %d has a malformed reminder time", data.ID)
	}

	return &entity.Reminder{
		ID:           data.ID,
		EventDate:    eventDate,
		ReminderDate: reminderDate,
		ReminderTime: reminderTime,
		Note:         data.Note,
		AlarmID:      data.AlarmID,
		IsTriggered:  data.IsTriggered,
		CreatedAt:    data.CreatedAt,
	}, nil
}
