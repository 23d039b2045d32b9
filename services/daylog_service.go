package services

import (
	"context"
	"errors"
	"time"

	"github.com/AnoopG7/Day-Tracker-sub001/models"
	"github.com/AnoopG7/Day-Tracker-sub001/validation"

	"gorm.io/gorm"
)

type DayLogService struct {
	db *gorm.DB
}

func NewDayLogService(db *gorm.DB) *DayLogService { return &DayLogService{db: db} }

// DayLogInput is the write payload for a day's log. Both slots may be empty;
// sleep and exercise are often filled in at different times of day.
type DayLogInput struct {
	Sleep    models.ActivityEntry
	Exercise models.ActivityEntry
	Notes    string
}

// Upsert creates or updates the single DayLog row for (user, date). The
// unique index guards the one-per-day invariant; a losing concurrent creator
// gets ErrConflict rather than a second row.
func (s *DayLogService) Upsert(ctx context.Context, userID uint, date time.Time, in DayLogInput) (*models.DayLog, error) {
	var res validation.Result
	for _, slot := range []struct {
		name  string
		entry models.ActivityEntry
	}{{"sleep", in.Sleep}, {"exercise", in.Exercise}} {
		slotRes := validation.ValidateTiming(validation.Timing{
			StartTime: slot.entry.StartTime,
			EndTime:   slot.entry.EndTime,
			Duration:  slot.entry.Duration,
		}, true)
		for _, fe := range slotRes.Errors {
			res.Errors = append(res.Errors, validation.FieldError{
				Field:   slot.name + "." + fe.Field,
				Message: fe.Message,
			})
		}
	}
	if !res.OK() {
		return nil, &ValidationError{Result: res}
	}

	var log models.DayLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log = models.DayLog{
			UserID:   userID,
			Date:     date,
			Sleep:    in.Sleep,
			Exercise: in.Exercise,
			Notes:    in.Notes,
		}
		if err := s.db.WithContext(ctx).Create(&log).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrConflict
			}
			return nil, err
		}
		return &log, nil
	case err != nil:
		return nil, err
	}

	// Save, not struct-Assign: clearing a slot back to empty must persist.
	log.Sleep = in.Sleep
	log.Exercise = in.Exercise
	log.Notes = in.Notes
	if err := s.db.WithContext(ctx).Save(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// Get returns the DayLog for (user, date) or ErrNotFound.
func (s *DayLogService) Get(ctx context.Context, userID uint, date time.Time) (*models.DayLog, error) {
	var log models.DayLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// Delete removes the DayLog for (user, date).
func (s *DayLogService) Delete(ctx context.Context, userID uint, date time.Time) error {
	// Hard delete: a soft-deleted row would keep holding the (user, date)
	// unique index slot and block re-logging the day.
	tx := s.db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&models.DayLog{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
