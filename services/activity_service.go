package services

import (
	"context"
	"errors"
	"time"

	"github.com/AnoopG7/Day-Tracker-sub001/models"
	"github.com/AnoopG7/Day-Tracker-sub001/validation"

	"gorm.io/gorm"
)

type ActivityService struct {
	db    *gorm.DB
	rules validation.Rules
}

func NewActivityService(db *gorm.DB, rules validation.Rules) *ActivityService {
	return &ActivityService{db: db, rules: rules}
}

// ActivityInput is the write payload for a custom activity instance.
type ActivityInput struct {
	Name      string
	StartTime *string
	EndTime   *string
	Duration  *int
	Notes     string
}

func (s *ActivityService) validate(ctx context.Context, userID uint, date time.Time, in ActivityInput, excludeID uint) error {
	res := validation.ValidateTiming(validation.Timing{
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Duration:  in.Duration,
	}, false)

	// Advisory duplicate check only; the (user, date, name) unique index has
	// the final say under concurrent writes.
	var existing []string
	q := s.db.WithContext(ctx).
		Model(&models.CustomActivityInstance{}).
		Where("user_id = ? AND date = ?", userID, date)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Pluck("name", &existing).Error; err != nil {
		return err
	}
	nameRes := s.rules.ValidateName(in.Name, existing)
	res.Errors = append(res.Errors, nameRes.Errors...)

	if !res.OK() {
		return &ValidationError{Result: res}
	}
	return nil
}

// Create logs a new activity for (user, date). Duplicate names on the same
// day come back as ErrConflict.
func (s *ActivityService) Create(ctx context.Context, userID uint, date time.Time, in ActivityInput) (*models.CustomActivityInstance, error) {
	if err := s.validate(ctx, userID, date, in, 0); err != nil {
		return nil, err
	}

	act := models.CustomActivityInstance{
		UserID:    userID,
		Date:      date,
		Name:      validation.NormalizeName(in.Name),
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Duration:  in.Duration,
		Notes:     in.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&act).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &act, nil
}

// Update rewrites an existing instance owned by userID.
func (s *ActivityService) Update(ctx context.Context, userID, id uint, in ActivityInput) (*models.CustomActivityInstance, error) {
	var act models.CustomActivityInstance
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&act).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.validate(ctx, userID, act.Date, in, act.ID); err != nil {
		return nil, err
	}

	act.Name = validation.NormalizeName(in.Name)
	act.StartTime = in.StartTime
	act.EndTime = in.EndTime
	act.Duration = in.Duration
	act.Notes = in.Notes
	if err := s.db.WithContext(ctx).Save(&act).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &act, nil
}

// List returns the user's activities for one date, oldest first.
func (s *ActivityService) List(ctx context.Context, userID uint, date time.Time) ([]models.CustomActivityInstance, error) {
	var acts []models.CustomActivityInstance
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&acts).Error
	return acts, err
}

// Delete removes one instance owned by userID.
func (s *ActivityService) Delete(ctx context.Context, userID, id uint) error {
	// Hard delete, so the (user, date, name) index slot frees up immediately.
	tx := s.db.WithContext(ctx).Unscoped().
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CustomActivityInstance{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
