package services

import (
	"context"
	"errors"

	"github.com/AnoopG7/Day-Tracker-sub001/models"
	"github.com/AnoopG7/Day-Tracker-sub001/validation"

	"gorm.io/gorm"
)

type TemplateService struct {
	db    *gorm.DB
	rules validation.Rules
}

func NewTemplateService(db *gorm.DB, rules validation.Rules) *TemplateService {
	return &TemplateService{db: db, rules: rules}
}

// TemplateInput is the write payload for an activity template.
type TemplateInput struct {
	Name            string
	Category        string
	Icon            *string
	DefaultDuration *int
}

func (s *TemplateService) validate(ctx context.Context, userID uint, in TemplateInput, excludeID uint) error {
	var existing []string
	q := s.db.WithContext(ctx).
		Model(&models.ActivityTemplate{}).
		Where("user_id = ?", userID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Pluck("name", &existing).Error; err != nil {
		return err
	}

	res := s.rules.ValidateName(in.Name, existing)
	if in.DefaultDuration != nil && (*in.DefaultDuration < 1 || *in.DefaultDuration > 1440) {
		res.Errors = append(res.Errors, validation.FieldError{
			Field:   "default_duration",
			Message: "default duration must be between 1 and 1440 minutes",
		})
	}
	if !res.OK() {
		return &ValidationError{Result: res}
	}
	return nil
}

// Create adds a template to the user's catalog; names are unique per user.
func (s *TemplateService) Create(ctx context.Context, userID uint, in TemplateInput) (*models.ActivityTemplate, error) {
	if err := s.validate(ctx, userID, in, 0); err != nil {
		return nil, err
	}

	tpl := models.ActivityTemplate{
		UserID:          userID,
		Name:            validation.NormalizeName(in.Name),
		Category:        in.Category,
		Icon:            in.Icon,
		DefaultDuration: in.DefaultDuration,
		IsActive:        true,
	}
	if err := s.db.WithContext(ctx).Create(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &tpl, nil
}

// Update rewrites a template owned by userID.
func (s *TemplateService) Update(ctx context.Context, userID, id uint, in TemplateInput) (*models.ActivityTemplate, error) {
	tpl, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, userID, in, tpl.ID); err != nil {
		return nil, err
	}

	tpl.Name = validation.NormalizeName(in.Name)
	tpl.Category = in.Category
	tpl.Icon = in.Icon
	tpl.DefaultDuration = in.DefaultDuration
	if err := s.db.WithContext(ctx).Save(tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return tpl, nil
}

// List returns the user's templates. Inactive ones are included only when
// includeInactive is set; the dashboard's template picker hides them.
func (s *TemplateService) List(ctx context.Context, userID uint, includeInactive bool) ([]models.ActivityTemplate, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var tpls []models.ActivityTemplate
	err := q.Order("name ASC").Find(&tpls).Error
	return tpls, err
}

// Deactivate soft-deletes a template by flipping IsActive off.
func (s *TemplateService) Deactivate(ctx context.Context, userID, id uint) error {
	return s.setActive(ctx, userID, id, false)
}

// Restore reverses a Deactivate.
func (s *TemplateService) Restore(ctx context.Context, userID, id uint) error {
	return s.setActive(ctx, userID, id, true)
}

func (s *TemplateService) setActive(ctx context.Context, userID, id uint, active bool) error {
	tx := s.db.WithContext(ctx).
		Model(&models.ActivityTemplate{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", active)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TemplateService) get(ctx context.Context, userID, id uint) (*models.ActivityTemplate, error) {
	var tpl models.ActivityTemplate
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&tpl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tpl, nil
}
