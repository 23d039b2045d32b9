package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AnoopG7/Day-Tracker-sub001/models"

	"gorm.io/gorm"
)

type NutritionService struct {
	db *gorm.DB
}

func NewNutritionService(db *gorm.DB) *NutritionService { return &NutritionService{db: db} }

// NutritionInput is the write payload for one logged food item. Macro fields
// stay nil when the user didn't track them.
type NutritionInput struct {
	MealType string
	FoodName string
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fats     *float64
	Fiber    *float64
	Source   string
	Notes    string
}

// Create logs a food item for (user, date).
func (s *NutritionService) Create(ctx context.Context, userID uint, date time.Time, in NutritionInput) (*models.NutritionEntry, error) {
	entry := models.NutritionEntry{
		UserID:   userID,
		Date:     date,
		MealType: in.MealType,
		FoodName: normalizeFoodName(in.FoodName),
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
		Fiber:    in.Fiber,
		Source:   in.Source,
		Notes:    in.Notes,
	}
	if entry.Source == "" {
		entry.Source = models.SourceManual
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update rewrites one entry owned by userID.
func (s *NutritionService) Update(ctx context.Context, userID, id uint, in NutritionInput) (*models.NutritionEntry, error) {
	var entry models.NutritionEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entry.MealType = in.MealType
	entry.FoodName = normalizeFoodName(in.FoodName)
	entry.Calories = in.Calories
	entry.Protein = in.Protein
	entry.Carbs = in.Carbs
	entry.Fats = in.Fats
	entry.Fiber = in.Fiber
	if in.Source != "" {
		entry.Source = in.Source
	}
	entry.Notes = in.Notes
	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns the user's nutrition entries for one date, meal order is left
// to the client.
func (s *NutritionService) List(ctx context.Context, userID uint, date time.Time) ([]models.NutritionEntry, error) {
	var entries []models.NutritionEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

// Delete removes one entry owned by userID.
func (s *NutritionService) Delete(ctx context.Context, userID, id uint) error {
	tx := s.db.WithContext(ctx).Unscoped().
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.NutritionEntry{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func normalizeFoodName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
