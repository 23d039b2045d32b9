package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealTypes lists the accepted meal types for a NutritionEntry.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

const (
	SourceManual    = "manual"
	SourceEstimated = "estimated"
)

// NutritionEntry is one logged food item for a user, date and meal.
// Macro fields are pointers: a nil macro means "not tracked", which the
// dashboard reducer sums as zero.
type NutritionEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Date     time.Time `gorm:"type:date;index;not null" json:"date"`
	MealType string    `gorm:"size:20;not null" json:"meal_type"`
	FoodName string    `gorm:"size:100;not null" json:"food_name"`
	Calories *float64  `json:"calories,omitempty"`
	Protein  *float64  `json:"protein,omitempty"`
	Carbs    *float64  `json:"carbs,omitempty"`
	Fats     *float64  `json:"fats,omitempty"`
	Fiber    *float64  `json:"fiber,omitempty"`
	Source   string    `gorm:"size:20;default:manual" json:"source"`
	Notes    string    `gorm:"size:500" json:"notes,omitempty"`
}
