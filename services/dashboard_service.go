package services

import (
	"context"
	"errors"
	"time"

	"github.com/AnoopG7/Day-Tracker-sub001/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService { return &DashboardService{db: db} }

// ---------- Aggregate types ----------

// NutritionTotals are the summed macros for a day; entries with a missing
// macro contribute zero to that macro.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
}

// MealBucket is the per-meal-type slice of a day's nutrition.
type MealBucket struct {
	Count    int     `json:"count"`
	Calories float64 `json:"calories"`
}

// CategoryBucket is the per-category slice of a day's spending.
type CategoryBucket struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// DaySummary is the full dashboard payload for one user-date: the raw
// collections plus every derived total.
type DaySummary struct {
	Date   string         `json:"date"`
	DayLog *models.DayLog `json:"daylog"`

	Activities struct {
		Items        []models.CustomActivityInstance `json:"items"`
		Count        int                             `json:"count"`
		TotalMinutes int                             `json:"total_minutes"`
	} `json:"activities"`

	Nutrition struct {
		Entries []models.NutritionEntry `json:"entries"`
		Count   int                     `json:"count"`
		Totals  NutritionTotals         `json:"totals"`
		ByMeal  map[string]MealBucket   `json:"by_meal,omitempty"`
	} `json:"nutrition"`

	Expenses struct {
		Entries    []models.ExpenseEntry     `json:"entries"`
		Count      int                       `json:"count"`
		Total      decimal.Decimal           `json:"total"`
		ByCategory map[string]CategoryBucket `json:"by_category,omitempty"`
	} `json:"expenses"`
}

// ---------- Fetch + reduce ----------

// GetDashboard loads the four per-day collections for (user, date) and
// reduces them into a DaySummary. The four reads are independent; ordering
// between them doesn't matter.
func (s *DashboardService) GetDashboard(ctx context.Context, userID uint, date time.Time) (*DaySummary, error) {
	var dayLog *models.DayLog
	var log models.DayLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	switch {
	case err == nil:
		dayLog = &log
	case errors.Is(err, gorm.ErrRecordNotFound):
		dayLog = nil
	default:
		return nil, err
	}

	var activities []models.CustomActivityInstance
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&activities).Error; err != nil {
		return nil, err
	}

	var nutrition []models.NutritionEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&nutrition).Error; err != nil {
		return nil, err
	}

	var expenses []models.ExpenseEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}

	return ComputeDashboard(date.Format("2006-01-02"), dayLog, activities, nutrition, expenses), nil
}

// ComputeDashboard reduces the already-fetched collections for one user-date
// into a DaySummary. Pure: no I/O, no shared state, identical input gives
// identical output. Bucket keys are taken from the rows as-is; enum checking
// happened at write time.
func ComputeDashboard(
	date string,
	dayLog *models.DayLog,
	activities []models.CustomActivityInstance,
	nutrition []models.NutritionEntry,
	expenses []models.ExpenseEntry,
) *DaySummary {
	out := &DaySummary{Date: date, DayLog: dayLog}

	out.Activities.Items = activities
	out.Activities.Count = len(activities)
	for _, act := range activities {
		out.Activities.TotalMinutes += DeriveMinutes(act.StartTime, act.EndTime, act.Duration)
	}

	out.Nutrition.Entries = nutrition
	out.Nutrition.Count = len(nutrition)
	for _, n := range nutrition {
		out.Nutrition.Totals.Calories += deref(n.Calories)
		out.Nutrition.Totals.Protein += deref(n.Protein)
		out.Nutrition.Totals.Carbs += deref(n.Carbs)
		out.Nutrition.Totals.Fats += deref(n.Fats)
		out.Nutrition.Totals.Fiber += deref(n.Fiber)

		if out.Nutrition.ByMeal == nil {
			out.Nutrition.ByMeal = make(map[string]MealBucket)
		}
		b := out.Nutrition.ByMeal[n.MealType]
		b.Count++
		b.Calories += deref(n.Calories)
		out.Nutrition.ByMeal[n.MealType] = b
	}

	out.Expenses.Entries = expenses
	out.Expenses.Count = len(expenses)
	for _, e := range expenses {
		out.Expenses.Total = out.Expenses.Total.Add(e.Amount)

		if out.Expenses.ByCategory == nil {
			out.Expenses.ByCategory = make(map[string]CategoryBucket)
		}
		b := out.Expenses.ByCategory[e.Category]
		b.Count++
		b.Amount = b.Amount.Add(e.Amount)
		out.Expenses.ByCategory[e.Category] = b
	}

	return out
}

// DeriveMinutes resolves an activity's length: an explicit duration wins,
// else a start/end pair becomes end minus start in minutes-of-day. A span
// that ends before it starts clamps to 0 — never negative. Overnight spans
// are not wrapped around midnight.
func DeriveMinutes(start, end *string, duration *int) int {
	if duration != nil {
		if *duration < 0 {
			return 0
		}
		return *duration
	}
	if start == nil || end == nil {
		return 0
	}
	s, err := minutesOfDay(*start)
	if err != nil {
		return 0
	}
	e, err := minutesOfDay(*end)
	if err != nil {
		return 0
	}
	if e < s {
		return 0
	}
	return e - s
}

func minutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
