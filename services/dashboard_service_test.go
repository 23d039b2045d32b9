package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/AnoopG7/Day-Tracker-sub001/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func testDate() time.Time         { return time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC) }

func TestDeriveMinutes(t *testing.T) {
	tests := []struct {
		name     string
		start    *string
		end      *string
		duration *int
		want     int
	}{
		{name: "explicit duration", duration: intPtr(60), want: 60},
		{name: "duration wins over times", start: strPtr("10:00"), end: strPtr("12:00"), duration: intPtr(30), want: 30},
		{name: "derived from times", start: strPtr("10:00"), end: strPtr("12:00"), want: 120},
		{name: "same start and end", start: strPtr("08:15"), end: strPtr("08:15"), want: 0},
		{name: "end before start clamps to zero", start: strPtr("23:30"), end: strPtr("00:30"), want: 0},
		{name: "negative duration clamps to zero", duration: intPtr(-10), want: 0},
		{name: "nothing set", want: 0},
		{name: "only start", start: strPtr("10:00"), want: 0},
		{name: "unparseable time", start: strPtr("10:00"), end: strPtr("nope"), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveMinutes(tt.start, tt.end, tt.duration))
		})
	}
}

func TestComputeDashboardMissingMacrosCountAsZero(t *testing.T) {
	nutrition := []models.NutritionEntry{
		{MealType: models.MealBreakfast, FoodName: "oats", Calories: floatPtr(300)},
		{MealType: models.MealBreakfast, FoodName: "water"},
	}

	out := ComputeDashboard("2025-03-14", nil, nil, nutrition, nil)

	assert.Equal(t, 300.0, out.Nutrition.Totals.Calories)
	assert.Equal(t, 0.0, out.Nutrition.Totals.Protein)
	assert.Equal(t, 2, out.Nutrition.ByMeal[models.MealBreakfast].Count)
	assert.Equal(t, 300.0, out.Nutrition.ByMeal[models.MealBreakfast].Calories)
}

func TestComputeDashboardActivityMinutes(t *testing.T) {
	activities := []models.CustomActivityInstance{
		{Name: "reading", Duration: intPtr(60)},
		{Name: "coding", Duration: intPtr(60)},
	}

	out := ComputeDashboard("2025-03-14", nil, activities, nil, nil)
	assert.Equal(t, 120, out.Activities.TotalMinutes)
	assert.Equal(t, 2, out.Activities.Count)
}

func TestComputeDashboardFullDay(t *testing.T) {
	dayLog := &models.DayLog{
		UserID:   1,
		Date:     testDate(),
		Sleep:    models.ActivityEntry{Duration: intPtr(480)},
		Exercise: models.ActivityEntry{Duration: intPtr(45)},
	}
	activities := []models.CustomActivityInstance{
		{Name: "reading", Duration: intPtr(60)},
		{Name: "coding", Duration: intPtr(120)},
	}
	nutrition := []models.NutritionEntry{
		{MealType: models.MealBreakfast, FoodName: "poha", Calories: floatPtr(300)},
	}
	expenses := []models.ExpenseEntry{
		{Category: models.ExpenseFood, Description: "lunch", Amount: decimal.NewFromInt(250)},
	}

	out := ComputeDashboard("2025-03-14", dayLog, activities, nutrition, expenses)

	assert.Equal(t, "2025-03-14", out.Date)
	require.NotNil(t, out.DayLog)
	assert.Equal(t, 180, out.Activities.TotalMinutes)
	assert.Equal(t, 300.0, out.Nutrition.Totals.Calories)
	assert.Equal(t, 1, out.Nutrition.Count)
	assert.Equal(t, 1, out.Nutrition.ByMeal[models.MealBreakfast].Count)
	assert.True(t, out.Expenses.Total.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 1, out.Expenses.Count)
	assert.Equal(t, 1, out.Expenses.ByCategory[models.ExpenseFood].Count)
	assert.True(t, out.Expenses.ByCategory[models.ExpenseFood].Amount.Equal(decimal.NewFromInt(250)))
}

func TestComputeDashboardEmptyDay(t *testing.T) {
	out := ComputeDashboard("2025-03-14", nil, nil, nil, nil)

	assert.Nil(t, out.DayLog)
	assert.Equal(t, 0, out.Activities.Count)
	assert.Equal(t, 0, out.Activities.TotalMinutes)
	assert.Equal(t, 0, out.Nutrition.Count)
	assert.Equal(t, NutritionTotals{}, out.Nutrition.Totals)
	assert.Empty(t, out.Nutrition.ByMeal)
	assert.Equal(t, 0, out.Expenses.Count)
	assert.True(t, out.Expenses.Total.IsZero())
	assert.Empty(t, out.Expenses.ByCategory)
}

func TestComputeDashboardUnknownBucketKeysPassThrough(t *testing.T) {
	nutrition := []models.NutritionEntry{
		{MealType: "brunch", FoodName: "pancakes", Calories: floatPtr(500)},
	}
	expenses := []models.ExpenseEntry{
		{Category: "mystery", Description: "?", Amount: decimal.NewFromInt(10)},
	}

	out := ComputeDashboard("2025-03-14", nil, nil, nutrition, expenses)

	assert.Equal(t, 1, out.Nutrition.ByMeal["brunch"].Count)
	assert.Equal(t, 1, out.Expenses.ByCategory["mystery"].Count)
}

func TestComputeDashboardIdempotent(t *testing.T) {
	activities := []models.CustomActivityInstance{
		{Name: "walk", StartTime: strPtr("07:00"), EndTime: strPtr("07:45")},
	}
	nutrition := []models.NutritionEntry{
		{MealType: models.MealDinner, FoodName: "dal", Calories: floatPtr(400), Protein: floatPtr(20)},
	}
	expenses := []models.ExpenseEntry{
		{Category: models.ExpenseTransport, Description: "metro", Amount: decimal.NewFromFloat(32.50)},
	}

	first := ComputeDashboard("2025-03-14", nil, activities, nutrition, expenses)
	second := ComputeDashboard("2025-03-14", nil, activities, nutrition, expenses)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.Equal(t, 45, first.Activities.TotalMinutes)
}
