package services

import (
	"testing"
	"time"

	"github.com/AnoopG7/Day-Tracker-sub001/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }

func TestBuildTrendsSummary(t *testing.T) {
	logs := []models.DayLog{{UserID: 1, Date: day(1)}}
	acts := []models.CustomActivityInstance{
		{Date: day(1), Name: "yoga", Duration: intPtr(30)},
		{Date: day(2), Name: "walk", StartTime: strPtr("07:00"), EndTime: strPtr("08:00")},
	}
	nutrition := []models.NutritionEntry{
		{Date: day(1), MealType: models.MealLunch, FoodName: "rice", Calories: floatPtr(600)},
		{Date: day(2), MealType: models.MealDinner, FoodName: "soup", Calories: floatPtr(200)},
	}
	expenses := []models.ExpenseEntry{
		{Date: day(2), Category: models.ExpenseFood, Description: "groceries", Amount: decimal.NewFromInt(500)},
	}

	out := BuildTrendsSummary(day(1), day(4), false, logs, acts, nutrition, expenses)

	// Days 3 and 4 have no records and are skipped without includeMissing.
	require.Len(t, out.Days, 2)
	assert.Equal(t, 2, out.Metadata.DaysCounted)

	assert.Equal(t, "2025-03-01", out.Days[0].Date)
	assert.True(t, out.Days[0].HasDayLog)
	assert.Equal(t, 30, out.Days[0].ActivityMinutes)
	assert.Equal(t, 600.0, out.Days[0].Calories)
	assert.True(t, out.Days[0].ExpenseTotal.IsZero())

	assert.Equal(t, "2025-03-02", out.Days[1].Date)
	assert.False(t, out.Days[1].HasDayLog)
	assert.Equal(t, 60, out.Days[1].ActivityMinutes)
	assert.True(t, out.Days[1].ExpenseTotal.Equal(decimal.NewFromInt(500)))

	assert.Equal(t, 400.0, out.Averages.Calories)
	assert.Equal(t, 45.0, out.Averages.ActivityMinutes)
	assert.True(t, out.Averages.ExpenseTotal.Equal(decimal.NewFromInt(250)))
}

func TestBuildTrendsSummaryIncludeMissingDays(t *testing.T) {
	nutrition := []models.NutritionEntry{
		{Date: day(1), MealType: models.MealLunch, FoodName: "rice", Calories: floatPtr(800)},
	}

	out := BuildTrendsSummary(day(1), day(4), true, nil, nil, nutrition, nil)

	require.Len(t, out.Days, 4)
	assert.Equal(t, 4, out.Metadata.DaysCounted)
	assert.Equal(t, 200.0, out.Averages.Calories)
	assert.Equal(t, "2025-03-03", out.Days[2].Date)
	assert.Equal(t, 0.0, out.Days[2].Calories)
}

func TestBuildTrendsSummaryEmptyRange(t *testing.T) {
	out := BuildTrendsSummary(day(1), day(3), false, nil, nil, nil, nil)

	assert.Empty(t, out.Days)
	assert.Equal(t, 0, out.Metadata.DaysCounted)
	assert.Equal(t, 0.0, out.Averages.Calories)
	assert.True(t, out.Averages.ExpenseTotal.IsZero())
}

func TestBuildCalendarMonth(t *testing.T) {
	logs := []models.DayLog{{Date: day(5)}}
	acts := []models.CustomActivityInstance{
		{Date: day(5), Name: "yoga", Duration: intPtr(45)},
		{Date: day(5), Name: "reading", Duration: intPtr(15)},
	}
	expenses := []models.ExpenseEntry{
		{Date: day(12), Category: models.ExpenseBills, Description: "rent", Amount: decimal.NewFromInt(15000)},
	}

	out := BuildCalendarMonth(day(1), logs, acts, nil, expenses)

	assert.Equal(t, "2025-03", out.Month)
	require.Len(t, out.Days, 31)

	fifth := out.Days[4]
	assert.Equal(t, "2025-03-05", fifth.Date)
	assert.True(t, fifth.HasDayLog)
	assert.True(t, fifth.HasActivities)
	assert.False(t, fifth.HasNutrition)
	assert.Equal(t, 60, fifth.ActivityMinutes)

	twelfth := out.Days[11]
	assert.True(t, twelfth.HasExpenses)
	assert.False(t, twelfth.HasDayLog)
	assert.Equal(t, 0, twelfth.ActivityMinutes)
}
