package services

import (
	"context"
	"math"
	"time"

	"github.com/AnoopG7/Day-Tracker-sub001/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TrendsService struct {
	db *gorm.DB
}

func NewTrendsService(db *gorm.DB) *TrendsService { return &TrendsService{db: db} }

// ---------- Summary ----------

// DayTotals is one day's row in a trends summary.
type DayTotals struct {
	Date            string          `json:"date"`
	HasDayLog       bool            `json:"has_daylog"`
	ActivityMinutes int             `json:"activity_minutes"`
	Calories        float64         `json:"calories"`
	ExpenseTotal    decimal.Decimal `json:"expense_total"`
}

// TrendsSummary is the ranged rollup for the trends screen.
type TrendsSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Days []DayTotals `json:"days"`

	Averages struct {
		Calories        float64         `json:"calories"`
		ActivityMinutes float64         `json:"activity_minutes"`
		ExpenseTotal    decimal.Decimal `json:"expense_total"`
	} `json:"averages"`

	Metadata struct {
		DaysCounted        int  `json:"days_counted"`
		IncludeMissingDays bool `json:"include_missing_days"`
	} `json:"metadata"`
}

// Summary fetches the four collections across [from, to] and reduces them to
// per-day totals plus range averages. With includeMissing, days with no data
// appear as zero rows and drag the averages down; without it only logged days
// count.
func (s *TrendsService) Summary(ctx context.Context, userID uint, from, to time.Time, includeMissing bool) (*TrendsSummary, error) {
	logs, acts, nutrition, expenses, err := s.fetchRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return BuildTrendsSummary(from, to, includeMissing, logs, acts, nutrition, expenses), nil
}

// BuildTrendsSummary is the pure reduction behind Summary.
func BuildTrendsSummary(
	from, to time.Time,
	includeMissing bool,
	logs []models.DayLog,
	acts []models.CustomActivityInstance,
	nutrition []models.NutritionEntry,
	expenses []models.ExpenseEntry,
) *TrendsSummary {
	totals := reduceByDay(logs, acts, nutrition, expenses)

	out := &TrendsSummary{}
	out.Range.From = from.Format("2006-01-02")
	out.Range.To = to.Format("2006-01-02")
	out.Metadata.IncludeMissingDays = includeMissing
	out.Averages.ExpenseTotal = decimal.Zero

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		dt, logged := totals[key]
		if !logged {
			if !includeMissing {
				continue
			}
			dt = DayTotals{Date: key, ExpenseTotal: decimal.Zero}
		}
		out.Days = append(out.Days, dt)
	}

	n := len(out.Days)
	out.Metadata.DaysCounted = n
	if n == 0 {
		return out
	}

	var calSum float64
	var minSum int
	expSum := decimal.Zero
	for _, dt := range out.Days {
		calSum += dt.Calories
		minSum += dt.ActivityMinutes
		expSum = expSum.Add(dt.ExpenseTotal)
	}
	out.Averages.Calories = round2(calSum / float64(n))
	out.Averages.ActivityMinutes = round2(float64(minSum) / float64(n))
	out.Averages.ExpenseTotal = expSum.Div(decimal.NewFromInt(int64(n))).Round(2)
	return out
}

// ---------- Calendar ----------

// CalendarDay marks what kinds of records exist on one day of the month.
type CalendarDay struct {
	Date            string `json:"date"`
	HasDayLog       bool   `json:"has_daylog"`
	HasActivities   bool   `json:"has_activities"`
	HasNutrition    bool   `json:"has_nutrition"`
	HasExpenses     bool   `json:"has_expenses"`
	ActivityMinutes int    `json:"activity_minutes"`
}

// CalendarMonth is the month view: one entry per calendar day.
type CalendarMonth struct {
	Month string        `json:"month"` // YYYY-MM
	Days  []CalendarDay `json:"days"`
}

// Calendar returns record markers for every day of the month containing ref.
func (s *TrendsService) Calendar(ctx context.Context, userID uint, ref time.Time) (*CalendarMonth, error) {
	from := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	logs, acts, nutrition, expenses, err := s.fetchRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return BuildCalendarMonth(from, logs, acts, nutrition, expenses), nil
}

// BuildCalendarMonth is the pure reduction behind Calendar. monthStart must
// be the first of the month.
func BuildCalendarMonth(
	monthStart time.Time,
	logs []models.DayLog,
	acts []models.CustomActivityInstance,
	nutrition []models.NutritionEntry,
	expenses []models.ExpenseEntry,
) *CalendarMonth {
	logDays := map[string]bool{}
	for _, l := range logs {
		logDays[l.Date.Format("2006-01-02")] = true
	}
	actMinutes := map[string]int{}
	actDays := map[string]bool{}
	for _, a := range acts {
		key := a.Date.Format("2006-01-02")
		actDays[key] = true
		actMinutes[key] += DeriveMinutes(a.StartTime, a.EndTime, a.Duration)
	}
	nutDays := map[string]bool{}
	for _, n := range nutrition {
		nutDays[n.Date.Format("2006-01-02")] = true
	}
	expDays := map[string]bool{}
	for _, e := range expenses {
		expDays[e.Date.Format("2006-01-02")] = true
	}

	out := &CalendarMonth{Month: monthStart.Format("2006-01")}
	end := monthStart.AddDate(0, 1, 0)
	for d := monthStart; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		out.Days = append(out.Days, CalendarDay{
			Date:            key,
			HasDayLog:       logDays[key],
			HasActivities:   actDays[key],
			HasNutrition:    nutDays[key],
			HasExpenses:     expDays[key],
			ActivityMinutes: actMinutes[key],
		})
	}
	return out
}

// ---------- internals ----------

func (s *TrendsService) fetchRange(ctx context.Context, userID uint, from, to time.Time) (
	[]models.DayLog, []models.CustomActivityInstance, []models.NutritionEntry, []models.ExpenseEntry, error,
) {
	var logs []models.DayLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Find(&logs).Error; err != nil {
		return nil, nil, nil, nil, err
	}
	var acts []models.CustomActivityInstance
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Find(&acts).Error; err != nil {
		return nil, nil, nil, nil, err
	}
	var nutrition []models.NutritionEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Find(&nutrition).Error; err != nil {
		return nil, nil, nil, nil, err
	}
	var expenses []models.ExpenseEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Find(&expenses).Error; err != nil {
		return nil, nil, nil, nil, err
	}
	return logs, acts, nutrition, expenses, nil
}

func reduceByDay(
	logs []models.DayLog,
	acts []models.CustomActivityInstance,
	nutrition []models.NutritionEntry,
	expenses []models.ExpenseEntry,
) map[string]DayTotals {
	totals := map[string]DayTotals{}
	get := func(key string) DayTotals {
		if dt, ok := totals[key]; ok {
			return dt
		}
		return DayTotals{Date: key, ExpenseTotal: decimal.Zero}
	}

	for _, l := range logs {
		key := l.Date.Format("2006-01-02")
		dt := get(key)
		dt.HasDayLog = true
		totals[key] = dt
	}
	for _, a := range acts {
		key := a.Date.Format("2006-01-02")
		dt := get(key)
		dt.ActivityMinutes += DeriveMinutes(a.StartTime, a.EndTime, a.Duration)
		totals[key] = dt
	}
	for _, n := range nutrition {
		key := n.Date.Format("2006-01-02")
		dt := get(key)
		dt.Calories += deref(n.Calories)
		totals[key] = dt
	}
	for _, e := range expenses {
		key := e.Date.Format("2006-01-02")
		dt := get(key)
		dt.ExpenseTotal = dt.ExpenseTotal.Add(e.Amount)
		totals[key] = dt
	}
	return totals
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
