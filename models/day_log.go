package models

import (
	"time"

	"gorm.io/gorm"
)

// ActivityEntry is the embedded timing block used by DayLog's sleep and
// exercise slots. Either both StartTime and EndTime are set, or Duration is,
// or all three are nil (nothing logged yet). Times are "HH:mm", 24-hour.
type ActivityEntry struct {
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	Duration     *int    `json:"duration,omitempty"` // minutes
	ExerciseType *string `json:"exercise_type,omitempty"`
}

// DayLog is the single per-day record for a user. At most one row per
// (user_id, date); the composite unique index is the source of truth for that.
type DayLog struct {
	gorm.Model
	UserID   uint          `gorm:"not null;uniqueIndex:uidx_daylog_user_date" json:"user_id"`
	Date     time.Time     `gorm:"type:date;not null;uniqueIndex:uidx_daylog_user_date" json:"date"`
	Sleep    ActivityEntry `gorm:"embedded;embeddedPrefix:sleep_" json:"sleep"`
	Exercise ActivityEntry `gorm:"embedded;embeddedPrefix:exercise_" json:"exercise"`
	Notes    string        `gorm:"size:500" json:"notes,omitempty"`
}
