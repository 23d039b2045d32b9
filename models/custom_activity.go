package models

import (
	"time"

	"gorm.io/gorm"
)

// CustomActivityInstance is a user-named activity logged against one date.
// Name is stored normalized (trimmed, lowercased). Unlike DayLog's embedded
// slots, an instance must carry timing: duration or a start/end pair.
type CustomActivityInstance struct {
	gorm.Model
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_activity_user_date_name" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_activity_user_date_name" json:"date"`
	Name      string    `gorm:"size:50;not null;uniqueIndex:uidx_activity_user_date_name" json:"name"`
	StartTime *string   `json:"start_time,omitempty"`
	EndTime   *string   `json:"end_time,omitempty"`
	Duration  *int      `json:"duration,omitempty"` // minutes
	Notes     string    `gorm:"size:500" json:"notes,omitempty"`
}
