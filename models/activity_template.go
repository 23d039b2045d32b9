package models

import (
	"gorm.io/gorm"
)

const (
	TemplateCategoryFitness  = "fitness"
	TemplateCategoryLearning = "learning"
	TemplateCategoryLeisure  = "leisure"
	TemplateCategoryChores   = "chores"
	TemplateCategoryWork     = "work"
	TemplateCategorySocial   = "social"
	TemplateCategoryOther    = "other"
)

// TemplateCategories lists the accepted ActivityTemplate categories.
var TemplateCategories = []string{
	TemplateCategoryFitness,
	TemplateCategoryLearning,
	TemplateCategoryLeisure,
	TemplateCategoryChores,
	TemplateCategoryWork,
	TemplateCategorySocial,
	TemplateCategoryOther,
}

// ActivityTemplate is a reusable catalog entry a user logs activities against.
// Soft-deleted via IsActive so past instances keep their context.
type ActivityTemplate struct {
	gorm.Model
	UserID          uint    `gorm:"not null;uniqueIndex:uidx_template_user_name" json:"user_id"`
	Name            string  `gorm:"size:50;not null;uniqueIndex:uidx_template_user_name" json:"name"`
	Category        string  `gorm:"size:20;not null" json:"category"`
	Icon            *string `json:"icon,omitempty"`
	DefaultDuration *int    `json:"default_duration,omitempty"` // minutes, 1-1440
	IsActive        bool    `gorm:"default:true" json:"is_active"`
}
