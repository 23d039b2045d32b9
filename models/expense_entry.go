package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ExpenseFood          = "food"
	ExpenseTransport     = "transport"
	ExpenseEntertainment = "entertainment"
	ExpenseShopping      = "shopping"
	ExpenseBills         = "bills"
	ExpenseHealth        = "health"
	ExpenseEducation     = "education"
	ExpenseOther         = "other"
)

// ExpenseCategories lists the accepted expense categories.
var ExpenseCategories = []string{
	ExpenseFood,
	ExpenseTransport,
	ExpenseEntertainment,
	ExpenseShopping,
	ExpenseBills,
	ExpenseHealth,
	ExpenseEducation,
	ExpenseOther,
}

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []string{"cash", "card", "upi", "netbanking", "wallet", "other"}

// ExpenseEntry is one logged spend for a user and date. Amounts are decimal
// columns, never floats.
type ExpenseEntry struct {
	gorm.Model
	UserID        uint            `gorm:"index;not null" json:"user_id"`
	Date          time.Time       `gorm:"type:date;index;not null" json:"date"`
	Category      string          `gorm:"size:20;not null" json:"category"`
	Description   string          `gorm:"size:200;not null" json:"description"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Currency      string          `gorm:"size:8;default:INR" json:"currency"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	Merchant      *string         `json:"merchant,omitempty"`
	Source        string          `gorm:"size:20;default:manual" json:"source"`
	Notes         string          `gorm:"size:500" json:"notes,omitempty"`
}
