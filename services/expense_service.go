package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AnoopG7/Day-Tracker-sub001/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseService struct {
	db *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService { return &ExpenseService{db: db} }

// ExpenseInput is the write payload for one logged spend.
type ExpenseInput struct {
	Category      string
	Description   string
	Amount        decimal.Decimal
	Currency      string
	PaymentMethod *string
	Merchant      *string
	Source        string
	Notes         string
}

// Create logs an expense for (user, date).
func (s *ExpenseService) Create(ctx context.Context, userID uint, date time.Time, in ExpenseInput) (*models.ExpenseEntry, error) {
	entry := models.ExpenseEntry{
		UserID:        userID,
		Date:          date,
		Category:      in.Category,
		Description:   in.Description,
		Amount:        in.Amount,
		Currency:      in.Currency,
		PaymentMethod: in.PaymentMethod,
		Merchant:      normalizeMerchant(in.Merchant),
		Source:        in.Source,
		Notes:         in.Notes,
	}
	if entry.Currency == "" {
		entry.Currency = "INR"
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
func (s *ExpenseService) Update(ctx context.Context, userID, id uint, in ExpenseInput) (*models.ExpenseEntry, error) {
	var entry models.ExpenseEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entry.Category = in.Category
	entry.Description = in.Description
	entry.Amount = in.Amount
	if in.Currency != "" {
		entry.Currency = in.Currency
	}
	entry.PaymentMethod = in.PaymentMethod
	entry.Merchant = normalizeMerchant(in.Merchant)
	if in.Source != "" {
		entry.Source = in.Source
	}
	entry.Notes = in.Notes
	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns the user's expenses for one date.
func (s *ExpenseService) List(ctx context.Context, userID uint, date time.Time) ([]models.ExpenseEntry, error) {
	var entries []models.ExpenseEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

// Delete removes one entry owned by userID.
func (s *ExpenseService) Delete(ctx context.Context, userID, id uint) error {
	tx := s.db.WithContext(ctx).Unscoped().
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.ExpenseEntry{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func normalizeMerchant(m *string) *string {
	if m == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*m))
	if normalized == "" {
		return nil
	}
	return &normalized
}
