package controllers

import (
	"net/http"
	"strconv"

	"github.com/AnoopG7/Day-Tracker-sub001/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ExpenseController struct {
	Svc *services.ExpenseService
	RT  *services.RealtimeHub
}

func NewExpenseController(svc *services.ExpenseService, rt *services.RealtimeHub) *ExpenseController {
	return &ExpenseController{Svc: svc, RT: rt}
}

type expenseInput struct {
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Category      string          `json:"category" binding:"required,oneof=food transport entertainment shopping bills health education other"`
	Description   string          `json:"description" binding:"required,max=200"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Currency      string          `json:"currency" binding:"omitempty,len=3"`
	PaymentMethod *string         `json:"payment_method" binding:"omitempty,oneof=cash card upi netbanking wallet other"`
	Merchant      *string         `json:"merchant" binding:"omitempty,max=100"`
	Source        string          `json:"source" binding:"omitempty,oneof=manual imported"`
	Notes         string          `json:"notes" binding:"omitempty,max=500"`
}

func (in expenseInput) toService() services.ExpenseInput {
	return services.ExpenseInput{
		Category:      in.Category,
		Description:   in.Description,
		Amount:        in.Amount,
		Currency:      in.Currency,
		PaymentMethod: in.PaymentMethod,
		Merchant:      in.Merchant,
		Source:        in.Source,
		Notes:         in.Notes,
	}
}

func (h *ExpenseController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, err := parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	entries, err := h.Svc.List(c.Request.Context(), userID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ExpenseController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body expenseInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
		return
	}
	date, err := parseDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	entry, err := h.Svc.Create(c.Request.Context(), userID, date, body.toService())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.RT.BroadcastDayUpdated(userID, date.Format("2006-01-02"))
	c.JSON(http.StatusCreated, entry)
}

func (h *ExpenseController) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var body expenseInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
		return
	}

	entry, err := h.Svc.Update(c.Request.Context(), userID, uint(id), body.toService())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.RT.BroadcastDayUpdated(userID, entry.Date.Format("2006-01-02"))
	c.JSON(http.StatusOK, entry)
}

func (h *ExpenseController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
