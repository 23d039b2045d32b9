package controllers

import (
	"net/http"
	"strconv"

	"github.com/AnoopG7/Day-Tracker-sub001/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	Svc       *services.NutritionService
	Estimator *services.EstimatorService
	RT        *services.RealtimeHub
}

func NewNutritionController(svc *services.NutritionService, est *services.EstimatorService, rt *services.RealtimeHub) *NutritionController {
	return &NutritionController{Svc: svc, Estimator: est, RT: rt}
}

type nutritionInput struct {
	Date     string   `json:"date" binding:"required,datetime=2006-01-02"`
	MealType string   `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	FoodName string   `json:"food_name" binding:"required,max=100"`
	Calories *float64 `json:"calories" binding:"omitempty,min=0"`
	Protein  *float64 `json:"protein" binding:"omitempty,min=0"`
	Carbs    *float64 `json:"carbs" binding:"omitempty,min=0"`
	Fats     *float64 `json:"fats" binding:"omitempty,min=0"`
	Fiber    *float64 `json:"fiber" binding:"omitempty,min=0"`
	Source   string   `json:"source" binding:"omitempty,oneof=manual estimated"`
	Notes    string   `json:"notes" binding:"omitempty,max=500"`
}

func (in nutritionInput) toService() services.NutritionInput {
	return services.NutritionInput{
		MealType: in.MealType,
		FoodName: in.FoodName,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
		Fiber:    in.Fiber,
		Source:   in.Source,
		Notes:    in.Notes,
	}
}

func (h *NutritionController) List(c *gin.Context) {
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

func (h *NutritionController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body nutritionInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

func (h *NutritionController) Update(c *gin.Context) {
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

	var body nutritionInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

func (h *NutritionController) Delete(c *gin.Context) {
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

// Estimate proxies a food description to the AI estimator. Nothing is
// persisted; the client reviews the numbers and logs them explicitly.
func (h *NutritionController) Estimate(c *gin.Context) {
	if _, ok := userIDFromCtx(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body struct {
		FoodName string `json:"food_name" binding:"required,max=100"`
		Quantity string `json:"quantity" binding:"omitempty,max=50"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	est, err := h.Estimator.Estimate(c.Request.Context(), body.FoodName, body.Quantity)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, est)
}
