package controllers

import (
	"net/http"
	"strconv"

	"github.com/AnoopG7/Day-Tracker-sub001/services"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	Svc *services.ActivityService
	RT  *services.RealtimeHub
}

func NewActivityController(svc *services.ActivityService, rt *services.RealtimeHub) *ActivityController {
	return &ActivityController{Svc: svc, RT: rt}
}

type activityInput struct {
	Date      string  `json:"date" binding:"required,datetime=2006-01-02"`
	Name      string  `json:"name" binding:"required"`
	StartTime *string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime   *string `json:"end_time" binding:"omitempty,datetime=15:04"`
	Duration  *int    `json:"duration" binding:"omitempty,min=0,max=1440"`
	Notes     string  `json:"notes" binding:"omitempty,max=500"`
}

func (h *ActivityController) List(c *gin.Context) {
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

	acts, err := h.Svc.List(c.Request.Context(), userID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, acts)
}

func (h *ActivityController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body activityInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	act, err := h.Svc.Create(c.Request.Context(), userID, date, services.ActivityInput{
		Name:      body.Name,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Duration:  body.Duration,
		Notes:     body.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.RT.BroadcastDayUpdated(userID, date.Format("2006-01-02"))
	c.JSON(http.StatusCreated, act)
}

func (h *ActivityController) Update(c *gin.Context) {
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

	var body activityInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	act, err := h.Svc.Update(c.Request.Context(), userID, uint(id), services.ActivityInput{
		Name:      body.Name,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Duration:  body.Duration,
		Notes:     body.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.RT.BroadcastDayUpdated(userID, act.Date.Format("2006-01-02"))
	c.JSON(http.StatusOK, act)
}

func (h *ActivityController) Delete(c *gin.Context) {
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
