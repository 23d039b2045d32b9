package controllers

import (
	"net/http"

	"github.com/AnoopG7/Day-Tracker-sub001/models"
	"github.com/AnoopG7/Day-Tracker-sub001/services"

	"github.com/gin-gonic/gin"
)

type DayLogController struct {
	Svc *services.DayLogService
	RT  *services.RealtimeHub
}

func NewDayLogController(svc *services.DayLogService, rt *services.RealtimeHub) *DayLogController {
	return &DayLogController{Svc: svc, RT: rt}
}

type activityEntryInput struct {
	StartTime    *string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime      *string `json:"end_time" binding:"omitempty,datetime=15:04"`
	Duration     *int    `json:"duration" binding:"omitempty,min=0,max=1440"`
	ExerciseType *string `json:"exercise_type" binding:"omitempty,oneof=running walking cycling gym yoga swimming sports other"`
}

func (in activityEntryInput) toModel() models.ActivityEntry {
	return models.ActivityEntry{
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Duration:     in.Duration,
		ExerciseType: in.ExerciseType,
	}
}

func (h *DayLogController) Get(c *gin.Context) {
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

	log, err := h.Svc.Get(c.Request.Context(), userID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (h *DayLogController) Upsert(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, err := parseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	var body struct {
		Sleep    activityEntryInput `json:"sleep"`
		Exercise activityEntryInput `json:"exercise"`
		Notes    string             `json:"notes" binding:"omitempty,max=500"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.Svc.Upsert(c.Request.Context(), userID, date, services.DayLogInput{
		Sleep:    body.Sleep.toModel(),
		Exercise: body.Exercise.toModel(),
		Notes:    body.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.RT.BroadcastDayUpdated(userID, date.Format("2006-01-02"))
	c.JSON(http.StatusOK, log)
}

func (h *DayLogController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, err := parseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), userID, date); err != nil {
		respondServiceError(c, err)
		return
	}

	h.RT.BroadcastDayUpdated(userID, date.Format("2006-01-02"))
	c.Status(http.StatusNoContent)
}
