package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/AnoopG7/Day-Tracker-sub001/services"

	"github.com/gin-gonic/gin"
)

// userIDFromCtx pulls the authenticated user id set by the auth middleware.
func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// parseDate parses a YYYY-MM-DD query/path value. An empty value means
// "today" (UTC calendar date).
func parseDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", value)
}

// respondServiceError maps service-layer failures onto HTTP statuses.
// Validation failures carry their field list; a uniqueness conflict is a 409,
// never rewritten into anything else.
func respondServiceError(c *gin.Context, err error) {
	if ve, ok := services.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Result.Errors})
		return
	}
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
