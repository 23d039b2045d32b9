package controllers

import (
	"net/http"
	"strconv"

	"github.com/AnoopG7/Day-Tracker-sub001/services"

	"github.com/gin-gonic/gin"
)

type TemplateController struct {
	Svc *services.TemplateService
}

func NewTemplateController(svc *services.TemplateService) *TemplateController {
	return &TemplateController{Svc: svc}
}

type templateInput struct {
	Name            string  `json:"name" binding:"required"`
	Category        string  `json:"category" binding:"required,oneof=fitness learning leisure chores work social other"`
	Icon            *string `json:"icon" binding:"omitempty,max=50"`
	DefaultDuration *int    `json:"default_duration" binding:"omitempty,min=1,max=1440"`
}

func (h *TemplateController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	includeInactive := c.DefaultQuery("includeInactive", "false") == "true"

	tpls, err := h.Svc.List(c.Request.Context(), userID, includeInactive)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpls)
}

func (h *TemplateController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body templateInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tpl, err := h.Svc.Create(c.Request.Context(), userID, services.TemplateInput{
		Name:            body.Name,
		Category:        body.Category,
		Icon:            body.Icon,
		DefaultDuration: body.DefaultDuration,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

func (h *TemplateController) Update(c *gin.Context) {
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

	var body templateInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tpl, err := h.Svc.Update(c.Request.Context(), userID, uint(id), services.TemplateInput{
		Name:            body.Name,
		Category:        body.Category,
		Icon:            body.Icon,
		DefaultDuration: body.DefaultDuration,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateController) Deactivate(c *gin.Context) {
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

	if err := h.Svc.Deactivate(c.Request.Context(), userID, uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TemplateController) Restore(c *gin.Context) {
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

	if err := h.Svc.Restore(c.Request.Context(), userID, uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
