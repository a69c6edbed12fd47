package handler

import (
	"net/http"
	"strconv"

	"friction-log/internal/logger"
	"friction-log/internal/model"
	"friction-log/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ItemHandler struct {
	svc *service.ItemService
}

func NewItemHandler(svc *service.ItemService) *ItemHandler { return &ItemHandler{svc: svc} }

func itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid item id"})
		return 0, false
	}
	return id, true
}

// POST /api/friction-items
func (h *ItemHandler) Create(c *gin.Context) {
	var req model.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	item, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("item.created", "id", item.ID, "category", item.Category, "level", item.AnnoyanceLevel)
	c.JSON(http.StatusCreated, item)
}

// GET /api/friction-items?status=&category=
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.Query("status"), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []model.FrictionItem{}
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/friction-items/:id
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "friction item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// PUT /api/friction-items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var req model.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	item, err := h.svc.Update(c.Request.Context(), id, req)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "friction item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /api/friction-items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	err := h.svc.Delete(c.Request.Context(), id)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "friction item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("item.deleted", "id", id)
	c.Status(http.StatusNoContent)
}

// POST /api/friction-items/:id/encounter
func (h *ItemHandler) RecordEncounter(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	item, exceeded, err := h.svc.RecordEncounter(c.Request.Context(), id)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "friction item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("item.encounter", "id", id, "count", item.EncounterCount, "limit_exceeded", exceeded)
	c.JSON(http.StatusOK, model.EncounterResponse{FrictionItem: *item, IsLimitExceeded: exceeded})
}
