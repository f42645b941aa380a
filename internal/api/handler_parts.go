package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/model"
	"factory-maintenance-backend/internal/store"
)

// ListParts handles GET /parts.
func ListParts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var parts []model.Part
		if err := db.Order("id").Find(&parts).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve parts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": parts})
	}
}

type createPartRequest struct {
	PartName     string          `json:"partName" binding:"required"`
	PartNumber   string          `json:"partNumber"`
	UnitCost     decimal.Decimal `json:"unitCost" binding:"required"`
	UnitsInStock int             `json:"unitsInStock" binding:"min=0"`
}

// CreatePart handles POST /parts.
func CreatePart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		part := model.Part{
			PartName:     req.PartName,
			PartNumber:   req.PartNumber,
			UnitCost:     req.UnitCost,
			UnitsInStock: req.UnitsInStock,
		}
		if err := db.Create(&part).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create part"})
			return
		}
		c.JSON(http.StatusCreated, part)
	}
}

type adjustStockRequest struct {
	Amount int `json:"amount"`
}

// AdjustPartStock handles POST /parts/:id/adjust. The store rejects any
// adjustment that would leave the stock counter negative.
func (h *Handler) AdjustPartStock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid part ID"})
		return
	}

	var req adjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	part, err := h.store.AdjustStock(c.Request.Context(), id, req.Amount)
	if err != nil {
		var notFound *store.PartNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}
