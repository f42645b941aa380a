package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/store"
)

// writeStoreError maps a store error onto an HTTP response, distinguishing
// client errors (bad input, missing references, business-rule violations)
// from internal failures. Internal failure detail goes to the log, not the
// response body.
func writeStoreError(c *gin.Context, err error) {
	var verr *store.ValidationErrors
	var partErr *store.PartNotFoundError
	var stockErr *store.InsufficientStockError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation_error",
			"errors": verr.Errors,
		})
	case errors.As(err, &partErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "part_not_found",
			"partID":  partErr.PartID,
			"message": partErr.Error(),
		})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "insufficient_stock",
			"partName":  stockErr.PartName,
			"available": stockErr.Have,
			"requested": stockErr.Want,
			"message":   stockErr.Error(),
		})
	case errors.Is(err, store.ErrInvalidSeverity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_severity", "message": err.Error()})
	case errors.Is(err, store.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_quantity", "message": err.Error()})
	case errors.Is(err, store.ErrNegativeStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": "negative_stock", "message": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}
