package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/model"
	"factory-maintenance-backend/internal/store"
)

// ListFaults handles GET /faults, newest first.
func ListFaults(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var faults []model.Fault
		if err := db.Order("id DESC").Find(&faults).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve faults"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": faults})
	}
}

type createFaultRequest struct {
	FaultCode        string `json:"faultCode"`
	FaultDescription string `json:"faultDescription"`
	Severity         string `json:"severity"`
	MachineID        *int64 `json:"machineID"`
}

// CreateFault handles POST /faults via the fault intake processor. When the
// cascade raised a critical-fault alert, a push-notification job is
// dispatched after the transaction has committed.
func (h *Handler) CreateFault(c *gin.Context) {
	var req createFaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.store.RecordFault(c.Request.Context(), store.FaultInput{
		FaultCode:        req.FaultCode,
		FaultDescription: req.FaultDescription,
		Severity:         req.Severity,
		MachineID:        req.MachineID,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	if result.AlertCreated && h.notifier != nil && result.Fault.MachineID != nil {
		h.notifier.Dispatch(*result.Fault.MachineID)
	}

	c.JSON(http.StatusCreated, result.Fault)
}
