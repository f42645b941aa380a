package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/model"
)

// ListAlerts handles GET /alerts, newest first.
func ListAlerts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var alerts []model.Alert
		if err := db.Order("id DESC").Find(&alerts).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve alerts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": alerts})
	}
}

type createAlertRequest struct {
	MachineID    int64  `json:"machineID" binding:"required"`
	AlertType    string `json:"alertType" binding:"required"`
	AlertMessage string `json:"alertMessage"`
	IsResolved   bool   `json:"isResolved"`
}

// CreateAlert handles POST /alerts for manually raised alerts. Cascade alerts
// are created by the fault intake processor, not through this endpoint.
func CreateAlert(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createAlertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		alert := model.Alert{
			MachineID:    req.MachineID,
			AlertType:    req.AlertType,
			AlertMessage: req.AlertMessage,
			IsResolved:   req.IsResolved,
		}
		if err := db.Create(&alert).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create alert"})
			return
		}
		c.JSON(http.StatusCreated, alert)
	}
}

// ResolveAlert handles POST /alerts/:id/resolve, flipping the resolved flag.
func ResolveAlert(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
			return
		}

		var alert model.Alert
		if err := db.First(&alert, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load alert"})
			}
			return
		}

		if err := db.Model(&alert).Update("is_resolved", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve alert"})
			return
		}
		c.JSON(http.StatusOK, alert)
	}
}
