package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/model"
)

// ListSchedules handles GET /schedules, soonest due first.
func ListSchedules(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var schedules []model.MaintenanceSchedule
		if err := db.Order("next_maintenance_date ASC").Find(&schedules).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve schedules"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": schedules})
	}
}

type createScheduleRequest struct {
	MachineID           int64     `json:"machineID" binding:"required"`
	NextMaintenanceDate time.Time `json:"nextMaintenanceDate" binding:"required"`
	FrequencyDays       int       `json:"frequencyDays" binding:"omitempty,min=1"`
	IsActive            *bool     `json:"isActive"`
}

// CreateSchedule handles POST /schedules.
func CreateSchedule(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createScheduleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		schedule := model.MaintenanceSchedule{
			MachineID:           req.MachineID,
			NextMaintenanceDate: req.NextMaintenanceDate,
			FrequencyDays:       req.FrequencyDays,
			IsActive:            true,
		}
		if req.IsActive != nil {
			schedule.IsActive = *req.IsActive
		}

		if err := db.Create(&schedule).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create schedule"})
			return
		}
		c.JSON(http.StatusCreated, schedule)
	}
}
