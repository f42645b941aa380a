package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/model"
)

// ListMachines handles GET /machines with an optional case-insensitive name
// filter via ?q=.
func ListMachines(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("id DESC")
		if q := c.Query("q"); q != "" {
			query = query.Where("LOWER(machine_name) LIKE ?", "%"+strings.ToLower(q)+"%")
		}

		var machines []model.Machine
		if err := query.Find(&machines).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve machines"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": machines})
	}
}

type createMachineRequest struct {
	MachineName         string     `json:"machineName" binding:"required"`
	MachineModel        string     `json:"machineModel"`
	MachineLocation     string     `json:"machineLocation"`
	MachineStatus       string     `json:"machineStatus"`
	LastMaintenanceDate *time.Time `json:"lastMaintenanceDate"`
}

// CreateMachine handles POST /machines.
func CreateMachine(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createMachineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		machine := model.Machine{
			MachineName:         req.MachineName,
			MachineModel:        req.MachineModel,
			MachineLocation:     req.MachineLocation,
			MachineStatus:       req.MachineStatus,
			LastMaintenanceDate: req.LastMaintenanceDate,
		}
		if machine.MachineStatus == "" {
			machine.MachineStatus = model.MachineStatusActive
		}

		if err := db.Create(&machine).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create machine"})
			return
		}
		c.JSON(http.StatusCreated, machine)
	}
}

// updateMachineRequest names the mutable machine fields explicitly. Request
// keys are never reflected onto the entity, so fields like status history or
// timestamps cannot be overwritten through this endpoint by arbitrary input.
type updateMachineRequest struct {
	MachineName         *string    `json:"machineName"`
	MachineModel        *string    `json:"machineModel"`
	MachineLocation     *string    `json:"machineLocation"`
	MachineStatus       *string    `json:"machineStatus"`
	LastMaintenanceDate *time.Time `json:"lastMaintenanceDate"`
}

// UpdateMachine handles PUT /machines/:id.
func UpdateMachine(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid machine ID"})
			return
		}

		var req updateMachineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var machine model.Machine
		if err := db.First(&machine, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load machine"})
			}
			return
		}

		updates := map[string]any{"updated_at": time.Now().UTC()}
		if req.MachineName != nil {
			updates["machine_name"] = *req.MachineName
		}
		if req.MachineModel != nil {
			updates["machine_model"] = *req.MachineModel
		}
		if req.MachineLocation != nil {
			updates["machine_location"] = *req.MachineLocation
		}
		if req.MachineStatus != nil {
			updates["machine_status"] = *req.MachineStatus
		}
		if req.LastMaintenanceDate != nil {
			updates["last_maintenance_date"] = *req.LastMaintenanceDate
		}

		if err := db.Model(&machine).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update machine"})
			return
		}
		c.JSON(http.StatusOK, machine)
	}
}

// DeleteMachine handles DELETE /machines/:id.
func DeleteMachine(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid machine ID"})
			return
		}

		res := db.Delete(&model.Machine{}, id)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete machine"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}
