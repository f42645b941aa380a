package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/model"
	"factory-maintenance-backend/internal/store"
)

// maintenancePartView adds the computed line total to a part line.
type maintenancePartView struct {
	model.MaintenancePart
	TotalCost decimal.Decimal `json:"totalCost"`
}

// maintenanceRecordView is the full work-order response: the record, its
// lines with computed totals, and the sum over all lines.
type maintenanceRecordView struct {
	model.MaintenanceRecord
	Parts          []maintenancePartView `json:"parts"`
	TotalPartsCost decimal.Decimal       `json:"totalPartsCost"`
}

func newMaintenanceRecordView(rec model.MaintenanceRecord) maintenanceRecordView {
	view := maintenanceRecordView{
		MaintenanceRecord: rec,
		Parts:             make([]maintenancePartView, 0, len(rec.Parts)),
		TotalPartsCost:    decimal.Zero,
	}
	for _, line := range rec.Parts {
		total := line.TotalCost()
		view.Parts = append(view.Parts, maintenancePartView{MaintenancePart: line, TotalCost: total})
		view.TotalPartsCost = view.TotalPartsCost.Add(total)
	}
	return view
}

// ListMaintenance handles GET /maintenance, newest first, lines included.
func ListMaintenance(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var records []model.MaintenanceRecord
		if err := db.Preload("Parts").Order("id DESC").Limit(300).Find(&records).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve maintenance records"})
			return
		}

		items := make([]maintenanceRecordView, 0, len(records))
		for _, rec := range records {
			items = append(items, newMaintenanceRecordView(rec))
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

type maintenancePartRequest struct {
	PartID   int64            `json:"partID"`
	Quantity int              `json:"quantity"`
	UnitCost *decimal.Decimal `json:"unitCost"`
}

type createMaintenanceRequest struct {
	MachineID   int64                    `json:"machineID"`
	PersonnelID int64                    `json:"personnelID"`
	FaultID     *int64                   `json:"faultID"`
	Description string                   `json:"description"`
	StartTime   time.Time                `json:"startTime"`
	EndTime     *time.Time               `json:"endTime"`
	Cost        *decimal.Decimal         `json:"cost"`
	Parts       []maintenancePartRequest `json:"parts"`
}

// CreateMaintenance handles POST /maintenance via the work-order transaction
// engine. Field-level validation detail comes from the store, so the request
// is bound loosely here.
func (h *Handler) CreateMaintenance(c *gin.Context) {
	var req createMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	in := store.WorkOrderInput{
		MachineID:   req.MachineID,
		PersonnelID: req.PersonnelID,
		FaultID:     req.FaultID,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Cost:        req.Cost,
	}
	for _, line := range req.Parts {
		in.Parts = append(in.Parts, store.WorkOrderLine{
			PartID:   line.PartID,
			Quantity: line.Quantity,
			UnitCost: line.UnitCost,
		})
	}

	record, err := h.store.CreateWorkOrder(c.Request.Context(), in)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newMaintenanceRecordView(*record))
}
