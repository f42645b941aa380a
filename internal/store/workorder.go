package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/model"
)

// WorkOrderLine is one requested part consumption. UnitCost, when set,
// overrides the part's current unit cost as the snapshot value.
type WorkOrderLine struct {
	PartID   int64
	Quantity int
	UnitCost *decimal.Decimal
}

// WorkOrderInput is the payload for creating a work order.
type WorkOrderInput struct {
	MachineID   int64
	PersonnelID int64
	FaultID     *int64
	Description string
	StartTime   time.Time
	EndTime     *time.Time
	Cost        *decimal.Decimal
	Parts       []WorkOrderLine
}

func (in WorkOrderInput) validate() error {
	var verr ValidationErrors
	if in.MachineID <= 0 {
		verr.add("machineID", "machineID is required")
	}
	if in.PersonnelID <= 0 {
		verr.add("personnelID", "personnelID is required")
	}
	if in.StartTime.IsZero() {
		verr.add("startTime", "startTime is required")
	}
	for i, line := range in.Parts {
		if line.PartID <= 0 {
			verr.add(fmt.Sprintf("parts[%d].partID", i), "partID is required")
		}
		if line.Quantity < 1 {
			verr.add(fmt.Sprintf("parts[%d].quantity", i), "quantity must be at least 1")
		}
	}
	if len(verr.Errors) > 0 {
		return &verr
	}
	return nil
}

// CreateWorkOrder creates a maintenance record plus its part lines in one
// transaction. Lines are processed in request order; the first part that is
// missing or short on stock aborts the whole order, leaving no header, no
// lines and no stock deduction behind.
func (s *gormStore) CreateWorkOrder(ctx context.Context, in WorkOrderInput) (*model.MaintenanceRecord, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	cost := decimal.Zero
	if in.Cost != nil {
		cost = *in.Cost
	}

	record := model.MaintenanceRecord{
		MachineID:   in.MachineID,
		PersonnelID: in.PersonnelID,
		FaultID:     in.FaultID,
		Description: in.Description,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Cost:        cost,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create maintenance record: %w", err)
		}

		for _, line := range in.Parts {
			part, unitCost, err := consumePart(tx, line.PartID, line.Quantity, line.UnitCost)
			if err != nil {
				return err
			}

			mp := model.MaintenancePart{
				MaintenanceID: record.ID,
				PartID:        part.ID,
				Quantity:      line.Quantity,
				UnitCost:      unitCost,
			}
			if err := tx.Create(&mp).Error; err != nil {
				return fmt.Errorf("failed to create part line for part %d: %w", part.ID, err)
			}
		}

		return tx.Preload("Parts").First(&record, record.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}
