package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"factory-maintenance-backend/internal/model"
)

// FaultInput is the payload for recording a fault.
type FaultInput struct {
	FaultCode        string
	FaultDescription string
	Severity         string
	MachineID        *int64
}

// FaultResult reports the created fault and whether the critical-fault
// cascade raised an alert, so the caller can dispatch notifications after
// the transaction has committed.
type FaultResult struct {
	Fault        model.Fault
	AlertCreated bool
}

func validSeverity(s string) bool {
	switch s {
	case model.SeverityLow, model.SeverityMedium, model.SeverityHigh:
		return true
	}
	return false
}

// RecordFault persists a fault. For a high-severity fault referencing an
// existing machine, the same transaction marks the machine faulted and raises
// a critical-fault alert; if the alert cannot be written the fault is not
// recorded either. A dangling machine reference skips the cascade but still
// records the fault.
func (s *gormStore) RecordFault(ctx context.Context, in FaultInput) (*FaultResult, error) {
	if in.FaultCode == "" {
		return nil, &ValidationErrors{Errors: []FieldError{{Field: "faultCode", Message: "faultCode is required"}}}
	}
	if !validSeverity(in.Severity) {
		return nil, ErrInvalidSeverity
	}

	result := FaultResult{
		Fault: model.Fault{
			FaultCode:        in.FaultCode,
			FaultDescription: in.FaultDescription,
			Severity:         in.Severity,
			MachineID:        in.MachineID,
		},
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&result.Fault).Error; err != nil {
			return fmt.Errorf("failed to create fault: %w", err)
		}

		if in.Severity != model.SeverityHigh || in.MachineID == nil {
			return nil
		}

		var machine model.Machine
		if err := tx.First(&machine, *in.MachineID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("fault %d references unknown machine %d; skipping cascade", result.Fault.ID, *in.MachineID)
				return nil
			}
			return fmt.Errorf("failed to load machine %d: %w", *in.MachineID, err)
		}

		updates := map[string]any{
			"machine_status": model.MachineStatusFaulted,
			"updated_at":     time.Now().UTC(),
		}
		if err := tx.Model(&machine).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to mark machine %d faulted: %w", machine.ID, err)
		}

		alert := model.Alert{
			MachineID:    machine.ID,
			AlertType:    model.AlertTypeCriticalFault,
			AlertMessage: fmt.Sprintf("Kritik arıza (%s)", in.FaultCode),
			IsResolved:   false,
		}
		if err := tx.Create(&alert).Error; err != nil {
			return fmt.Errorf("failed to create alert for machine %d: %w", machine.ID, err)
		}

		result.AlertCreated = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
