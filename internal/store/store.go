package store

import (
	"context"

	"gorm.io/gorm"

	"factory-maintenance-backend/internal/model"
)

// Store defines the transactional operations of the maintenance core. Plain
// single-table CRUD is handled directly by the API layer against DB().
type Store interface {
	DB() *gorm.DB

	// CreateWorkOrder creates a maintenance record together with its
	// consumed-part lines as one atomic unit, deducting stock per line.
	CreateWorkOrder(ctx context.Context, in WorkOrderInput) (*model.MaintenanceRecord, error)

	// RecordFault persists a fault and, for high-severity faults with a
	// machine reference, applies the machine-status and alert cascade.
	RecordFault(ctx context.Context, in FaultInput) (*FaultResult, error)

	// AdjustStock applies a manual stock delta, rejecting any adjustment
	// that would leave the counter negative.
	AdjustStock(ctx context.Context, partID int64, amount int) (*model.Part, error)

	// DueMaintenance lists active schedules due within the given number of
	// days, including overdue ones.
	DueMaintenance(ctx context.Context, days int) ([]DueMaintenanceItem, error)

	// MonthlyMaintenanceCost aggregates work-order costs by year and month.
	MonthlyMaintenanceCost(ctx context.Context) ([]MonthlyCostRow, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}
