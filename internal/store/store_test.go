package store

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/db"
	"factory-maintenance-backend/internal/model"
)

// newTestDB opens a fresh in-memory SQLite database, migrated for all
// entities. Each test gets its own database via a unique DSN.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	t.Cleanup(func() {
		sqlDB, err := gormDB.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return gormDB
}

func seedMachine(t *testing.T, db *gorm.DB, name string) model.Machine {
	t.Helper()
	machine := model.Machine{MachineName: name, MachineStatus: model.MachineStatusActive}
	require.NoError(t, db.Create(&machine).Error)
	return machine
}

func seedPersonnel(t *testing.T, db *gorm.DB, name string) model.Personnel {
	t.Helper()
	person := model.Personnel{FullName: name, UserRole: "Teknisyen"}
	require.NoError(t, db.Create(&person).Error)
	return person
}

func seedPart(t *testing.T, db *gorm.DB, name string, stock int, unitCost string) model.Part {
	t.Helper()
	cost, err := decimal.NewFromString(unitCost)
	require.NoError(t, err)
	part := model.Part{PartName: name, PartNumber: "PN-" + name, UnitCost: cost, UnitsInStock: stock}
	require.NoError(t, db.Create(&part).Error)
	return part
}

func baseWorkOrder(machineID, personnelID int64, lines ...WorkOrderLine) WorkOrderInput {
	return WorkOrderInput{
		MachineID:   machineID,
		PersonnelID: personnelID,
		Description: "planlı bakım",
		StartTime:   time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		Parts:       lines,
	}
}
