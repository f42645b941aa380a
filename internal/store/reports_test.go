package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/model"
)

func seedSchedule(t *testing.T, db *gorm.DB, machineID int64, due time.Time, active bool) model.MaintenanceSchedule {
	t.Helper()
	schedule := model.MaintenanceSchedule{
		MachineID:           machineID,
		NextMaintenanceDate: due,
		FrequencyDays:       30,
		IsActive:            active,
	}
	require.NoError(t, db.Create(&schedule).Error)
	return schedule
}

func TestDueMaintenance_BoundaryAndFiltering(t *testing.T) {
	db := newTestDB(t)
	s := NewGormStore(db)

	machine := seedMachine(t, db, "Boyahane Fırını")
	today := startOfDay(time.Now())

	onBoundary := seedSchedule(t, db, machine.ID, today.AddDate(0, 0, 7), true)
	beyond := seedSchedule(t, db, machine.ID, today.AddDate(0, 0, 8), true)
	overdue := seedSchedule(t, db, machine.ID, today.AddDate(0, 0, -3), true)
	inactive := seedSchedule(t, db, machine.ID, today, false)

	items, err := s.DueMaintenance(context.Background(), 7)
	require.NoError(t, err)

	byID := make(map[int64]DueMaintenanceItem, len(items))
	for _, item := range items {
		byID[item.ScheduleID] = item
	}

	require.Contains(t, byID, onBoundary.ID, "a schedule due exactly today+days is included")
	assert.Equal(t, 7, byID[onBoundary.ID].DaysLeft)
	assert.Equal(t, machine.ID, byID[onBoundary.ID].MachineID)
	assert.Equal(t, "Boyahane Fırını", byID[onBoundary.ID].MachineName)

	assert.NotContains(t, byID, beyond.ID, "a schedule due today+days+1 is excluded")
	assert.NotContains(t, byID, inactive.ID, "inactive schedules are excluded regardless of date")

	require.Contains(t, byID, overdue.ID, "overdue schedules are included")
	assert.Equal(t, -3, byID[overdue.ID].DaysLeft)

	// Rows come back soonest first.
	require.Len(t, items, 3)
	assert.Equal(t, overdue.ID, items[0].ScheduleID)
}

func TestDueMaintenance_TimeOfDayDoesNotShiftBoundary(t *testing.T) {
	db := newTestDB(t)
	s := NewGormStore(db)

	machine := seedMachine(t, db, "Ekstrüder")
	today := startOfDay(time.Now())

	// Schedules posted through the API carry full timestamps; a clock
	// component on the boundary day must not push the row out of the window.
	lastDay := seedSchedule(t, db, machine.ID, today.AddDate(0, 0, 7).Add(17*time.Hour+45*time.Minute), true)
	dayAfter := seedSchedule(t, db, machine.ID, today.AddDate(0, 0, 8), true)

	items, err := s.DueMaintenance(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, lastDay.ID, items[0].ScheduleID)
	assert.Equal(t, 7, items[0].DaysLeft)
	assert.NotEqual(t, dayAfter.ID, items[0].ScheduleID)
}

func TestMonthlyMaintenanceCost_GroupsByYearMonth(t *testing.T) {
	db := newTestDB(t)
	s := NewGormStore(db)

	machine := seedMachine(t, db, "Torna")
	person := seedPersonnel(t, db, "Hasan Koç")

	create := func(start time.Time, cost string) {
		record := model.MaintenanceRecord{
			MachineID:   machine.ID,
			PersonnelID: person.ID,
			StartTime:   start,
			Cost:        decimal.RequireFromString(cost),
		}
		require.NoError(t, db.Create(&record).Error)
	}

	create(time.Date(2026, 7, 3, 10, 0, 0, 0, time.UTC), "120.50")
	create(time.Date(2026, 7, 21, 14, 0, 0, 0, time.UTC), "80.00")
	create(time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC), "300.25")
	create(time.Date(2025, 12, 30, 9, 0, 0, 0, time.UTC), "10.00")

	rows, err := s.MonthlyMaintenanceCost(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 2025, rows[0].Year)
	assert.Equal(t, 12, rows[0].Month)
	assert.Equal(t, 1, rows[0].Jobs)
	assert.True(t, rows[0].TotalCost.Equal(decimal.RequireFromString("10.00")))

	assert.Equal(t, 2026, rows[1].Year)
	assert.Equal(t, 7, rows[1].Month)
	assert.Equal(t, 2, rows[1].Jobs)
	assert.True(t, rows[1].TotalCost.Equal(decimal.RequireFromString("200.50")))

	assert.Equal(t, 2026, rows[2].Year)
	assert.Equal(t, 8, rows[2].Month)
	assert.Equal(t, 1, rows[2].Jobs)
	assert.True(t, rows[2].TotalCost.Equal(decimal.RequireFromString("300.25")))
}

func TestMonthlyMaintenanceCost_EmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	s := NewGormStore(db)

	rows, err := s.MonthlyMaintenanceCost(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
