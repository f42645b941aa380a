package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"factory-maintenance-backend/internal/model"
)

// DueMaintenanceItem is one row of the due-maintenance report. DaysLeft is
// negative for overdue schedules.
type DueMaintenanceItem struct {
	ScheduleID          int64     `json:"scheduleID"`
	MachineID           int64     `json:"machineID"`
	MachineName         string    `json:"machineName"`
	NextMaintenanceDate time.Time `json:"nextMaintenanceDate"`
	DaysLeft            int       `json:"daysLeft"`
}

// MonthlyCostRow is one row of the monthly maintenance cost report.
type MonthlyCostRow struct {
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	TotalCost decimal.Decimal `json:"totalCost"`
	Jobs      int             `json:"jobs"`
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DueMaintenance lists active schedules whose next maintenance date falls on
// or before today+days. Overdue schedules are included with negative DaysLeft.
func (s *gormStore) DueMaintenance(ctx context.Context, days int) ([]DueMaintenanceItem, error) {
	today := startOfDay(time.Now())
	// Exclusive upper bound at midnight after the last included day, so a
	// stored time-of-day component cannot push a boundary-day schedule out
	// of the window.
	until := today.AddDate(0, 0, days+1)

	type row struct {
		ScheduleID          int64
		MachineID           int64
		MachineName         string
		NextMaintenanceDate time.Time
	}
	var rows []row
	err := s.db.WithContext(ctx).
		Model(&model.MaintenanceSchedule{}).
		Select("maintenance_schedules.id AS schedule_id, maintenance_schedules.machine_id, machines.machine_name, maintenance_schedules.next_maintenance_date").
		Joins("JOIN machines ON machines.id = maintenance_schedules.machine_id").
		Where("maintenance_schedules.is_active = ?", true).
		Where("maintenance_schedules.next_maintenance_date < ?", until).
		Order("maintenance_schedules.next_maintenance_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("due maintenance query failed: %w", err)
	}

	items := make([]DueMaintenanceItem, 0, len(rows))
	for _, r := range rows {
		due := startOfDay(r.NextMaintenanceDate)
		items = append(items, DueMaintenanceItem{
			ScheduleID:          r.ScheduleID,
			MachineID:           r.MachineID,
			MachineName:         r.MachineName,
			NextMaintenanceDate: due,
			DaysLeft:            int(due.Sub(today).Hours() / 24),
		})
	}
	return items, nil
}

// MonthlyMaintenanceCost sums work-order costs grouped by the year and month
// of the start time. Aggregation happens in Go so the decimal sums stay exact
// and the query works identically on postgres and the sqlite test database.
func (s *gormStore) MonthlyMaintenanceCost(ctx context.Context) ([]MonthlyCostRow, error) {
	var records []model.MaintenanceRecord
	if err := s.db.WithContext(ctx).Select("start_time", "cost").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("monthly cost query failed: %w", err)
	}

	type key struct {
		year  int
		month int
	}
	totals := make(map[key]*MonthlyCostRow)
	for _, rec := range records {
		k := key{year: rec.StartTime.Year(), month: int(rec.StartTime.Month())}
		row, ok := totals[k]
		if !ok {
			row = &MonthlyCostRow{Year: k.year, Month: k.month, TotalCost: decimal.Zero}
			totals[k] = row
		}
		row.TotalCost = row.TotalCost.Add(rec.Cost)
		row.Jobs++
	}

	rows := make([]MonthlyCostRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Month < rows[j].Month
	})
	return rows, nil
}
