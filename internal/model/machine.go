package model

import "time"

// Machine status values as stored in the database.
const (
	MachineStatusActive  = "Aktif"
	MachineStatusFaulted = "Arızalı"
)

// Machine represents a factory machine under maintenance tracking.
type Machine struct {
	ID                  int64      `gorm:"primaryKey" json:"machineID"`
	MachineName         string     `gorm:"size:100;not null" json:"machineName"`
	MachineModel        string     `gorm:"size:100" json:"machineModel"`
	MachineLocation     string     `gorm:"size:100" json:"machineLocation"`
	MachineStatus       string     `gorm:"size:50;not null;default:Aktif" json:"machineStatus"`
	LastMaintenanceDate *time.Time `gorm:"type:date" json:"lastMaintenanceDate"`
	CreatedAt           time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt           time.Time  `gorm:"not null" json:"updatedAt"`

	// Associations
	MaintenanceRecords []MaintenanceRecord   `gorm:"foreignKey:MachineID;constraint:OnDelete:CASCADE" json:"-"`
	Schedules          []MaintenanceSchedule `gorm:"foreignKey:MachineID;constraint:OnDelete:CASCADE" json:"-"`
	Alerts             []Alert               `gorm:"foreignKey:MachineID;constraint:OnDelete:CASCADE" json:"-"`
}
