package model

import "time"

// MaintenanceSchedule defines a recurring maintenance plan for a machine.
type MaintenanceSchedule struct {
	ID                  int64     `gorm:"primaryKey" json:"scheduleID"`
	MachineID           int64     `gorm:"not null;index" json:"machineID"`
	NextMaintenanceDate time.Time `gorm:"type:date;not null" json:"nextMaintenanceDate"`
	FrequencyDays       int       `json:"frequencyDays"`
	IsActive            bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt           time.Time `gorm:"not null" json:"createdAt"`
}
