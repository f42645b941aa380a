package model

import "time"

// AlertTypeCriticalFault is the alert type raised by the fault intake cascade.
const AlertTypeCriticalFault = "Kritik Arıza"

// Alert represents a raised alert for a machine.
type Alert struct {
	ID           int64     `gorm:"primaryKey" json:"alertID"`
	MachineID    int64     `gorm:"not null;index" json:"machineID"`
	AlertType    string    `gorm:"size:100;not null" json:"alertType"`
	AlertMessage string    `gorm:"size:255" json:"alertMessage"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
	IsResolved   bool      `gorm:"not null;default:false" json:"isResolved"`
}
