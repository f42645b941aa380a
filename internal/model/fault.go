package model

import "time"

// Fault severity values accepted by the intake endpoint.
const (
	SeverityLow    = "Düşük"
	SeverityMedium = "Orta"
	SeverityHigh   = "Yüksek"
)

// Fault represents a reported machine fault. Faults are append-only: once
// recorded they are never updated or deleted.
type Fault struct {
	ID               int64     `gorm:"primaryKey" json:"faultID"`
	FaultCode        string    `gorm:"size:50;not null" json:"faultCode"`
	FaultDescription string    `gorm:"size:255" json:"faultDescription"`
	Severity         string    `gorm:"size:50" json:"severity"`
	CreatedAt        time.Time `gorm:"not null" json:"createdAt"`
	MachineID        *int64    `gorm:"index" json:"machineID"`
}
