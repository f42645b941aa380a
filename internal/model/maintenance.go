package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceRecord is the header of a work order. It is created atomically
// together with its part lines and is immutable afterwards.
type MaintenanceRecord struct {
	ID          int64           `gorm:"primaryKey" json:"maintenanceID"`
	MachineID   int64           `gorm:"not null;index" json:"machineID"`
	PersonnelID int64           `gorm:"not null" json:"personnelID"`
	FaultID     *int64          `json:"faultID"`
	Description string          `gorm:"size:255" json:"description"`
	StartTime   time.Time       `gorm:"not null" json:"startTime"`
	EndTime     *time.Time      `json:"endTime"`
	Cost        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"cost"`
	CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`

	// Associations
	Parts []MaintenancePart `gorm:"foreignKey:MaintenanceID;constraint:OnDelete:CASCADE" json:"parts"`
}

// MaintenancePart is a consumed-part line of a work order. UnitCost is a
// snapshot taken at consumption time; later changes to Part.UnitCost do not
// alter it.
type MaintenancePart struct {
	ID            int64           `gorm:"primaryKey" json:"lineID"`
	MaintenanceID int64           `gorm:"not null;index" json:"maintenanceID"`
	PartID        int64           `gorm:"not null" json:"partID"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	UnitCost      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitCost"`
}

// TotalCost is the line total, computed rather than stored so it can never
// drift from quantity and the snapshot cost.
func (p MaintenancePart) TotalCost() decimal.Decimal {
	return p.UnitCost.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
