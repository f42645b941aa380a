package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part represents a spare part held in stock.
//
// UnitsInStock must never be negative at any committed state; it is mutated
// exclusively through the store's inventory operations, whose guarded updates
// reject any change that would take the counter below zero.
type Part struct {
	ID           int64           `gorm:"primaryKey" json:"partID"`
	PartName     string          `gorm:"size:100;not null" json:"partName"`
	PartNumber   string          `gorm:"size:50" json:"partNumber"`
	UnitCost     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitCost"`
	UnitsInStock int             `gorm:"not null" json:"unitsInStock"`
	CreatedAt    time.Time       `gorm:"not null" json:"createdAt"`
}
