package model

import "time"

// Personnel represents a maintenance worker or operator.
type Personnel struct {
	ID          int64     `gorm:"primaryKey" json:"personnelID"`
	FullName    string    `gorm:"size:100;not null" json:"fullName"`
	UserRole    string    `gorm:"size:50" json:"userRole"`
	ContactInfo string    `gorm:"size:100" json:"contactInfo"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
}

// TableName overrides gorm's pluralizer; "personnel" is already plural.
func (Personnel) TableName() string {
	return "personnel"
}
