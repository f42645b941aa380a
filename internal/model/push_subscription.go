package model

import "time"

// PushSubscription holds a browser push subscription used to deliver
// critical-fault alert notifications for the machines it is mapped to.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey" json:"endpoint"`
	P256DH    string    `gorm:"column:p256dh;not null" json:"p256dh"`
	Auth      string    `gorm:"not null" json:"auth"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`

	// Associations
	Machines []*Machine `gorm:"many2many:subscription_machine_mapping;" json:"-"`
}
