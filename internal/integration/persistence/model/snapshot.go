// Package model defines the persistence representations of the domain
// entities.
package model

import "time"

// SnapshotModel is the gorm model for the local snapshot table: one serialized
// profile document per key.
type SnapshotModel struct {
	Key       string    `gorm:"primaryKey;size:128"`
	Payload   []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM.
func (SnapshotModel) TableName() string {
	return "profile_snapshots"
}
