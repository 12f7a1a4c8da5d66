package models

import "time"

// ContractEntry is one field of a contract's instrument state in the SQL
// state store.
type ContractEntry struct {
	ContractID string    `gorm:"type:uuid;primaryKey"`
	FieldKey   uint32    `gorm:"primaryKey;autoIncrement:false"`
	Value      []byte    `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}
