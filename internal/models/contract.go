package models

// Contract is a registered debenture contract instance. Its instrument state
// lives in the configured state store, keyed by ID.
type Contract struct {
	Base
	Label string `gorm:"size:200" json:"label,omitempty"`
}

// All lists every GORM model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Contract{},
		&ContractEntry{},
		&AuditLog{},
	}
}
