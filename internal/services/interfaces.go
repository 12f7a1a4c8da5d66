package services

import (
	"context"
	"math/big"

	"debenture/internal/debenture"
	"debenture/internal/models"
	"debenture/internal/pagination"
)

// ContractServicer defines the contract instance registry.
type ContractServicer interface {
	CreateContract(ctx context.Context, label string) (*models.Contract, error)
	GetContract(ctx context.Context, id string) (*models.Contract, error)
	ListContracts(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Contract], error)
}

// DebentureServicer dispatches the debenture operations for a registered
// contract instance.
type DebentureServicer interface {
	Issue(ctx context.Context, contractID string, params debenture.IssueParams, ipAddress string) error
	Maturity(ctx context.Context, contractID string) (*big.Int, error)
	ParValue(ctx context.Context, contractID string) (*big.Int, error)
	CouponRate(ctx context.Context, contractID string) (*big.Int, error)
	CouponFrequency(ctx context.Context, contractID string) (debenture.Frequency, error)
	DebentureHolder(ctx context.Context, contractID string) (debenture.Holder, error)
	CouponPayment(ctx context.Context, contractID string, now *big.Int) (*big.Int, error)
	State(ctx context.Context, contractID string) (*debenture.State, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
