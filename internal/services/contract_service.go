package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "debenture/internal/errors"
	"debenture/internal/logger"
	"debenture/internal/metrics"
	"debenture/internal/models"
	"debenture/internal/pagination"
)

// contractService handles the contract instance registry.
type contractService struct {
	db *gorm.DB
}

// NewContractService creates a new ContractServicer.
func NewContractService(db *gorm.DB) ContractServicer {
	return &contractService{db: db}
}

// CreateContract registers a new contract instance with an empty state.
func (s *contractService) CreateContract(ctx context.Context, label string) (*models.Contract, error) {
	contract := &models.Contract{Label: label}
	if err := s.db.WithContext(ctx).Create(contract).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	metrics.ContractsCreated.Inc()
	logger.Get().Infow("contract created", "contract_id", contract.ID, "label", label)
	return contract, nil
}

// GetContract returns a registered contract.
func (s *contractService) GetContract(ctx context.Context, id string) (*models.Contract, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrContractNotFound
	}

	var contract models.Contract
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&contract).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContractNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &contract, nil
}

// ListContracts returns a paginated list of contracts, newest first.
func (s *contractService) ListContracts(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Contract], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.WithContext(ctx).Model(&models.Contract{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var contracts []models.Contract
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").
		Scopes(pagination.Paginate(page)).Find(&contracts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(contracts, page.Page, page.PageSize, totalItems)
	return &result, nil
}
