package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "debenture/internal/errors"
	"debenture/internal/pagination"
	"debenture/internal/services"
)

// ContractHandler handles contract instance registration.
type ContractHandler struct {
	contractService services.ContractServicer
}

// NewContractHandler creates a new ContractHandler.
func NewContractHandler(contractService services.ContractServicer) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// CreateContractRequest represents the request payload for registering a contract.
type CreateContractRequest struct {
	Label string `json:"label" binding:"max=200"`
}

// CreateContract godoc
// @Summary     Register contract
// @Description Register a new, un-issued contract instance.
// @Tags        contracts
// @Accept      json
// @Produce     json
// @Param       request body CreateContractRequest false "Optional label"
// @Success     201 {object} map[string]models.Contract "Contract registered"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /debentures [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req CreateContractRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}

	contract, err := h.contractService.CreateContract(c.Request.Context(), req.Label)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"contract": contract})
}

// ListContracts godoc
// @Summary     List contracts
// @Description Registered contracts, newest first.
// @Tags        contracts
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Contract] "Contracts"
// @Failure     400 {object} ErrorResponse "Invalid paging"
// @Router      /debentures [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.contractService.ListContracts(c.Request.Context(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
