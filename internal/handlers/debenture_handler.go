package handlers

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"debenture/internal/debenture"
	apperrors "debenture/internal/errors"
	"debenture/internal/services"
	"debenture/internal/validator"
)

// DebentureHandler exposes the debenture operations of a contract.
type DebentureHandler struct {
	debentureService services.DebentureServicer
	clock            func() time.Time
}

// NewDebentureHandler creates a new DebentureHandler.
func NewDebentureHandler(debentureService services.DebentureServicer) *DebentureHandler {
	return &DebentureHandler{debentureService: debentureService, clock: time.Now}
}

// IssueRequest represents the request payload for issuing a debenture.
// Integers are base-10 strings of arbitrary size. The frequency is a code
// (0-5) or a name such as "quarterly".
type IssueRequest struct {
	Maturity               string               `json:"maturity" binding:"required,bigint" example:"1735689600"`
	CouponRate             string               `json:"coupon_rate" binding:"required,nonneg_bigint" example:"750"`
	ParValue               string               `json:"par_value" binding:"required,nonneg_bigint" example:"100000"`
	CouponPaymentFrequency *debenture.Frequency `json:"coupon_payment_frequency" binding:"required" swaggertype:"string" example:"quarterly"`
	DebentureHolder        string               `json:"debenture_holder" binding:"required,holder"`
}

// CouponPaymentQuery holds the optional evaluation timestamp.
type CouponPaymentQuery struct {
	Now string `form:"now" binding:"omitempty,bigint"`
}

// FrequencyResponse describes a coupon payment frequency.
type FrequencyResponse struct {
	Code           uint32 `json:"code"`
	Name           string `json:"name"`
	PeriodsPerYear int64  `json:"periods_per_year"`
}

// StateResponse is the full stored state of a contract.
type StateResponse struct {
	ContractID             string            `json:"contract_id"`
	Maturity               string            `json:"maturity"`
	CouponRate             string            `json:"coupon_rate"`
	ParValue               string            `json:"par_value"`
	CouponPaymentFrequency FrequencyResponse `json:"coupon_payment_frequency"`
	DebentureHolder        string            `json:"debenture_holder"`
}

func newFrequencyResponse(f debenture.Frequency) FrequencyResponse {
	return FrequencyResponse{Code: f.Code(), Name: f.String(), PeriodsPerYear: f.PeriodsPerYear()}
}

func (r IssueRequest) params() (debenture.IssueParams, error) {
	holder, err := debenture.ParseHolder(r.DebentureHolder)
	if err != nil {
		return debenture.IssueParams{}, err
	}
	maturity, _ := validator.ParseBigInt(r.Maturity)
	rate, _ := validator.ParseBigInt(r.CouponRate)
	par, _ := validator.ParseBigInt(r.ParValue)
	return debenture.IssueParams{
		Maturity:   maturity,
		CouponRate: rate,
		ParValue:   par,
		Frequency:  r.CouponPaymentFrequency.Code(),
		Holder:     holder,
	}, nil
}

// Issue godoc
// @Summary     Issue debenture
// @Description Write maturity, coupon rate, par value, payment frequency and holder. Issuing again overwrites.
// @Tags        debentures
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path string       true "Contract ID"
// @Param       request body IssueRequest true "Instrument attributes"
// @Success     200 {object} map[string]string "Debenture issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     404 {object} ErrorResponse "Contract not found"
// @Failure     422 {object} ErrorResponse "Unknown frequency code"
// @Failure     503 {object} ErrorResponse "Issuing not configured or store unavailable"
// @Router      /debentures/{id}/issue [post]
func (h *DebentureHandler) Issue(c *gin.Context) {
	id, err := bindContractID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			respondWithError(c, appErr)
			return
		}
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	params, err := req.params()
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.debentureService.Issue(c.Request.Context(), id, params, c.ClientIP()); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Debenture issued", "contract_id": id})
}

// GetState godoc
// @Summary     Get debenture state
// @Description Return every stored field of a contract. Unset fields read as zero.
// @Tags        debentures
// @Produce     json
// @Param       id path string true "Contract ID"
// @Success     200 {object} map[string]StateResponse "Debenture state"
// @Failure     400 {object} ErrorResponse "Invalid contract id"
// @Failure     404 {object} ErrorResponse "Contract not found"
// @Router      /debentures/{id} [get]
func (h *DebentureHandler) GetState(c *gin.Context) {
	id, err := bindContractID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	state, err := h.debentureService.State(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debenture": StateResponse{
		ContractID:             id,
		Maturity:               intString(state.Maturity),
		CouponRate:             intString(state.CouponRate),
		ParValue:               intString(state.ParValue),
		CouponPaymentFrequency: newFrequencyResponse(state.Frequency),
		DebentureHolder:        state.Holder.String(),
	}})
}

// respondInt replies {field: "<value>"} with a single-integer read.
func (h *DebentureHandler) respondInt(c *gin.Context, field string, get func(context.Context, string) (*big.Int, error)) {
	id, err := bindContractID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	v, err := get(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{field: intString(v)})
}

// GetMaturity godoc
// @Summary     Get maturity timestamp
// @Tags        debentures
// @Produce     json
// @Param       id path string true "Contract ID"
// @Success     200 {object} map[string]string "maturity"
// @Failure     404 {object} ErrorResponse "Contract not found"
// @Router      /debentures/{id}/maturity [get]
func (h *DebentureHandler) GetMaturity(c *gin.Context) {
	h.respondInt(c, "maturity", h.debentureService.Maturity)
}

// GetParValue godoc
// @Summary     Get par value
// @Tags        debentures
// @Produce     json
// @Param       id path string true "Contract ID"
// @Success     200 {object} map[string]string "par_value"
// @Failure     404 {object} ErrorResponse "Contract not found"
// @Router      /debentures/{id}/par_value [get]
func (h *DebentureHandler) GetParValue(c *gin.Context) {
	h.respondInt(c, "par_value", h.debentureService.ParValue)
}

// GetCouponRate godoc
// @Summary     Get annual coupon rate in basis points
// @Tags        debentures
// @Produce     json
// @Param       id path string true "Contract ID"
// @Success     200 {object} map[string]string "coupon_rate"
// @Failure     404 {object} ErrorResponse "Contract not found"
// @Router      /debentures/{id}/coupon_rate [get]
func (h *DebentureHandler) GetCouponRate(c *gin.Context) {
	h.respondInt(c, "coupon_rate", h.debentureService.CouponRate)
}

// GetCouponFrequency godoc
// @Summary     Get coupon payment frequency
// @Tags        debentures
// @Produce     json
// @Param       id path string true "Contract ID"
// @Success     200 {object} map[string]FrequencyResponse "coupon_payment_frequency"
// @Failure     404 {object} ErrorResponse "Contract not found"
// @Failure     422 {object} ErrorResponse "Unknown stored frequency code"
// @Router      /debentures/{id}/coupon_payment_frequency [get]
func (h *DebentureHandler) GetCouponFrequency(c *gin.Context) {
	id, err := bindContractID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	freq, err := h.debentureService.CouponFrequency(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupon_payment_frequency": newFrequencyResponse(freq)})
}

// GetDebentureHolder godoc
// @Summary     Get holder identity as hex
// @Tags        debentures
// @Produce     json
// @Param       id path string true "Contract ID"
// @Success     200 {object} map[string]string "debenture_holder"
// @Failure     404 {object} ErrorResponse "Contract not found"
// @Router      /debentures/{id}/debenture_holder [get]
func (h *DebentureHandler) GetDebentureHolder(c *gin.Context) {
	id, err := bindContractID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	holder, err := h.debentureService.DebentureHolder(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"debenture_holder": holder.String()})
}

// GetCouponPayment godoc
// @Summary     Compute coupon payment
// @Description Coupon owed for one period at the given Unix time, or 0 once now is past maturity.
// @Tags        debentures
// @Produce     json
// @Param       id  path  string true  "Contract ID"
// @Param       now query string false "Unix timestamp, defaults to the current time"
// @Success     200 {object} map[string]string "coupon_payment and now"
// @Failure     400 {object} ErrorResponse "Invalid now"
// @Failure     404 {object} ErrorResponse "Contract not found"
// @Failure     422 {object} ErrorResponse "Unknown stored frequency code"
// @Router      /debentures/{id}/coupon_payment [get]
func (h *DebentureHandler) GetCouponPayment(c *gin.Context) {
	id, err := bindContractID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q CouponPaymentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "now must be an integer timestamp"))
		return
	}
	now := big.NewInt(h.clock().Unix())
	if q.Now != "" {
		now, _ = validator.ParseBigInt(q.Now)
	}

	payment, err := h.debentureService.CouponPayment(c.Request.Context(), id, now)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coupon_payment": intString(payment),
		"now":            now.String(),
	})
}

// ListFrequencies godoc
// @Summary     List coupon payment frequencies
// @Description Every accepted frequency with its code and periods per year.
// @Tags        debentures
// @Produce     json
// @Success     200 {object} map[string][]FrequencyResponse "frequencies"
// @Router      /frequencies [get]
func (h *DebentureHandler) ListFrequencies(c *gin.Context) {
	all := debenture.Frequencies()
	out := make([]FrequencyResponse, 0, len(all))
	for _, f := range all {
		out = append(out, newFrequencyResponse(f))
	}
	c.JSON(http.StatusOK, gin.H{"frequencies": out})
}
