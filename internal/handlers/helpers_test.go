package handlers

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"debenture/internal/debenture"
	"debenture/internal/models"
	"debenture/internal/pagination"
	"debenture/internal/services"
	"debenture/internal/validator"
)

// --- mock services ---

type mockContractService struct {
	createContractFn func(ctx context.Context, label string) (*models.Contract, error)
	getContractFn    func(ctx context.Context, id string) (*models.Contract, error)
	listContractsFn  func(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Contract], error)
}

var _ services.ContractServicer = (*mockContractService)(nil)

func (m *mockContractService) CreateContract(ctx context.Context, label string) (*models.Contract, error) {
	if m.createContractFn != nil {
		return m.createContractFn(ctx, label)
	}
	return &models.Contract{Label: label}, nil
}

func (m *mockContractService) GetContract(ctx context.Context, id string) (*models.Contract, error) {
	if m.getContractFn != nil {
		return m.getContractFn(ctx, id)
	}
	return &models.Contract{Base: models.Base{ID: id}}, nil
}

func (m *mockContractService) ListContracts(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Contract], error) {
	if m.listContractsFn != nil {
		return m.listContractsFn(ctx, page)
	}
	resp := pagination.NewPageResponse([]models.Contract{}, 1, 20, 0)
	return &resp, nil
}

type mockDebentureService struct {
	issueFn           func(ctx context.Context, id string, p debenture.IssueParams, ip string) error
	maturityFn        func(ctx context.Context, id string) (*big.Int, error)
	parValueFn        func(ctx context.Context, id string) (*big.Int, error)
	couponRateFn      func(ctx context.Context, id string) (*big.Int, error)
	couponFrequencyFn func(ctx context.Context, id string) (debenture.Frequency, error)
	holderFn          func(ctx context.Context, id string) (debenture.Holder, error)
	couponPaymentFn   func(ctx context.Context, id string, now *big.Int) (*big.Int, error)
	stateFn           func(ctx context.Context, id string) (*debenture.State, error)
}

var _ services.DebentureServicer = (*mockDebentureService)(nil)

func (m *mockDebentureService) Issue(ctx context.Context, id string, p debenture.IssueParams, ip string) error {
	if m.issueFn != nil {
		return m.issueFn(ctx, id, p, ip)
	}
	return nil
}

func (m *mockDebentureService) Maturity(ctx context.Context, id string) (*big.Int, error) {
	if m.maturityFn != nil {
		return m.maturityFn(ctx, id)
	}
	return new(big.Int), nil
}

func (m *mockDebentureService) ParValue(ctx context.Context, id string) (*big.Int, error) {
	if m.parValueFn != nil {
		return m.parValueFn(ctx, id)
	}
	return new(big.Int), nil
}

func (m *mockDebentureService) CouponRate(ctx context.Context, id string) (*big.Int, error) {
	if m.couponRateFn != nil {
		return m.couponRateFn(ctx, id)
	}
	return new(big.Int), nil
}

func (m *mockDebentureService) CouponFrequency(ctx context.Context, id string) (debenture.Frequency, error) {
	if m.couponFrequencyFn != nil {
		return m.couponFrequencyFn(ctx, id)
	}
	return debenture.Annually, nil
}

func (m *mockDebentureService) DebentureHolder(ctx context.Context, id string) (debenture.Holder, error) {
	if m.holderFn != nil {
		return m.holderFn(ctx, id)
	}
	return debenture.Holder{}, nil
}

func (m *mockDebentureService) CouponPayment(ctx context.Context, id string, now *big.Int) (*big.Int, error) {
	if m.couponPaymentFn != nil {
		return m.couponPaymentFn(ctx, id, now)
	}
	return new(big.Int), nil
}

func (m *mockDebentureService) State(ctx context.Context, id string) (*debenture.State, error) {
	if m.stateFn != nil {
		return m.stateFn(ctx, id)
	}
	return &debenture.State{Maturity: new(big.Int), CouponRate: new(big.Int), ParValue: new(big.Int)}, nil
}

// --- helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
