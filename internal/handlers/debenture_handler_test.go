package handlers

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"debenture/internal/debenture"
	apperrors "debenture/internal/errors"
)

var testHolderHex = strings.Repeat("ab", 32)

func setupDebentureRouter(handler *DebentureHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/debentures/:id")
	g.GET("", handler.GetState)
	g.POST("/issue", handler.Issue)
	g.GET("/maturity", handler.GetMaturity)
	g.GET("/par_value", handler.GetParValue)
	g.GET("/coupon_rate", handler.GetCouponRate)
	g.GET("/coupon_payment_frequency", handler.GetCouponFrequency)
	g.GET("/debenture_holder", handler.GetDebentureHolder)
	g.GET("/coupon_payment", handler.GetCouponPayment)
	r.GET("/frequencies", handler.ListFrequencies)
	return r
}

func issueBody(freq string) string {
	return fmt.Sprintf(`{"maturity":"1735689600","coupon_rate":"750","par_value":"100000","coupon_payment_frequency":%s,"debenture_holder":"0x%s"}`,
		freq, testHolderHex)
}

func TestDebentureHandler_Issue(t *testing.T) {
	path := "/debentures/" + testContractID + "/issue"

	t.Run("returns 200 and forwards params", func(t *testing.T) {
		var got debenture.IssueParams
		svc := &mockDebentureService{
			issueFn: func(_ context.Context, id string, p debenture.IssueParams, _ string) error {
				if id != testContractID {
					t.Errorf("expected id %s, got %s", testContractID, id)
				}
				got = p
				return nil
			},
		}
		r := setupDebentureRouter(NewDebentureHandler(svc))

		rec := doRequest(r, http.MethodPost, path, issueBody("2"))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Maturity.Int64() != 1735689600 || got.CouponRate.Int64() != 750 || got.ParValue.Int64() != 100000 {
			t.Errorf("unexpected params %+v", got)
		}
		if got.Frequency != 2 || got.Holder.String() != testHolderHex {
			t.Errorf("unexpected frequency or holder: %d %s", got.Frequency, got.Holder)
		}
	})

	t.Run("accepts frequency code zero", func(t *testing.T) {
		r := setupDebentureRouter(NewDebentureHandler(&mockDebentureService{}))

		rec := doRequest(r, http.MethodPost, path, issueBody("0"))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 for missing frequency", func(t *testing.T) {
		r := setupDebentureRouter(NewDebentureHandler(&mockDebentureService{}))

		body := fmt.Sprintf(`{"maturity":"1","coupon_rate":"1","par_value":"1","debenture_holder":"%s"}`, testHolderHex)
		rec := doRequest(r, http.MethodPost, path, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 for negative par", func(t *testing.T) {
		r := setupDebentureRouter(NewDebentureHandler(&mockDebentureService{}))

		body := strings.Replace(issueBody("1"), `"par_value":"100000"`, `"par_value":"-1"`, 1)
		rec := doRequest(r, http.MethodPost, path, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 for short holder", func(t *testing.T) {
		r := setupDebentureRouter(NewDebentureHandler(&mockDebentureService{}))

		body := strings.Replace(issueBody("1"), testHolderHex, "abcd", 1)
		rec := doRequest(r, http.MethodPost, path, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("accepts frequency name", func(t *testing.T) {
		var got debenture.IssueParams
		svc := &mockDebentureService{
			issueFn: func(_ context.Context, _ string, p debenture.IssueParams, _ string) error {
				got = p
				return nil
			},
		}
		r := setupDebentureRouter(NewDebentureHandler(svc))

		rec := doRequest(r, http.MethodPost, path, issueBody(`"monthly"`))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Frequency != debenture.Monthly.Code() {
			t.Errorf("expected monthly code %d, got %d", debenture.Monthly.Code(), got.Frequency)
		}
	})

	t.Run("returns 422 for unknown frequency", func(t *testing.T) {
		svc := &mockDebentureService{
			issueFn: func(context.Context, string, debenture.IssueParams, string) error {
				t.Error("service must not be called for an unknown frequency")
				return nil
			},
		}
		r := setupDebentureRouter(NewDebentureHandler(svc))

		for _, freq := range []string{"9", `"hourly"`} {
			rec := doRequest(r, http.MethodPost, path, issueBody(freq))
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("%s: expected 422, got %d", freq, rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_FREQUENCY_CODE")
		}
	})

	t.Run("returns 400 for malformed id", func(t *testing.T) {
		r := setupDebentureRouter(NewDebentureHandler(&mockDebentureService{}))

		rec := doRequest(r, http.MethodPost, "/debentures/nope/issue", issueBody("1"))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestDebentureHandler_Getters(t *testing.T) {
	holder, _ := debenture.ParseHolder(testHolderHex)
	svc := &mockDebentureService{
		maturityFn:   func(context.Context, string) (*big.Int, error) { return big.NewInt(1735689600), nil },
		parValueFn:   func(context.Context, string) (*big.Int, error) { return big.NewInt(100000), nil },
		couponRateFn: func(context.Context, string) (*big.Int, error) { return big.NewInt(750), nil },
		couponFrequencyFn: func(context.Context, string) (debenture.Frequency, error) {
			return debenture.Weekly, nil
		},
		holderFn: func(context.Context, string) (debenture.Holder, error) { return holder, nil },
	}
	r := setupDebentureRouter(NewDebentureHandler(svc))
	base := "/debentures/" + testContractID

	tests := []struct {
		path  string
		field string
		want  string
	}{
		{"/maturity", "maturity", "1735689600"},
		{"/par_value", "par_value", "100000"},
		{"/coupon_rate", "coupon_rate", "750"},
		{"/debenture_holder", "debenture_holder", testHolderHex},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			rec := doRequest(r, http.MethodGet, base+tt.path, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if got := parseJSON(t, rec)[tt.field]; got != tt.want {
				t.Errorf("expected %s, got %v", tt.want, got)
			}
		})
	}

	t.Run("coupon_payment_frequency", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, base+"/coupon_payment_frequency", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		freq := parseJSON(t, rec)["coupon_payment_frequency"].(map[string]interface{})
		if freq["code"] != float64(4) || freq["name"] != "weekly" || freq["periods_per_year"] != float64(52) {
			t.Errorf("unexpected frequency %v", freq)
		}
	})

	t.Run("returns 404 for unknown contract", func(t *testing.T) {
		svc := &mockDebentureService{
			maturityFn: func(context.Context, string) (*big.Int, error) { return nil, apperrors.ErrContractNotFound },
		}
		r := setupDebentureRouter(NewDebentureHandler(svc))

		rec := doRequest(r, http.MethodGet, base+"/maturity", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CONTRACT_NOT_FOUND")
	})
}

func TestDebentureHandler_GetState(t *testing.T) {
	svc := &mockDebentureService{
		stateFn: func(context.Context, string) (*debenture.State, error) {
			huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
			return &debenture.State{
				Maturity:   big.NewInt(10),
				CouponRate: big.NewInt(750),
				ParValue:   huge,
				Frequency:  debenture.Daily,
			}, nil
		},
	}
	r := setupDebentureRouter(NewDebentureHandler(svc))

	rec := doRequest(r, http.MethodGet, "/debentures/"+testContractID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	state := parseJSON(t, rec)["debenture"].(map[string]interface{})
	if state["par_value"] != "123456789012345678901234567890" {
		t.Errorf("expected exact par value, got %v", state["par_value"])
	}
	if state["debenture_holder"] != strings.Repeat("00", 32) {
		t.Errorf("expected zero holder, got %v", state["debenture_holder"])
	}
	if state["contract_id"] != testContractID {
		t.Errorf("expected contract id %s, got %v", testContractID, state["contract_id"])
	}
}

func TestDebentureHandler_GetCouponPayment(t *testing.T) {
	path := "/debentures/" + testContractID + "/coupon_payment"

	t.Run("uses now query parameter", func(t *testing.T) {
		var gotNow *big.Int
		svc := &mockDebentureService{
			couponPaymentFn: func(_ context.Context, _ string, now *big.Int) (*big.Int, error) {
				gotNow = now
				return big.NewInt(187000), nil
			},
		}
		r := setupDebentureRouter(NewDebentureHandler(svc))

		rec := doRequest(r, http.MethodGet, path+"?now=1700000000", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotNow.Int64() != 1700000000 {
			t.Errorf("expected now 1700000000, got %s", gotNow)
		}
		result := parseJSON(t, rec)
		if result["coupon_payment"] != "187000" || result["now"] != "1700000000" {
			t.Errorf("unexpected response %v", result)
		}
	})

	t.Run("defaults to clock", func(t *testing.T) {
		var gotNow *big.Int
		svc := &mockDebentureService{
			couponPaymentFn: func(_ context.Context, _ string, now *big.Int) (*big.Int, error) {
				gotNow = now
				return new(big.Int), nil
			},
		}
		h := NewDebentureHandler(svc)
		h.clock = func() time.Time { return time.Unix(42, 0) }
		r := setupDebentureRouter(h)

		rec := doRequest(r, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotNow.Int64() != 42 {
			t.Errorf("expected now 42, got %s", gotNow)
		}
	})

	t.Run("returns 400 for non-integer now", func(t *testing.T) {
		r := setupDebentureRouter(NewDebentureHandler(&mockDebentureService{}))

		rec := doRequest(r, http.MethodGet, path+"?now=yesterday", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 422 for corrupt frequency", func(t *testing.T) {
		svc := &mockDebentureService{
			couponPaymentFn: func(context.Context, string, *big.Int) (*big.Int, error) {
				return nil, apperrors.ErrInvalidFrequencyCode
			},
		}
		r := setupDebentureRouter(NewDebentureHandler(svc))

		rec := doRequest(r, http.MethodGet, path+"?now=1", "")
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
	})
}

func TestDebentureHandler_ListFrequencies(t *testing.T) {
	r := setupDebentureRouter(NewDebentureHandler(&mockDebentureService{}))

	rec := doRequest(r, http.MethodGet, "/frequencies", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	list := parseJSON(t, rec)["frequencies"].([]interface{})
	if len(list) != 6 {
		t.Fatalf("expected 6 frequencies, got %d", len(list))
	}
	last := list[5].(map[string]interface{})
	if last["name"] != "daily" || last["periods_per_year"] != float64(365) {
		t.Errorf("unexpected last frequency %v", last)
	}
}
