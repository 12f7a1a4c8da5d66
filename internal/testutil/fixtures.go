package testutil

import (
	"fmt"
	"math/big"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"debenture/internal/debenture"
	"debenture/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestContract registers a contract with a unique label.
func CreateTestContract(t *testing.T, db *gorm.DB) *models.Contract {
	t.Helper()

	contract := &models.Contract{Label: fmt.Sprintf("contract-%d", nextID())}
	if err := db.Create(contract).Error; err != nil {
		t.Fatalf("failed to create test contract: %v", err)
	}
	return contract
}

// TestHolder returns a holder whose bytes are all b.
func TestHolder(b byte) debenture.Holder {
	var h debenture.Holder
	for i := range h {
		h[i] = b
	}
	return h
}

// TestIssueParams returns a quarterly 100000 par, 750 bps debenture maturing
// at the given timestamp.
func TestIssueParams(maturity int64) debenture.IssueParams {
	return debenture.IssueParams{
		Maturity:   big.NewInt(maturity),
		CouponRate: big.NewInt(750),
		ParValue:   big.NewInt(100000),
		Frequency:  debenture.Quarterly.Code(),
		Holder:     TestHolder(0xab),
	}
}
