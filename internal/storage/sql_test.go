package storage

import (
	"context"
	"math/big"
	"testing"

	"debenture/internal/debenture"
	"debenture/internal/models"
	"debenture/internal/testutil"
)

func TestSQLStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		contract := testutil.CreateTestContract(t, db)
		st := NewSQLStore(db, contract.ID)

		_, ok, err := st.Get(ctx, debenture.KeyParValue)
		testutil.AssertNoError(t, err)
		if ok {
			t.Error("expected missing key")
		}
	})

	t.Run("set_overwrites", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		contract := testutil.CreateTestContract(t, db)
		st := NewSQLStore(db, contract.ID)

		testutil.AssertNoError(t, st.Set(ctx, debenture.KeyParValue, []byte("100")))
		testutil.AssertNoError(t, st.Set(ctx, debenture.KeyParValue, []byte("200")))

		v, ok, err := st.Get(ctx, debenture.KeyParValue)
		testutil.AssertNoError(t, err)
		if !ok || string(v) != "200" {
			t.Errorf("expected 200, got %q", v)
		}

		var count int64
		db.Model(&models.ContractEntry{}).Where("contract_id = ?", contract.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected a single row, got %d", count)
		}
	})

	t.Run("issue_and_read", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		contract := testutil.CreateTestContract(t, db)
		st := NewSQLStore(db, contract.ID)

		testutil.AssertNoError(t, debenture.Issue(ctx, st, testutil.TestIssueParams(2000)))

		state, err := debenture.Load(ctx, st)
		testutil.AssertNoError(t, err)
		if state.Frequency != debenture.Quarterly || state.Holder != testutil.TestHolder(0xab) {
			t.Errorf("unexpected state %+v", state)
		}

		pay, err := debenture.CouponPayment(ctx, st, big.NewInt(1999))
		testutil.AssertNoError(t, err)
		if pay.Int64() != 187000 {
			t.Errorf("expected 187000, got %s", pay)
		}
	})

	t.Run("scoped_per_contract", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		p := NewSQLProvider(db)
		a := testutil.CreateTestContract(t, db)
		b := testutil.CreateTestContract(t, db)

		testutil.AssertNoError(t, p.ForContract(a.ID).Set(ctx, debenture.KeyMaturity, []byte("1")))
		if _, ok, _ := p.ForContract(b.ID).Get(ctx, debenture.KeyMaturity); ok {
			t.Error("contracts must not share state")
		}
		if p.Backend() != BackendSQL {
			t.Errorf("expected backend %s, got %s", BackendSQL, p.Backend())
		}
	})
}
