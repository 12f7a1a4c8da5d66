// Package debenture models a single fixed-coupon debenture held in a
// contract-scoped key-value store.
//
// Every operation takes the Store explicitly and re-reads it; nothing is
// cached between calls. Absent fields read as their zero value: 0 for
// integers, the all-zero Holder and Annually for the frequency.
package debenture

import (
	"context"
	"fmt"
	"math/big"

	apperrors "debenture/internal/errors"
)

// IssueParams are the attributes written by Issue. Frequency is the raw wire
// code and is validated before anything is written.
type IssueParams struct {
	Maturity   *big.Int
	CouponRate *big.Int // basis points per year
	ParValue   *big.Int
	Frequency  uint32
	Holder     Holder
}

// State is a decoded snapshot of every stored field.
type State struct {
	Maturity   *big.Int
	CouponRate *big.Int
	ParValue   *big.Int
	Frequency  Frequency
	Holder     Holder
}

func (p IssueParams) validate() (Frequency, error) {
	freq, err := FrequencyFromCode(p.Frequency)
	if err != nil {
		return 0, err
	}
	switch {
	case p.Maturity == nil:
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "maturity is required")
	case p.CouponRate == nil:
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "coupon_rate is required")
	case p.ParValue == nil:
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "par_value is required")
	case p.CouponRate.Sign() < 0 || p.ParValue.Sign() < 0:
		return 0, apperrors.ErrNegativeAmount
	}
	return freq, nil
}

// Issue writes all five attributes. Calling it again overwrites the previous
// issue; callers that need issue-once semantics must enforce them.
func Issue(ctx context.Context, st Store, p IssueParams) error {
	freq, err := p.validate()
	if err != nil {
		return err
	}

	entries := []Entry{
		{Key: KeyMaturity, Value: encodeInt(p.Maturity)},
		{Key: KeyCouponRate, Value: encodeInt(p.CouponRate)},
		{Key: KeyParValue, Value: encodeInt(p.ParValue)},
		{Key: KeyDebentureHolder, Value: append([]byte(nil), p.Holder[:]...)},
		{Key: KeyCouponPaymentFrequency, Value: encodeFrequency(freq)},
	}

	if bs, ok := st.(BatchStore); ok {
		if err := bs.SetBatch(ctx, entries); err != nil {
			return apperrors.Wrap(apperrors.ErrStoreFailure, fmt.Errorf("issue: %w", err))
		}
		return nil
	}
	for _, e := range entries {
		if err := st.Set(ctx, e.Key, e.Value); err != nil {
			return apperrors.Wrap(apperrors.ErrStoreFailure, fmt.Errorf("set %s: %w", e.Key, err))
		}
	}
	return nil
}

// Maturity returns the timestamp after which no coupon accrues.
func Maturity(ctx context.Context, st Store) (*big.Int, error) {
	return readInt(ctx, st, KeyMaturity)
}

// ParValue returns the face value repaid at maturity.
func ParValue(ctx context.Context, st Store) (*big.Int, error) {
	return readInt(ctx, st, KeyParValue)
}

// CouponRate returns the annual rate in basis points.
func CouponRate(ctx context.Context, st Store) (*big.Int, error) {
	return readInt(ctx, st, KeyCouponRate)
}

// CouponFrequency returns the stored payment frequency.
func CouponFrequency(ctx context.Context, st Store) (Frequency, error) {
	return readFrequency(ctx, st)
}

// DebentureHolder returns the current holder identity.
func DebentureHolder(ctx context.Context, st Store) (Holder, error) {
	return readHolder(ctx, st)
}

// Load reads every field.
func Load(ctx context.Context, st Store) (*State, error) {
	var (
		s   State
		err error
	)
	if s.Maturity, err = Maturity(ctx, st); err != nil {
		return nil, err
	}
	if s.CouponRate, err = CouponRate(ctx, st); err != nil {
		return nil, err
	}
	if s.ParValue, err = ParValue(ctx, st); err != nil {
		return nil, err
	}
	if s.Frequency, err = CouponFrequency(ctx, st); err != nil {
		return nil, err
	}
	if s.Holder, err = DebentureHolder(ctx, st); err != nil {
		return nil, err
	}
	return &s, nil
}
