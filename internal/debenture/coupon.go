package debenture

import (
	"context"
	"math/big"

	apperrors "debenture/internal/errors"
)

var basisPointDivisor = big.NewInt(100)

// Coupon is the result of evaluating a debenture at a point in time.
type Coupon struct {
	Payment *big.Int
	Matured bool // now is strictly past maturity
}

// CouponPayment returns the coupon owed at now. Once now is strictly past
// maturity the result is zero; at maturity itself a coupon is still paid.
// It never writes to st.
func CouponPayment(ctx context.Context, st Store, now *big.Int) (*big.Int, error) {
	c, err := EvaluateCoupon(ctx, st, now)
	if err != nil {
		return nil, err
	}
	return c.Payment, nil
}

// EvaluateCoupon is CouponPayment that also reports whether the instrument
// had matured at now. Each field is read once.
func EvaluateCoupon(ctx context.Context, st Store, now *big.Int) (Coupon, error) {
	if now == nil {
		return Coupon{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "now is required")
	}

	maturity, err := Maturity(ctx, st)
	if err != nil {
		return Coupon{}, err
	}
	par, err := ParValue(ctx, st)
	if err != nil {
		return Coupon{}, err
	}
	rate, err := CouponRate(ctx, st)
	if err != nil {
		return Coupon{}, err
	}
	freq, err := CouponFrequency(ctx, st)
	if err != nil {
		return Coupon{}, err
	}

	if now.Cmp(maturity) > 0 {
		return Coupon{Payment: new(big.Int), Matured: true}, nil
	}
	payment, err := PeriodCoupon(par, rate, freq)
	if err != nil {
		return Coupon{}, err
	}
	return Coupon{Payment: payment}, nil
}

// PeriodCoupon evaluates (par * (rate / periods)) / 100 with truncating
// integer division at each step. The rate is divided by the period count
// before multiplying, so for example 750bp quarterly on 100000 yields
// 100000*187/100 = 187000, not 187500. An unknown frequency fails with
// ErrInvalidFrequencyCode.
func PeriodCoupon(par, rate *big.Int, freq Frequency) (*big.Int, error) {
	if _, err := FrequencyFromCode(freq.Code()); err != nil {
		return nil, err
	}
	perPeriod := new(big.Int).Quo(rate, freq.periodsBig())
	out := new(big.Int).Mul(par, perPeriod)
	return out.Quo(out, basisPointDivisor), nil
}
