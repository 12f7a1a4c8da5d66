package debenture

import (
	"context"
	"strconv"
)

// FieldKey identifies one instrument attribute in a contract's store.
type FieldKey uint32

const (
	KeyMaturity FieldKey = iota
	KeyCouponRate
	KeyParValue
	KeyDebentureHolder
	KeyCouponPaymentFrequency
)

// FieldKeys lists every key in declaration order.
var FieldKeys = []FieldKey{
	KeyMaturity,
	KeyCouponRate,
	KeyParValue,
	KeyDebentureHolder,
	KeyCouponPaymentFrequency,
}

func (k FieldKey) String() string {
	switch k {
	case KeyMaturity:
		return "maturity"
	case KeyCouponRate:
		return "coupon_rate"
	case KeyParValue:
		return "par_value"
	case KeyDebentureHolder:
		return "debenture_holder"
	case KeyCouponPaymentFrequency:
		return "coupon_payment_frequency"
	}
	return "FieldKey(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// Store is the persistent state of a single contract instance. A missing key
// is reported with ok == false and a nil error.
type Store interface {
	Get(ctx context.Context, key FieldKey) (value []byte, ok bool, err error)
	Set(ctx context.Context, key FieldKey, value []byte) error
}

// Entry is a single key/value pair written by SetBatch.
type Entry struct {
	Key   FieldKey
	Value []byte
}

// BatchStore is implemented by stores that can apply several writes so that
// readers observe either none or all of them.
type BatchStore interface {
	Store
	SetBatch(ctx context.Context, entries []Entry) error
}
