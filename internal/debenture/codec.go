package debenture

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	apperrors "debenture/internal/errors"
)

// Integers are stored as base-10 text so every backend can hold values of
// any size and sign. The holder is stored as its raw 32 bytes.

func encodeInt(v *big.Int) []byte { return []byte(v.Text(10)) }

func encodeFrequency(f Frequency) []byte {
	return []byte(strconv.FormatUint(uint64(f.Code()), 10))
}

func read(ctx context.Context, st Store, key FieldKey) ([]byte, bool, error) {
	raw, ok, err := st.Get(ctx, key)
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrStoreFailure, fmt.Errorf("get %s: %w", key, err))
	}
	return raw, ok, nil
}

func readInt(ctx context.Context, st Store, key FieldKey) (*big.Int, error) {
	raw, ok, err := read(ctx, st, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return new(big.Int), nil
	}
	v, parsed := new(big.Int).SetString(string(raw), 10)
	if !parsed {
		return nil, apperrors.Wrap(apperrors.ErrCorruptState, fmt.Errorf("%s: not an integer: %q", key, raw))
	}
	return v, nil
}

func readHolder(ctx context.Context, st Store) (Holder, error) {
	raw, ok, err := read(ctx, st, KeyDebentureHolder)
	if err != nil || !ok {
		return Holder{}, err
	}
	h, err := HolderFromBytes(raw)
	if err != nil {
		return Holder{}, apperrors.Wrap(apperrors.ErrCorruptState, err)
	}
	return h, nil
}

// readFrequency fails with ErrInvalidFrequencyCode when the stored code is
// not one of the known frequencies.
func readFrequency(ctx context.Context, st Store) (Frequency, error) {
	raw, ok, err := read(ctx, st, KeyCouponPaymentFrequency)
	if err != nil || !ok {
		return Annually, err
	}
	code, err := strconv.ParseUint(string(raw), 10, 32)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCorruptState, fmt.Errorf("%s: %w", KeyCouponPaymentFrequency, err))
	}
	return FrequencyFromCode(uint32(code))
}
