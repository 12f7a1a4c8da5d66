package debenture

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	apperrors "debenture/internal/errors"
)

// Frequency is how often a coupon is paid. The value is the wire code stored
// under KeyCouponPaymentFrequency; the zero value is Annually.
type Frequency uint32

const (
	Annually Frequency = iota
	Biannually
	Quarterly
	Monthly
	Weekly
	Daily
)

var frequencies = [...]struct {
	name    string
	periods int64
}{
	Annually:   {"annually", 1},
	Biannually: {"biannually", 2},
	Quarterly:  {"quarterly", 4},
	Monthly:    {"monthly", 12},
	Weekly:     {"weekly", 52},
	Daily:      {"daily", 365},
}

// Frequencies lists every supported frequency in code order.
func Frequencies() []Frequency {
	out := make([]Frequency, len(frequencies))
	for i := range frequencies {
		out[i] = Frequency(i)
	}
	return out
}

// FrequencyFromCode validates a raw wire code. Unknown codes are rejected,
// never coerced to a default.
func FrequencyFromCode(code uint32) (Frequency, error) {
	if !Frequency(code).valid() {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidFrequencyCode,
			fmt.Sprintf("Unknown coupon payment frequency code %d", code))
	}
	return Frequency(code), nil
}

// ParseFrequency accepts either a frequency name ("quarterly") or its code ("2").
func ParseFrequency(s string) (Frequency, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, f := range frequencies {
		if f.name == s {
			return Frequency(i), nil
		}
	}
	code, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidFrequencyCode,
			fmt.Sprintf("Unknown coupon payment frequency %q", s))
	}
	return FrequencyFromCode(uint32(code))
}

// Code returns the stored wire code.
func (f Frequency) Code() uint32 { return uint32(f) }

func (f Frequency) valid() bool { return int(f) < len(frequencies) }

// PeriodsPerYear returns the number of coupon periods in a year, or 0 for a
// value that is not a known frequency.
func (f Frequency) PeriodsPerYear() int64 {
	if !f.valid() {
		return 0
	}
	return frequencies[f].periods
}

func (f Frequency) periodsBig() *big.Int {
	return big.NewInt(f.PeriodsPerYear())
}

func (f Frequency) String() string {
	if !f.valid() {
		return "Frequency(" + strconv.FormatUint(uint64(f), 10) + ")"
	}
	return frequencies[f].name
}

// MarshalText encodes the frequency by name.
func (f Frequency) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, apperrors.ErrInvalidFrequencyCode
	}
	return []byte(f.String()), nil
}

// UnmarshalText accepts a name or a numeric code.
func (f *Frequency) UnmarshalText(text []byte) error {
	parsed, err := ParseFrequency(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// UnmarshalJSON accepts a JSON number code (2) or a name or code string
// ("quarterly", "2"). Unknown values fail with ErrInvalidFrequencyCode.
func (f *Frequency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return f.UnmarshalText([]byte(s))
	}
	var code uint32
	if err := json.Unmarshal(data, &code); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidFrequencyCode,
			fmt.Sprintf("Unknown coupon payment frequency %s", data))
	}
	parsed, err := FrequencyFromCode(code)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
