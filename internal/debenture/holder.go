package debenture

import (
	"encoding/hex"
	"fmt"
	"strings"

	apperrors "debenture/internal/errors"
)

// HolderSize is the byte length of a holder identity.
const HolderSize = 32

// Holder is the opaque identity of the current rights holder.
type Holder [HolderSize]byte

// HolderFromBytes copies b into a Holder. b must be exactly HolderSize bytes.
func HolderFromBytes(b []byte) (Holder, error) {
	var h Holder
	if len(b) != HolderSize {
		return h, apperrors.WithMessage(apperrors.ErrInvalidHolder,
			fmt.Sprintf("Debenture holder must be %d bytes, got %d", HolderSize, len(b)))
	}
	copy(h[:], b)
	return h, nil
}

// ParseHolder decodes 64 hex digits, with or without a 0x prefix.
func ParseHolder(s string) (Holder, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return Holder{}, apperrors.Wrap(apperrors.ErrInvalidHolder, err)
	}
	return HolderFromBytes(b)
}

// IsZero reports whether h is the default all-zero identity.
func (h Holder) IsZero() bool { return h == Holder{} }

func (h Holder) String() string { return hex.EncodeToString(h[:]) }

func (h Holder) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *Holder) UnmarshalText(text []byte) error {
	parsed, err := ParseHolder(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
