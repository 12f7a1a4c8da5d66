// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	integerRegex = regexp.MustCompile(`^[+-]?[0-9]+$`)
	holderRegex  = regexp.MustCompile(`^(0[xX])?[0-9a-fA-F]{64}$`)
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("bigint", validateBigInt)
	_ = v.RegisterValidation("nonneg_bigint", validateNonNegBigInt)
	_ = v.RegisterValidation("holder", validateHolder)
	_ = v.RegisterValidation("contract_id", validateContractID)
}

// ParseBigInt parses a base-10 integer of any size.
func ParseBigInt(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if !integerRegex.MatchString(s) {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}

func validateBigInt(fl validator.FieldLevel) bool {
	_, ok := ParseBigInt(fl.Field().String())
	return ok
}

func validateNonNegBigInt(fl validator.FieldLevel) bool {
	v, ok := ParseBigInt(fl.Field().String())
	return ok && v.Sign() >= 0
}

func validateHolder(fl validator.FieldLevel) bool {
	return holderRegex.MatchString(fl.Field().String())
}

func validateContractID(fl validator.FieldLevel) bool {
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}
