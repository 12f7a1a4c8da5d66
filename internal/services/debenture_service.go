package services

import (
	"context"
	"errors"
	"hash/fnv"
	"math/big"
	"sync"

	"debenture/internal/debenture"
	apperrors "debenture/internal/errors"
	"debenture/internal/logger"
	"debenture/internal/metrics"
	"debenture/internal/storage"
)

// lockStripes bounds the number of mutexes; contracts hashing to the same
// stripe share one.
const lockStripes = 64

// debentureService resolves a contract's state store and runs the core
// operations against it. Calls for the same contract are serialized.
type debentureService struct {
	contracts ContractServicer
	provider  storage.Provider
	audit     AuditServicer

	locks [lockStripes]sync.Mutex
}

// NewDebentureService creates a new DebentureServicer.
func NewDebentureService(contracts ContractServicer, provider storage.Provider, audit AuditServicer) DebentureServicer {
	return &debentureService{contracts: contracts, provider: provider, audit: audit}
}

// withStore verifies the contract exists and runs fn while holding the
// contract's lock.
func (s *debentureService) withStore(ctx context.Context, contractID string, fn func(debenture.Store) error) error {
	if _, err := s.contracts.GetContract(ctx, contractID); err != nil {
		return err
	}

	mu := s.lockFor(contractID)
	mu.Lock()
	defer mu.Unlock()

	return fn(s.provider.ForContract(contractID))
}

func (s *debentureService) lockFor(contractID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(contractID))
	return &s.locks[h.Sum32()%lockStripes]
}

// Issue writes the instrument attributes and records an audit entry.
func (s *debentureService) Issue(ctx context.Context, contractID string, params debenture.IssueParams, ipAddress string) error {
	err := s.withStore(ctx, contractID, func(st debenture.Store) error {
		return debenture.Issue(ctx, st, params)
	})
	if err != nil {
		metrics.IssuesTotal.WithLabelValues("error").Inc()
		if !errors.Is(err, apperrors.ErrContractNotFound) {
			logger.Get().Warnw("issue rejected", "contract_id", contractID, "error", err)
		}
		return err
	}

	metrics.IssuesTotal.WithLabelValues("ok").Inc()
	freq, _ := debenture.FrequencyFromCode(params.Frequency)
	logger.Get().Infow("debenture issued",
		"contract_id", contractID,
		"maturity", params.Maturity.String(),
		"coupon_rate_bps", params.CouponRate.String(),
		"par_value", params.ParValue.String(),
		"frequency", freq.String(),
	)
	s.audit.Log("ISSUE", "debenture", contractID, ipAddress, map[string]any{
		"maturity":                 params.Maturity.String(),
		"coupon_rate":              params.CouponRate.String(),
		"par_value":                params.ParValue.String(),
		"coupon_payment_frequency": freq,
		"debenture_holder":         params.Holder.String(),
	})
	return nil
}

func (s *debentureService) readInt(ctx context.Context, contractID string, get func(context.Context, debenture.Store) (*big.Int, error)) (*big.Int, error) {
	var out *big.Int
	err := s.withStore(ctx, contractID, func(st debenture.Store) error {
		v, err := get(ctx, st)
		out = v
		return err
	})
	return out, err
}

// Maturity returns the stored maturity timestamp.
func (s *debentureService) Maturity(ctx context.Context, contractID string) (*big.Int, error) {
	return s.readInt(ctx, contractID, debenture.Maturity)
}

// ParValue returns the stored face value.
func (s *debentureService) ParValue(ctx context.Context, contractID string) (*big.Int, error) {
	return s.readInt(ctx, contractID, debenture.ParValue)
}

// CouponRate returns the stored rate in basis points.
func (s *debentureService) CouponRate(ctx context.Context, contractID string) (*big.Int, error) {
	return s.readInt(ctx, contractID, debenture.CouponRate)
}

// CouponFrequency returns the stored payment frequency.
func (s *debentureService) CouponFrequency(ctx context.Context, contractID string) (debenture.Frequency, error) {
	var out debenture.Frequency
	err := s.withStore(ctx, contractID, func(st debenture.Store) error {
		v, err := debenture.CouponFrequency(ctx, st)
		out = v
		return err
	})
	return out, err
}

// DebentureHolder returns the stored holder identity.
func (s *debentureService) DebentureHolder(ctx context.Context, contractID string) (debenture.Holder, error) {
	var out debenture.Holder
	err := s.withStore(ctx, contractID, func(st debenture.Store) error {
		v, err := debenture.DebentureHolder(ctx, st)
		out = v
		return err
	})
	return out, err
}

// CouponPayment computes the coupon owed at now.
func (s *debentureService) CouponPayment(ctx context.Context, contractID string, now *big.Int) (*big.Int, error) {
	var coupon debenture.Coupon
	err := s.withStore(ctx, contractID, func(st debenture.Store) error {
		var err error
		coupon, err = debenture.EvaluateCoupon(ctx, st, now)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrContractNotFound) {
			metrics.CouponPayments.WithLabelValues(metrics.OutcomeError).Inc()
		}
		return nil, err
	}

	outcome := metrics.OutcomeAccruing
	if coupon.Matured {
		outcome = metrics.OutcomeMatured
	}
	metrics.CouponPayments.WithLabelValues(outcome).Inc()
	logger.Get().Debugw("coupon payment computed",
		"contract_id", contractID,
		"now", now.String(),
		"outcome", outcome,
		"payment", coupon.Payment.String(),
	)
	return coupon.Payment, nil
}

// State returns every stored field.
func (s *debentureService) State(ctx context.Context, contractID string) (*debenture.State, error) {
	var out *debenture.State
	err := s.withStore(ctx, contractID, func(st debenture.Store) error {
		v, err := debenture.Load(ctx, st)
		out = v
		return err
	})
	return out, err
}
