// Package storage provides the debenture state store backends: in-memory,
// SQL through GORM, and Redis. Each backend scopes its keys to one contract
// instance.
package storage

import (
	"io"

	"debenture/internal/debenture"
)

// Backend names accepted in configuration.
const (
	BackendMemory = "memory"
	BackendSQL    = "sql"
	BackendRedis  = "redis"
)

// Provider resolves the state store for a contract instance.
type Provider interface {
	ForContract(contractID string) debenture.Store
	Backend() string
	io.Closer
}

// instrumentedProvider wraps every store it hands out with metrics.
type instrumentedProvider struct {
	Provider
}

// WithMetrics returns a Provider whose stores record Prometheus metrics.
func WithMetrics(p Provider) Provider {
	return instrumentedProvider{Provider: p}
}

func (p instrumentedProvider) ForContract(contractID string) debenture.Store {
	return Instrumented(p.Provider.ForContract(contractID), p.Backend())
}
