package storage

import (
	"context"
	"time"

	"debenture/internal/debenture"
	"debenture/internal/metrics"
)

type instrumentedStore struct {
	next    debenture.Store
	backend string
}

// Instrumented decorates st with latency and error metrics labelled by
// backend and operation. The result implements debenture.BatchStore only
// when st does.
func Instrumented(st debenture.Store, backend string) debenture.Store {
	base := instrumentedStore{next: st, backend: backend}
	if bs, ok := st.(debenture.BatchStore); ok {
		return instrumentedBatchStore{instrumentedStore: base, batch: bs}
	}
	return base
}

func (s instrumentedStore) observe(op string, start time.Time, err error) {
	metrics.StoreOperationDuration.WithLabelValues(s.backend, op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StoreErrors.WithLabelValues(s.backend, op).Inc()
	}
}

func (s instrumentedStore) Get(ctx context.Context, key debenture.FieldKey) ([]byte, bool, error) {
	start := time.Now()
	v, ok, err := s.next.Get(ctx, key)
	s.observe("get", start, err)
	return v, ok, err
}

func (s instrumentedStore) Set(ctx context.Context, key debenture.FieldKey, value []byte) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.observe("set", start, err)
	return err
}

type instrumentedBatchStore struct {
	instrumentedStore
	batch debenture.BatchStore
}

func (s instrumentedBatchStore) SetBatch(ctx context.Context, entries []debenture.Entry) error {
	start := time.Now()
	err := s.batch.SetBatch(ctx, entries)
	s.observe("set_batch", start, err)
	return err
}
