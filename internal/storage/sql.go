package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"debenture/internal/debenture"
	"debenture/internal/models"
)

// SQLStore keeps a contract's fields as rows of contract_entries.
type SQLStore struct {
	db         *gorm.DB
	contractID string
}

var _ debenture.BatchStore = (*SQLStore)(nil)

// NewSQLStore scopes db to one contract.
func NewSQLStore(db *gorm.DB, contractID string) *SQLStore {
	return &SQLStore{db: db, contractID: contractID}
}

func (s *SQLStore) Get(ctx context.Context, key debenture.FieldKey) ([]byte, bool, error) {
	var entry models.ContractEntry
	err := s.db.WithContext(ctx).
		Where("contract_id = ? AND field_key = ?", s.contractID, uint32(key)).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key debenture.FieldKey, value []byte) error {
	return upsertEntries(s.db.WithContext(ctx), []models.ContractEntry{s.row(key, value)})
}

// SetBatch writes all entries in a single transaction.
func (s *SQLStore) SetBatch(ctx context.Context, entries []debenture.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	rows := make([]models.ContractEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, s.row(e.Key, e.Value))
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return upsertEntries(tx, rows)
	})
}

func (s *SQLStore) row(key debenture.FieldKey, value []byte) models.ContractEntry {
	return models.ContractEntry{
		ContractID: s.contractID,
		FieldKey:   uint32(key),
		Value:      value,
		UpdatedAt:  time.Now().UTC(),
	}
}

func upsertEntries(db *gorm.DB, rows []models.ContractEntry) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "contract_id"}, {Name: "field_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rows).Error
}

// SQLProvider scopes a shared *gorm.DB per contract.
type SQLProvider struct {
	db *gorm.DB
}

// NewSQLProvider creates a provider over db. The contract_entries table must
// already exist.
func NewSQLProvider(db *gorm.DB) *SQLProvider {
	return &SQLProvider{db: db}
}

func (p *SQLProvider) ForContract(contractID string) debenture.Store {
	return NewSQLStore(p.db, contractID)
}

func (p *SQLProvider) Backend() string { return BackendSQL }

// Close is a no-op; the database manager owns the connection.
func (p *SQLProvider) Close() error { return nil }
