package hist

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/yanun0323/errors"

	"gorm.io/gorm"

	"main/internal/flow"
)

// HistoryRecord is one archived pipeline record, payload stored as JSON.
type HistoryRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Family    string `gorm:"index:idx_hist_family_key"`
	Key       string `gorm:"index:idx_hist_family_key"`
	Payload   string
	CreatedAt time.Time
}

// DBStore archives records into PostgreSQL, append-only.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore migrates the history table and returns the store.
func NewDBStore(db *gorm.DB) (*DBStore, error) {
	if err := db.AutoMigrate(&HistoryRecord{}); err != nil {
		return nil, errors.Wrap(err, "migrate history table")
	}
	return &DBStore{db: db}, nil
}

// Save appends one record under a family and key.
func (s *DBStore) Save(family, key string, v any) error {
	payload, err := sonic.MarshalString(v)
	if err != nil {
		return errors.Wrap(err, "marshal history payload")
	}
	rec := HistoryRecord{Family: family, Key: key, Payload: payload}
	return errors.Wrap(s.db.Create(&rec).Error, "insert history record")
}

// DBSink adapts one record family of the store to a pipeline listener.
func DBSink[T any](store *DBStore, family string, key func(T) string) flow.ListenerFuncs[T] {
	save := func(v T) error {
		return store.Save(family, key(v), v)
	}
	return flow.ListenerFuncs[T]{OnAdd: save, OnUpdate: save}
}
