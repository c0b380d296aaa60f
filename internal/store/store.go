// Package store persists JSON documents behind the key-value contract the
// rest of the application depends on.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one persisted document, keyed by kind and id.
type Record struct {
	Kind      string         `gorm:"primaryKey;type:text"`
	ID        string         `gorm:"primaryKey;type:text"`
	Data      datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Record) TableName() string { return "records" }

// Store is the persistence contract: read-your-writes key-value access
// scoped to one record kind.
type Store[T any] interface {
	Get(ctx context.Context, id string) (*T, error)
	Set(ctx context.Context, id string, value *T) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*T, error)
}

type documentStore[T any] struct {
	db   *gorm.DB
	kind string
}

// ForKind returns a Store reading and writing documents of the given kind.
func ForKind[T any](db *gorm.DB, kind string) Store[T] {
	return &documentStore[T]{db: db, kind: kind}
}

func (s *documentStore[T]) Get(ctx context.Context, id string) (*T, error) {
	var rec Record
	err := s.db.WithContext(ctx).
		Where(&Record{Kind: s.kind, ID: id}).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decode[T](rec.Data)
}

func (s *documentStore[T]) Set(ctx context.Context, id string, value *T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	rec := Record{
		Kind:      s.kind,
		ID:        id,
		Data:      datatypes.JSON(data),
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&rec).Error
}

func (s *documentStore[T]) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).
		Where(&Record{Kind: s.kind, ID: id}).
		Delete(&Record{}).Error
}

func (s *documentStore[T]) ListAll(ctx context.Context) ([]*T, error) {
	var recs []Record
	err := s.db.WithContext(ctx).
		Where(&Record{Kind: s.kind}).
		Order("created_at ASC, id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	out := make([]*T, 0, len(recs))
	for _, rec := range recs {
		value, err := decode[T](rec.Data)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}

// DeleteAll removes every document of this kind. Used by destructive restore.
func (s *documentStore[T]) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Where(&Record{Kind: s.kind}).
		Delete(&Record{}).Error
}

// Wiper is implemented by stores that support destructive restore.
type Wiper interface {
	DeleteAll(ctx context.Context) error
}

func decode[T any](data []byte) (*T, error) {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return &value, nil
}
