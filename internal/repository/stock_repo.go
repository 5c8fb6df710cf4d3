package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/parvezislam45/inventory/internal/model"
)

// StockRepository persists and reads the append-only stock event ledger.
// Events are never updated or deleted.
type StockRepository interface {
	CreateEventTx(tx *gorm.DB, ev *model.StockEvent) error
	// ListEventsBetween returns events with from ≤ created_at < to, oldest
	// first. Callers derive calendar-day windows in UTC.
	ListEventsBetween(ctx context.Context, from, to time.Time) ([]model.StockEvent, error)
	ListEvents(ctx context.Context) ([]model.StockEvent, error)
	DB() *gorm.DB
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) DB() *gorm.DB { return r.db }

func (r *stockRepo) CreateEventTx(tx *gorm.DB, ev *model.StockEvent) error {
	return tx.Create(ev).Error
}

func (r *stockRepo) ListEventsBetween(ctx context.Context, from, to time.Time) ([]model.StockEvent, error) {
	var events []model.StockEvent
	err := r.db.WithContext(ctx).Preload("Product").
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}

func (r *stockRepo) ListEvents(ctx context.Context) ([]model.StockEvent, error) {
	var events []model.StockEvent
	err := r.db.WithContext(ctx).Preload("Product").
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}
