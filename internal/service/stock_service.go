package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/parvezislam45/inventory/internal/apierror"
	"github.com/parvezislam45/inventory/internal/dto"
	"github.com/parvezislam45/inventory/internal/model"
	"github.com/parvezislam45/inventory/internal/money"
	"github.com/parvezislam45/inventory/internal/repository"
	"github.com/parvezislam45/inventory/internal/worker"
)

const (
	// dailyCacheTTL bounds staleness if a refresh job is lost; the worker
	// normally rebuilds the entry right after each append.
	dailyCacheTTL = 15 * time.Minute

	dateLayout = "2006-01-02"
)

// DailyCacheKey is the Redis key holding the cached daily summary for a UTC
// calendar date (YYYY-MM-DD).
func DailyCacheKey(date string) string { return "stock:daily:" + date }

// StockService maintains the append-only stock ledger and its aggregates.
// AppendEvent is the only place product stock is mutated.
type StockService interface {
	AppendEvent(ctx context.Context, productID uuid.UUID, req dto.RestockRequest) (*dto.StockEventResponse, error)
	DailySummary(ctx context.Context, date string) (*dto.DailySummaryResponse, error)
	History(ctx context.Context) ([]dto.StockHistoryGroup, error)
	BrandSummary(ctx context.Context) ([]dto.BrandStockSummary, error)
	// RebuildDailySummary recomputes one day's summary and rewrites the Redis
	// cache entry. Called by the background worker after each append.
	RebuildDailySummary(ctx context.Context, date string) error
}

type stockService struct {
	repo        repository.StockRepository
	productRepo repository.ProductRepository
	rdb         *redis.Client
	dispatcher  *worker.Dispatcher
}

func NewStockService(
	repo repository.StockRepository,
	productRepo repository.ProductRepository,
	rdb *redis.Client,
	dispatcher *worker.Dispatcher,
) StockService {
	return &stockService{repo: repo, productRepo: productRepo, rdb: rdb, dispatcher: dispatcher}
}

// ── AppendEvent ──────────────────────────────────────────────────────────────
// Locks the product row so two simultaneous appends against the same product
// cannot race on previous_stock; the event and the stock update commit
// together or not at all.

func (s *stockService) AppendEvent(ctx context.Context, productID uuid.UUID, req dto.RestockRequest) (*dto.StockEventResponse, error) {
	if req.AddedStock == 0 {
		return nil, fmt.Errorf("%w: added_stock must be non-zero", apierror.ErrValidation)
	}

	var event model.StockEvent
	var productName string
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		product, err := s.productRepo.FindByIDForUpdateTx(tx, productID)
		if err != nil {
			return fmt.Errorf("%w: product %s", apierror.ErrNotFound, productID)
		}

		previous := product.Stock
		current := previous + req.AddedStock
		if current < 0 {
			return fmt.Errorf("%w: stock cannot go below zero (have %d, delta %d)",
				apierror.ErrValidation, previous, req.AddedStock)
		}

		event = model.StockEvent{
			ProductID:       productID,
			PreviousStock:   previous,
			AddedStock:      req.AddedStock,
			CurrentStock:    current,
			TPPrice:         product.TPPrice,
			TotalStockPrice: product.TPPrice.MulQty(req.AddedStock),
		}
		productName = product.ProductName

		if err := s.repo.CreateEventTx(tx, &event); err != nil {
			return err
		}
		return s.productRepo.UpdateStockTx(tx, productID, current)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Best-effort cache refresh; readers fall back to recomputing on a miss.
	if s.dispatcher != nil {
		date := time.Now().UTC().Format(dateLayout)
		if err := s.dispatcher.EnqueueSummaryRefresh(ctx, date); err != nil {
			log.Warn().Err(err).Str("date", date).Msg("failed to enqueue stock summary refresh")
		}
	}

	resp := mapStockEvent(&event)
	resp.ProductName = productName
	return &resp, nil
}

// ── Aggregates ───────────────────────────────────────────────────────────────
// Calendar-day boundaries are UTC: the ledger stores timestamps, not dates,
// and every reader derives the same [00:00, 24:00) UTC window.

func (s *stockService) DailySummary(ctx context.Context, date string) (*dto.DailySummaryResponse, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apierror.ErrValidation)
	}

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, DailyCacheKey(date)).Result(); err == nil {
			var cached dto.DailySummaryResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	summary, err := s.computeDailySummary(ctx, date)
	if err != nil {
		return nil, err
	}
	s.cacheDailySummary(ctx, date, summary)
	return summary, nil
}

func (s *stockService) RebuildDailySummary(ctx context.Context, date string) error {
	summary, err := s.computeDailySummary(ctx, date)
	if err != nil {
		return err
	}
	s.cacheDailySummary(ctx, date, summary)
	return nil
}

func (s *stockService) computeDailySummary(ctx context.Context, date string) (*dto.DailySummaryResponse, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apierror.ErrValidation)
	}
	events, err := s.repo.ListEventsBetween(ctx, day, day.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	items := make([]dto.StockEventResponse, 0, len(events))
	grand := money.Zero()
	for i := range events {
		items = append(items, mapStockEvent(&events[i]))
		grand = grand.Add(events[i].TotalStockPrice)
	}
	return &dto.DailySummaryResponse{Date: date, Items: items, GrandTotalPrice: grand}, nil
}

func (s *stockService) cacheDailySummary(ctx context.Context, date string, summary *dto.DailySummaryResponse) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, DailyCacheKey(date), raw, dailyCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("date", date).Msg("failed to cache daily stock summary")
	}
}

// History buckets the full ledger by UTC date, newest date first. Within a
// bucket events keep their newest-first order.
func (s *stockService) History(ctx context.Context) ([]dto.StockHistoryGroup, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	var groups []dto.StockHistoryGroup
	index := make(map[string]int)
	for i := range events {
		date := events[i].CreatedAt.UTC().Format(dateLayout)
		gi, ok := index[date]
		if !ok {
			gi = len(groups)
			index[date] = gi
			groups = append(groups, dto.StockHistoryGroup{Date: date, TotalValue: money.Zero()})
		}
		groups[gi].Items = append(groups[gi].Items, mapStockEvent(&events[i]))
		groups[gi].TotalValue = groups[gi].TotalValue.Add(events[i].TotalStockPrice)
	}
	return groups, nil
}

// BrandSummary reflects current inventory value per brand — a point-in-time
// snapshot over Product, not historical ledger flow.
func (s *stockService) BrandSummary(ctx context.Context) ([]dto.BrandStockSummary, error) {
	return s.productRepo.BrandSummary(ctx)
}

func mapStockEvent(ev *model.StockEvent) dto.StockEventResponse {
	name := ""
	if ev.Product != nil {
		name = ev.Product.ProductName
	}
	return dto.StockEventResponse{
		ID:              ev.ID.String(),
		ProductName:     name,
		PreviousStock:   ev.PreviousStock,
		AddedStock:      ev.AddedStock,
		CurrentStock:    ev.CurrentStock,
		TPPrice:         ev.TPPrice,
		TotalStockPrice: ev.TotalStockPrice,
		CreatedAt:       ev.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
