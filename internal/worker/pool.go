package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueStockSummary = "jobs:stock_summary"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SummaryRefreshPayload asks the summary worker to rebuild the cached daily
// stock summary for one UTC date (YYYY-MM-DD).
type SummaryRefreshPayload struct {
	Date string `json:"date"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueSummaryRefresh pushes a daily-summary rebuild job to Redis.
func (d *Dispatcher) EnqueueSummaryRefresh(ctx context.Context, date string) error {
	return d.enqueue(ctx, QueueStockSummary, "stock_summary", SummaryRefreshPayload{Date: date})
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// SummaryRebuilder recomputes and re-caches the daily stock summary for a
// date. Implemented by the stock service; declared here so the worker does
// not import it.
type SummaryRebuilder interface {
	RebuildDailySummary(ctx context.Context, date string) error
}

// Handlers holds the job handlers wired in at startup.
type Handlers struct {
	Summary SummaryRebuilder
}

// StartWorkerPool launches numWorkers goroutines consuming the job queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers Handlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers Handlers, id int) {
	queues := []string{QueueStockSummary}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, handlers Handlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	switch job.Type {
	case "stock_summary":
		var payload SummaryRefreshPayload
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			log.Error().Err(err).Msg("failed to unmarshal stock_summary payload")
			return
		}
		if handlers.Summary == nil {
			log.Warn().Msg("no summary handler wired, dropping job")
			return
		}
		if err := handlers.Summary.RebuildDailySummary(ctx, payload.Date); err != nil {
			log.Error().Str("date", payload.Date).Err(err).Msg("daily summary rebuild failed")
			return
		}
		log.Info().Str("date", payload.Date).Msg("daily summary rebuilt")
	default:
		log.Warn().Str("type", job.Type).Str("queue", queue).Msg("unknown job type")
	}
}
