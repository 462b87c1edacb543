package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/events-api/internal/api/metrics"
	"github.com/campushub/events-api/internal/core/domain"
	"github.com/campushub/events-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	insertTimeout  = 5 * time.Second
)

// Dispatcher routes audit entries to a fixed set of workers using consistent
// hashing on the actor id, so one admin's actions are recorded in order.
// Writes happen off the request path; a failed write is logged and dropped.
type Dispatcher struct {
	workers []chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an entry to the worker responsible for its actor. Enqueue
// never blocks: when the worker's buffer is full (or its worker has already
// stopped during shutdown) the entry is dropped and logged, so a request can
// never hang on the audit path.
func (d *Dispatcher) Enqueue(entry domain.AuditEntry) {
	idx := d.shardIndex(entry.ActorID)
	select {
	case d.workers[idx] <- entry:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditWritesTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Str("actor_id", entry.ActorID).
			Str("action", entry.Action).
			Int("worker_id", idx).
			Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps an actor id deterministically to a worker index.
func (d *Dispatcher) shardIndex(actorID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actorID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			d.insert(ctx, id, entry)
			metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}

func (d *Dispatcher) insert(ctx context.Context, workerID int, entry domain.AuditEntry) {
	insertCtx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	if err := d.repo.Insert(insertCtx, &entry); err != nil {
		metrics.AuditWritesTotal.WithLabelValues("error").Inc()
		d.log.Error().Err(err).
			Str("actor_id", entry.ActorID).
			Str("action", entry.Action).
			Int("worker_id", workerID).
			Msg("audit write failed")
		return
	}
	metrics.AuditWritesTotal.WithLabelValues("ok").Inc()
}
