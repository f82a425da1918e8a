package demo

import (
	"context"
	"time"

	"github.com/nalin-pixel/cliqo-receptionist/internal/observability/metrics"
	"github.com/nalin-pixel/cliqo-receptionist/pkg/logging"
)

const defaultWriteTimeout = 3 * time.Second

// Recorder submits records to the store and drops the outcome. A failed or
// invalid write is logged and counted, never returned.
type Recorder struct {
	store   Store
	timeout time.Duration
	metrics *metrics.DemoMetrics
	logger  *logging.Logger
}

func NewRecorder(store Store, timeout time.Duration, m *metrics.DemoMetrics, logger *logging.Logger) *Recorder {
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Recorder{
		store:   store,
		timeout: timeout,
		metrics: m,
		logger:  logger,
	}
}

// Record writes rec synchronously. The write outlives a cancelled request
// context but not the recorder timeout.
func (r *Recorder) Record(ctx context.Context, sessionID string, rec Record) {
	collection := rec.Collection()

	if err := check(rec); err != nil {
		r.metrics.ObserveWrite(collection, "invalid", 0)
		r.logger.Warn("demo: record rejected",
			"collection", collection,
			"session_id", sessionID,
			"error", err,
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	start := time.Now()
	_, err := r.store.Insert(ctx, collection, rec)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		r.metrics.ObserveWrite(collection, "error", elapsed)
		r.logger.Warn("demo: store write dropped",
			"collection", collection,
			"session_id", sessionID,
			"error", err,
		)
		return
	}
	r.metrics.ObserveWrite(collection, "ok", elapsed)
}
