package outbox

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pinelodge/internal/infra/broker/kafka"
)

var ErrWorkerNotConfigured = errors.New("outbox: worker requires store and producer")

// Queue is the claimable event feed the worker drains.
type Queue interface {
	Claim(ctx context.Context, workerID string) (*EventDocument, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, next time.Time, errMsg string) error
}

type Producer interface {
	PublishEvent(ctx context.Context, topic string, event kafka.Event) error
}

// Worker polls the outbox and publishes claimed events as CloudEvents.
type Worker struct {
	Store       Queue
	Producer    Producer
	Logger      *slog.Logger
	Interval    time.Duration
	TopicPrefix string
	Source      string
	ID          string
	Backoff     []time.Duration
}

// Run polls until ctx is cancelled. Poll and publish errors are logged and
// retried on a later tick; a flaky store must not stop the drain.
func (w *Worker) Run(ctx context.Context) error {
	if w.Store == nil || w.Producer == nil {
		return ErrWorkerNotConfigured
	}
	ticker := time.NewTicker(w.interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.processOnce(ctx); err != nil && w.Logger != nil {
				w.Logger.Warn("outbox poll failed", "worker", w.workerID(), "error", err)
			}
		}
	}
}

func (w *Worker) processOnce(ctx context.Context) error {
	doc, err := w.Store.Claim(ctx, w.workerID())
	if err != nil || doc == nil {
		return err
	}
	event := kafka.Event{
		ID:         doc.ID,
		Name:       doc.Name,
		Source:     w.source(),
		Key:        doc.Aggregate,
		OccurredAt: doc.OccurredAt,
		Data:       doc.Payload,
		Headers:    doc.Headers,
	}
	if err := w.Producer.PublishEvent(ctx, w.topicFor(doc.Name), event); err != nil {
		_ = w.Store.MarkFailed(ctx, doc.ID, w.nextRetry(doc.Attempts), err.Error())
		return err
	}
	return w.Store.MarkSent(ctx, doc.ID)
}

func (w *Worker) topicFor(name string) string {
	base := name
	if idx := strings.IndexRune(name, '.'); idx > 0 {
		base = name[:idx]
	}
	if w.TopicPrefix != "" {
		return w.TopicPrefix + base
	}
	return base
}

func (w *Worker) nextRetry(attempts int) time.Time {
	backoff := w.Backoff
	if len(backoff) == 0 {
		backoff = []time.Duration{time.Second, 5 * time.Second, 30 * time.Second}
	}
	if attempts >= len(backoff) {
		attempts = len(backoff) - 1
	}
	return time.Now().UTC().Add(backoff[attempts])
}

func (w *Worker) interval() time.Duration {
	if w.Interval > 0 {
		return w.Interval
	}
	return 500 * time.Millisecond
}

func (w *Worker) workerID() string {
	if w.ID != "" {
		return w.ID
	}
	return "outbox-worker"
}

func (w *Worker) source() string {
	if w.Source != "" {
		return w.Source
	}
	return "pinelodge"
}

var _ Queue = (*Store)(nil)
