package service

import (
	"context"
	"io"
	"log/slog"
)

// StoreEvent captures a notable progress-store occurrence, typically a
// storage failure that was swallowed rather than surfaced to the caller.
type StoreEvent struct {
	Op     string
	Err    error
	Fields map[string]any
}

// StoreObserver receives progress-store events.
type StoreObserver interface {
	ObserveStore(ctx context.Context, event StoreEvent)
}

// NoopStoreObserver ignores all events.
type NoopStoreObserver struct{}

func (NoopStoreObserver) ObserveStore(context.Context, StoreEvent) {}

type logStoreObserver struct {
	logger *slog.Logger
}

// NewLogStoreObserver writes store events to the provided writer.
func NewLogStoreObserver(w io.Writer) StoreObserver {
	if w == nil {
		return NoopStoreObserver{}
	}
	return &logStoreObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logStoreObserver) ObserveStore(ctx context.Context, event StoreEvent) {
	attrs := make([]any, 0, 4+len(event.Fields)*2)
	attrs = append(attrs, "op", event.Op)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.WarnContext(ctx, "progress_store", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "progress_store", attrs...)
}
