package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/notification"
)

// Config tunes the background dispatcher.
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

// dispatcher buffers notifications in memory and batch-inserts them from
// background workers. Delivery is best effort: a full queue drops the
// notification rather than block a payroll run.
type dispatcher struct {
	repo   notification.Repository
	config Config
	logger *slog.Logger

	queue  chan notification.CreateRequest
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewDispatcher starts the background workers and returns the dispatcher.
func NewDispatcher(repo notification.Repository, cfg Config, logger *slog.Logger) notification.Dispatcher {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	d := &dispatcher{
		repo:   repo,
		config: cfg,
		logger: logger,
		queue:  make(chan notification.CreateRequest, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	logger.Info("notification dispatcher started",
		"workers", cfg.WorkerCount,
		"batch_size", cfg.BatchSize,
		"flush_interval", cfg.FlushInterval)

	return d
}

// Notify enqueues without blocking; when the queue is full the notification
// is dropped and logged.
func (d *dispatcher) Notify(req notification.CreateRequest) {
	select {
	case d.queue <- req:
	default:
		d.logger.Warn("notification queue full, dropping", "type", req.Type, "title", req.Title)
	}
}

// Close stops the workers after flushing whatever is buffered.
func (d *dispatcher) Close() {
	close(d.stopCh)
	d.wg.Wait()
}

func (d *dispatcher) worker(id int) {
	defer d.wg.Done()

	batch := make([]notification.CreateRequest, 0, d.config.BatchSize)
	ticker := time.NewTicker(d.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		notifications := make([]notification.Notification, len(batch))
		for i, req := range batch {
			notifications[i] = notification.Notification{
				ID:      uuid.Must(uuid.NewV7()).String(),
				UserID:  req.UserID,
				Type:    req.Type,
				Title:   req.Title,
				Message: req.Message,
			}
		}

		if err := d.repo.BulkInsert(ctx, notifications); err != nil {
			d.logger.Error("failed to insert notification batch", "worker", id, "count", len(batch), "error", err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case req := <-d.queue:
			batch = append(batch, req)
			if len(batch) >= d.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-d.stopCh:
			// Drain what is already queued before the final flush.
			for {
				select {
				case req := <-d.queue:
					batch = append(batch, req)
					if len(batch) >= d.config.BatchSize {
						flush()
					}
					continue
				default:
				}
				break
			}
			flush()
			return
		}
	}
}
