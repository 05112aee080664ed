package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Dispatcher delivers queued messages through a pool of workers. It is
// strictly best-effort: enqueueing never blocks the caller, delivery
// failures are logged and dropped, and nothing is retried.
type Dispatcher struct {
	mailer      Mailer
	workers     int
	sendTimeout time.Duration
	logger      *slog.Logger

	jobs   chan Message
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDispatcher constructs the mail worker pool.
func NewDispatcher(mailer Mailer, workers, queueSize int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		mailer:      mailer,
		workers:     workers,
		sendTimeout: 30 * time.Second,
		logger:      logger,
		jobs:        make(chan Message, queueSize),
	}
}

// Start launches background delivery.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Enqueue queues a message for delivery without blocking. A full queue
// drops the message; the order or request that triggered it is already
// committed and must not be held up.
func (d *Dispatcher) Enqueue(msg Message) {
	select {
	case d.jobs <- msg:
	default:
		d.logger.Warn("mail queue full, dropping message", slog.String("subject", msg.Subject))
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-d.jobs:
			if !ok {
				return
			}
			d.deliver(ctx, msg)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, msg Message) {
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	if err := d.mailer.Send(sendCtx, msg); err != nil {
		d.logger.Error("mail delivery failed",
			slog.String("subject", msg.Subject),
			slog.String("error", err.Error()),
		)
	}
}
