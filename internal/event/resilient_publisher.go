package event

import (
	"context"
	"sync"
	"time"

	"github.com/mossvale/farmstead/internal/logger"
)

// retryEntry carries a failed event through the retry queue.
type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps an event Bus with a bounded retry queue and a
// dead-letter file. Publish failures never propagate to callers: the
// event is retried with exponential backoff by a background worker, and
// dropped to the dead-letter file once retries are exhausted or the
// queue is full.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a ResilientPublisher and starts its retry
// worker. The dead-letter file is opened eagerly so a bad path fails fast.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()

	return rp, nil
}

// PublishWithRetry attempts an immediate publish and hands failures to
// the retry worker. When the retry queue is full the event goes straight
// to the dead-letter file.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	log.Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	entry := retryEntry{event: event, attempts: 1, lastErr: err}
	select {
	case p.retryQueue <- entry:
	default:
		log.Warn(LogMsgRetryQueueFull, "event_type", event.Type)
		if dlErr := p.deadLetter.Write(event, entry.attempts, err); dlErr != nil {
			log.Error(LogMsgDeadLetterWriteFailed, "error", dlErr)
		}
	}
}

// Publish satisfies the Bus interface so services can publish through the
// resilient path without knowing about it. It never returns an error.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus.
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.processRetry(entry)
		case <-p.shutdown:
			// Drain whatever is still queued, then exit. Backoff waits
			// are skipped once shutdown is signalled.
			for {
				select {
				case entry := <-p.retryQueue:
					p.processRetry(entry)
				default:
					return
				}
			}
		}
	}
}

// processRetry runs the full backoff schedule for one event inline.
func (p *ResilientPublisher) processRetry(entry retryEntry) {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for retry := 1; retry <= p.maxRetries; retry++ {
		select {
		case <-time.After(CalculateRetryDelay(p.retryDelay, retry)):
		case <-p.shutdown:
		}

		err := p.bus.Publish(ctx, entry.event)
		if err == nil {
			log.Info(LogMsgEventRetrySucceeded,
				"event_type", entry.event.Type,
				"attempt", entry.attempts+1)
			return
		}

		entry.lastErr = err
		entry.attempts++
		log.Warn(LogMsgEventRetryFailed,
			"event_type", entry.event.Type,
			"attempt", entry.attempts,
			"error", err)
	}

	log.Warn(LogMsgEventRetryExhausted,
		"event_type", entry.event.Type,
		"attempts", entry.attempts)
	if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
		log.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// Shutdown stops the retry worker, letting it drain the queue, and closes
// the dead-letter file. Returns the context error if draining outlives it.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
