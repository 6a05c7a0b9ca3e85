package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/combo-pricing-service/internal/domain/model"
	"github.com/guttosm/combo-pricing-service/internal/logger"
	"github.com/guttosm/combo-pricing-service/internal/service"
)

// AsyncLoggerConfig sizes the log shipping worker pool.
type AsyncLoggerConfig struct {
	BufferSize   int
	NumWorkers   int
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the production defaults.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLoggerStats counts what happened to enqueued entries.
type AsyncLoggerStats struct {
	Enqueued int64 `json:"enqueued"`
	Dropped  int64 `json:"dropped"`
	Written  int64 `json:"written"`
	Failed   int64 `json:"failed"`
}

// AsyncLogger ships log entries to MongoDB from a bounded worker pool. When the
// buffer is full entries are dropped; request latency never waits on the log sink.
type AsyncLogger struct {
	loggingService service.LoggingService
	entryCh        chan *model.LogEntry
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup
	writeTimeout   time.Duration

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewAsyncLogger starts the worker pool. It returns nil without a logging service.
func NewAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}
	def := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		entryCh:        make(chan *model.LogEntry, cfg.BufferSize),
		stopCh:         make(chan struct{}),
		writeTimeout:   cfg.WriteTimeout,
	}
	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}
	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	for {
		select {
		case entry := <-al.entryCh:
			al.write(entry)
		case <-al.stopCh:
			for {
				select {
				case entry := <-al.entryCh:
					al.write(entry)
				default:
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) write(entry *model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.loggingService.CreateLog(ctx, entry); err != nil {
		al.failed.Add(1)
		log := logger.WithRequestID(entry.RequestID)
		log.Warn().Err(err).Msg("failed to ship log entry")
		return
	}
	al.written.Add(1)
}

// Log enqueues entry and reports whether it was accepted.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if al == nil || entry == nil {
		return false
	}
	select {
	case <-al.stopCh:
		al.dropped.Add(1)
		return false
	default:
	}

	select {
	case al.entryCh <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.dropped.Add(1)
		return false
	}
}

// Stop drains queued entries and waits for the workers.
func (al *AsyncLogger) Stop() {
	if al == nil {
		return
	}
	al.stopOnce.Do(func() {
		close(al.stopCh)
		al.wg.Wait()
	})
}

// Stats returns a snapshot of the counters.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	if al == nil {
		return AsyncLoggerStats{}
	}
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Failed:   al.failed.Load(),
	}
}
