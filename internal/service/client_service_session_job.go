package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/models"
)

type sessionWatchJob struct {
	sessions SessionManager
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionWatchJob creates a sessionWatchJob that calls sessions.Validate on
// a ticker. The job is idle until Start is called.
func NewSessionWatchJob(sessions SessionManager, logger *logger.Logger) SessionWatchJob {
	return &sessionWatchJob{sessions: sessions, logger: logger}
}

// Start implements SessionWatchJob. It stops any previously running job, then
// launches a background goroutine that validates the session every interval.
// If interval is zero or negative it defaults to 5 minutes. Ticks are skipped
// while nobody is signed in. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *sessionWatchJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// Stop implements SessionWatchJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *sessionWatchJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *sessionWatchJob) tick(ctx context.Context) {
	if j.sessions.Get().Token == "" {
		return
	}

	res := j.sessions.Validate(ctx)
	if !res.Success && res.Flag == models.FlagUnauthorized {
		j.logger.Info().Str("func", "sessionWatchJob.tick").Msg("session is no longer valid")
	}
}
