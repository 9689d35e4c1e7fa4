package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-serble-keeper/internal/service"
)

// SessionWatcher runs the session watch job as a background worker.
type SessionWatcher struct {
	ctx      context.Context
	job      service.SessionWatchJob
	interval time.Duration
}

func NewSessionWatcher(ctx context.Context, job service.SessionWatchJob, interval time.Duration) *SessionWatcher {
	return &SessionWatcher{ctx: ctx, job: job, interval: interval}
}

// Run starts the job and returns immediately.
func (w *SessionWatcher) Run() {
	w.job.Start(w.ctx, w.interval)
}

func (w *SessionWatcher) Stop() {
	w.job.Stop()
}
