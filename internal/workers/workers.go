package workers

import (
	"context"

	"github.com/MKhiriev/go-serble-keeper/internal/config"
	"github.com/MKhiriev/go-serble-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers of the client. They are idle
// until Run is called and stop when ctx is cancelled or Stop is called.
func NewWorkers(ctx context.Context, services *service.ClientServices, cfg config.ClientWorkers) *Workers {
	return &Workers{workers: []Worker{
		NewSessionWatcher(ctx, services.SessionWatchJob, cfg.SessionCheckInterval),
	}}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker that can be stopped, in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if s, ok := w.workers[i].(Stopper); ok {
			s.Stop()
		}
	}
}
