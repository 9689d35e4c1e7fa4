package service

import (
	"context"

	"github.com/MKhiriev/go-serble-keeper/internal/logger"
	"github.com/MKhiriev/go-serble-keeper/internal/utils"
)

// tracer gives every service operation its own trace id. The id travels in
// the context to the adapter (X-Trace-Id) and in a child logger.
type tracer struct {
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func newTracer(log *logger.Logger) tracer {
	return tracer{ids: utils.NewUUIDGenerator(), logger: log}
}

func (t tracer) begin(ctx context.Context) (context.Context, *logger.Logger) {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		return t.logger.WithTraceID(ctx, traceID)
	}

	traceID := t.ids.Generate()
	ctx = utils.WithTraceID(ctx, traceID)
	return t.logger.WithTraceID(ctx, traceID)
}
