package download

import (
	"context"

	"github.com/xtraact/relay/internal/model"
)

// Events is the notification contract consumed by interactive frontends.
// Both callbacks are optional.
type Events struct {
	// Progress receives percentages in [0,100], monotonically
	// non-decreasing within one request.
	Progress func(percent int)

	// Done receives exactly one terminal completion event per request,
	// after all progress events.
	Done func(model.Completion)
}

// Orchestrator defines the interface for the download orchestration service.
type Orchestrator interface {
	Execute(ctx context.Context, req model.Request) (*model.OrchestrationResult, error)
	ExecuteWithEvents(ctx context.Context, req model.Request, events Events) (*model.OrchestrationResult, error)
}
