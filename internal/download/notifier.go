package download

import (
	"sync"

	"github.com/xtraact/relay/internal/model"
)

// Percentage bounds for progress events.
const (
	minPercent = 0
	maxPercent = 100
)

// notifier enforces the event contract for one request: progress percentages
// never decrease and exactly one completion is delivered.
type notifier struct {
	mu     sync.Mutex
	events Events
	last   int
	done   bool
}

func newNotifier(events Events) *notifier {
	return &notifier{events: events, last: -1}
}

// progress forwards percent when it advances. Engine callbacks may arrive
// from another goroutine, so delivery is serialized.
func (n *notifier) progress(percent int) {
	if n.events.Progress == nil {
		return
	}
	if percent < minPercent {
		percent = minPercent
	}
	if percent > maxPercent {
		percent = maxPercent
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.done || percent <= n.last {
		return
	}
	n.last = percent
	n.events.Progress(percent)
}

// complete delivers the terminal event once, after which progress is muted.
func (n *notifier) complete(result *model.OrchestrationResult, err error) {
	n.mu.Lock()
	if n.done {
		n.mu.Unlock()
		return
	}
	n.done = true
	n.mu.Unlock()

	if n.events.Done == nil {
		return
	}
	completion := model.Completion{Err: err}
	if result != nil {
		completion.Title = result.Title
		completion.Uploader = result.Uploader
	}
	n.events.Done(completion)
}
