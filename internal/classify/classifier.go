// Package classify determines a request's intent: which platform a URL
// belongs to and whether it resolves to a single asset or a carousel. One
// metadata-only probe per request, no fallback probes.
package classify

import (
	"context"
	"strings"

	"github.com/xtraact/relay/internal/engine"
	"github.com/xtraact/relay/internal/formats"
	"github.com/xtraact/relay/internal/model"
)

// ClassificationFailedMessage is surfaced when the probe is rejected or the
// URL is unreachable.
const ClassificationFailedMessage = "Could not retrieve information for this URL."

// Classifier probes URLs through the extraction engine.
type Classifier struct {
	engine engine.Engine
}

// NewClassifier creates a classifier backed by eng.
func NewClassifier(eng engine.Engine) *Classifier {
	return &Classifier{engine: eng}
}

// Classify performs exactly one metadata-only probe with playlist traversal
// enabled and derives platform, shape, and title. A failed probe aborts the
// request with a classification error; no retry is attempted.
func (c *Classifier) Classify(ctx context.Context, url string) (model.Intent, error) {
	info, err := c.engine.Probe(ctx, url)
	if err != nil {
		return model.Intent{}, model.WrapError(model.ErrorKindClassification, ClassificationFailedMessage, err)
	}

	intent := model.Intent{
		URL:      url,
		Platform: PlatformFromExtractor(info.Extractor),
		Shape:    model.ShapeSingle,
		Title:    info.Title,
		Heights:  info.Heights,
	}
	if len(info.Entries) > 1 {
		intent.Shape = model.ShapeMulti
	}
	return intent, nil
}

// PlatformFromExtractor maps the engine's reported extractor identity onto
// the known platform set. Unmatched identities classify as generic.
func PlatformFromExtractor(extractor string) model.Platform {
	extractor = strings.ToLower(extractor)
	for _, platform := range formats.KnownPlatforms() {
		if strings.Contains(extractor, platform.String()) {
			return platform
		}
	}
	return model.PlatformGeneric
}
