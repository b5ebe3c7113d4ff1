package download

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/xtraact/relay/internal/classify"
	"github.com/xtraact/relay/internal/engine"
	"github.com/xtraact/relay/internal/formats"
	"github.com/xtraact/relay/internal/model"
	"github.com/xtraact/relay/internal/secrets"
	"github.com/xtraact/relay/internal/staging"
)

// DefaultEngineTimeout bounds one engine invocation, which covers network
// transfer plus local transcoding.
const DefaultEngineTimeout = 15 * time.Minute

// Service orchestrates download requests. It holds no per-request state and
// is safe for concurrent use; each request gets its own credential copy and
// staging prefix.
type Service struct {
	engine      engine.Engine
	classifier  *classify.Classifier
	provisioner *secrets.Provisioner
	secrets     *secrets.Store
	artifacts   *staging.Store
	timeout     time.Duration
}

// NewService creates the orchestrator. A non-positive timeout falls back to
// DefaultEngineTimeout.
func NewService(eng engine.Engine, classifier *classify.Classifier, provisioner *secrets.Provisioner, store *secrets.Store, artifacts *staging.Store, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultEngineTimeout
	}
	return &Service{
		engine:      eng,
		classifier:  classifier,
		provisioner: provisioner,
		secrets:     store,
		artifacts:   artifacts,
		timeout:     timeout,
	}
}

// Execute runs one request without event delivery.
func (s *Service) Execute(ctx context.Context, req model.Request) (*model.OrchestrationResult, error) {
	return s.ExecuteWithEvents(ctx, req, Events{})
}

// ExecuteWithEvents runs one request: classify, provision credentials,
// resolve proxy, build parameters, invoke the engine exactly once, resolve
// the outcome. Cleanup of the credential copy is guaranteed on every exit
// path, including failures and timeouts.
func (s *Service) ExecuteWithEvents(ctx context.Context, req model.Request, events Events) (result *model.OrchestrationResult, err error) {
	notify := newNotifier(events)
	defer func() {
		notify.complete(result, err)
	}()

	// Input errors abort before any resource is provisioned.
	if err = req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	intent, err := s.classifier.Classify(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	// Credential failures degrade to credential-free operation inside
	// Provision; a nil handle releases as a no-op.
	handle, _ := s.provisioner.Provision(intent.Platform)
	defer handle.Release()

	proxy, hasProxy := s.secrets.ProxyURL()
	if hasProxy {
		log.Printf("Using proxy for download")
	}

	token := requestToken()
	params := formats.Build(intent, req.Kind, req.QualityCeiling, handle.Path(), proxy, s.artifacts.OutputTemplate(token))
	params.Progress = notify.progress

	report, err := s.engine.Extract(ctx, params)
	if err != nil {
		return nil, engineError(err)
	}

	if intent.IsCarousel() {
		return collectAssets(intent, report)
	}
	return s.resolveStagedFile(intent, report)
}

// collectAssets maps a metadata-only carousel run to its asset URLs. No
// artifact is staged.
func collectAssets(intent model.Intent, report *engine.Report) (*model.OrchestrationResult, error) {
	if len(report.Entries) == 0 {
		return nil, model.NewError(model.ErrorKindEngine, "No downloadable entries found in this post.")
	}
	images := make([]model.ImageAsset, 0, len(report.Entries))
	for i, entry := range report.Entries {
		id := entry.ID
		if id == "" {
			id = fmt.Sprintf("%d", i+1)
		}
		images = append(images, model.ImageAsset{URL: entry.URL, ID: id})
	}
	return &model.OrchestrationResult{
		Type:     model.ResultTypeImages,
		Title:    pickTitle(report.Title, intent.Title, ""),
		Uploader: report.Uploader,
		Images:   images,
	}, nil
}

// resolveStagedFile trusts the engine's post-download report for the final
// filename. Re-deriving it from the pre-download template would resurface
// stale-extension bugs after audio transcoding.
func (s *Service) resolveStagedFile(intent model.Intent, report *engine.Report) (*model.OrchestrationResult, error) {
	if len(report.Files) == 0 {
		return nil, model.NewError(model.ErrorKindStaging, "Download finished but no output file was reported.")
	}
	path := report.Files[0]
	if _, err := os.Stat(path); err != nil {
		return nil, model.WrapError(model.ErrorKindStaging, "Download finished but the output file is missing.", err)
	}

	servingKey := filepath.Base(path)
	return &model.OrchestrationResult{
		Type:       model.ResultTypeMedia,
		Title:      pickTitle(report.Title, intent.Title, servingKey),
		Uploader:   report.Uploader,
		ServingKey: servingKey,
	}, nil
}

// engineError classifies an engine failure for reporting. Anti-automation
// rejections get the stable user-facing message instead of raw diagnostics.
func engineError(err error) error {
	if model.KindOf(err) != model.ErrorKindEngine {
		return err
	}
	return model.WrapError(model.ErrorKindEngine, model.UserMessage(err), err)
}

// pickTitle returns the first non-empty candidate, stripping the extension
// from a filename fallback.
func pickTitle(candidates ...string) string {
	for i, title := range candidates {
		if title == "" {
			continue
		}
		if i == len(candidates)-1 {
			if idx := len(title) - len(filepath.Ext(title)); idx > 0 {
				return title[:idx]
			}
		}
		return title
	}
	return "Unknown title"
}

// requestToken generates a unique per-request token using UUID v7 for
// time-ordered names, with a timestamp fallback if UUID generation fails.
func requestToken() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}
