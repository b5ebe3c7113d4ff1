package formats

import (
	"fmt"
	"strings"

	"github.com/xtraact/relay/internal/engine"
	"github.com/xtraact/relay/internal/model"
)

// Fixed output targets. Video always lands in the same container so playback
// compatibility is consistent; audio always transcodes to the same codec.
const (
	VideoContainer = "mp4"
	AudioContainer = "m4a"
	AudioCodec     = "mp3"
	AudioBitrate   = "192K"

	// AudioExpression selects the best audio-only stream with a whole-file
	// fallback the post-processor can strip.
	AudioExpression = "bestaudio/best"

	// FinalFallback is always the last alternative; it guarantees the
	// expression never yields zero candidates.
	FinalFallback = "best"

	alternativeSeparator = "/"
)

// Build translates the classified intent, requested media kind, and optional
// quality ceiling into extraction parameters. Credential path and proxy are
// attached verbatim when present; empty values stay empty so the engine
// never sees placeholder markers.
func Build(intent model.Intent, kind model.MediaKind, qualityCeiling int, cookiesPath, proxy, outputTemplate string) engine.ExtractionParams {
	params := engine.ExtractionParams{
		URL:         intent.URL,
		CookiesPath: cookiesPath,
		Proxy:       proxy,
	}

	if intent.IsCarousel() {
		// Carousel: every constituent entry's direct URL is wanted as-is.
		// Full traversal, no format filter, no post-processing, no bytes.
		params.TraversePlaylist = true
		params.Download = false
		return params
	}

	params.Download = true
	params.OutputTemplate = outputTemplate

	if kind == model.MediaKindAudio {
		// The ceiling applies to video only; audio parameters are identical
		// for every platform.
		params.Format = AudioExpression
		params.Post = &engine.PostProcess{
			ExtractAudio: true,
			AudioCodec:   AudioCodec,
			AudioQuality: AudioBitrate,
		}
		return params
	}

	variant := VariantFor(intent.Platform)
	params.Format = videoExpression(variant, qualityCeiling)
	post := &engine.PostProcess{MergeContainer: VideoContainer}
	if variant.Recode {
		post.RecodeContainer = VideoContainer
	}
	params.Post = post
	return params
}

// videoExpression assembles the ordered, pipe-delimited format-selection
// expression. Alternatives are evaluated by the engine left to right.
func videoExpression(variant Variant, ceiling int) string {
	var alternatives []string

	if variant.TargetWidth > 0 && variant.TargetHeight > 0 {
		alternatives = append(alternatives, fmt.Sprintf(
			"bestvideo[width=%d][height=%d][ext=%s]+bestaudio[ext=%s]",
			variant.TargetWidth, variant.TargetHeight, VideoContainer, AudioContainer))
	}

	if ceiling > 0 && variant.ApplyCeiling {
		alternatives = append(alternatives,
			fmt.Sprintf("bestvideo[height<=%d][ext=%s]+bestaudio[ext=%s]", ceiling, VideoContainer, AudioContainer),
			fmt.Sprintf("bestvideo[width<=%d][ext=%s]+bestaudio[ext=%s]", ceiling, VideoContainer, AudioContainer))
	} else {
		// No ceiling: same alternative with the dimension constraint skipped.
		alternatives = append(alternatives,
			fmt.Sprintf("bestvideo[ext=%s]+bestaudio[ext=%s]", VideoContainer, AudioContainer))
	}

	alternatives = append(alternatives,
		fmt.Sprintf("best[ext=%s]", VideoContainer),
		FinalFallback)

	return strings.Join(alternatives, alternativeSeparator)
}
