package engine

import "fmt"

// PostProcess is the declarative post-processing directive attached to an
// extraction. Zero value means no post-processing.
type PostProcess struct {
	// ExtractAudio transcodes the best audio stream to AudioCodec.
	ExtractAudio bool

	// AudioCodec is the target audio codec, e.g. "mp3".
	AudioCodec string

	// AudioQuality is the target audio bitrate, e.g. "192K".
	AudioQuality string

	// MergeContainer remuxes/merges the selected streams into this
	// container, e.g. "mp4".
	MergeContainer string

	// RecodeContainer forces a re-encode into this container for sources
	// whose streams do not remux cleanly.
	RecodeContainer string
}

// ExtractionParams is the complete, explicit configuration for one engine
// invocation. Every recognized field is enumerated here; absent optional
// values are empty, never placeholder markers.
type ExtractionParams struct {
	URL string

	// Format is the ordered, pipe-delimited format-selection expression.
	// Empty means the engine's default selection.
	Format string

	// CookiesPath is the writable credential copy to present, if any.
	CookiesPath string

	// Proxy is the outbound indirection endpoint, if any.
	Proxy string

	// OutputTemplate is the engine's output path template. Required when
	// Download is set.
	OutputTemplate string

	// TraversePlaylist enables traversal of multi-entry sources.
	TraversePlaylist bool

	// Download retrieves bytes to local storage; when false only resolved
	// metadata and entry URLs are wanted.
	Download bool

	// Post is the optional post-processing directive.
	Post *PostProcess

	// Progress, when set, receives percentage updates in [0,100] during a
	// downloading extraction.
	Progress func(percent int)
}

// Validate checks that the parameter bundle is internally consistent.
func (p ExtractionParams) Validate() error {
	if p.URL == "" {
		return fmt.Errorf("extraction params: URL is required")
	}
	if p.Download && p.OutputTemplate == "" {
		return fmt.Errorf("extraction params: output template is required for download")
	}
	if p.Post != nil && p.Post.ExtractAudio && p.Post.AudioCodec == "" {
		return fmt.Errorf("extraction params: audio codec is required for audio extraction")
	}
	return nil
}
