package model

import "strings"

// MediaKind is the kind of media the client asked for.
type MediaKind string

const (
	// MediaKindVideo requests the merged audio+video stream.
	MediaKindVideo MediaKind = "video"

	// MediaKindAudio requests an audio-only extraction.
	MediaKindAudio MediaKind = "audio"
)

// String returns the string representation of MediaKind.
func (mk MediaKind) String() string {
	return string(mk)
}

// IsValid reports whether the kind is one of the supported values.
func (mk MediaKind) IsValid() bool {
	return mk == MediaKindVideo || mk == MediaKindAudio
}

// Request is one client download request. It lives for exactly one call and
// is never persisted.
type Request struct {
	URL string `json:"url"`

	// Kind selects video or audio extraction. Defaults to video when the
	// client omits it.
	Kind MediaKind `json:"type"`

	// QualityCeiling bounds the video height in pixels. Zero means best
	// available. Ignored for audio requests.
	QualityCeiling int `json:"quality,omitempty"`
}

// Validate checks the request fields and returns an input error describing
// the first problem found.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return NewError(ErrorKindInput, "No URL provided.")
	}
	if r.Kind == "" {
		r.Kind = MediaKindVideo
	}
	if !r.Kind.IsValid() {
		return NewError(ErrorKindInput, "Unsupported media type: "+string(r.Kind))
	}
	if r.QualityCeiling < 0 {
		return NewError(ErrorKindInput, "Quality ceiling must be positive.")
	}
	return nil
}
