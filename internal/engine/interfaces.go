package engine

import "context"

// Entry is one constituent item of a multi-entry source.
type Entry struct {
	ID    string
	Title string
	URL   string
}

// Info is the result of a metadata-only probe.
type Info struct {
	Title     string
	Extractor string
	Uploader  string

	// Heights lists the distinct video resolution heights the source
	// offers, highest first. Empty when the probe reports no video formats.
	Heights []int

	// Entries is non-empty when the source is a carousel or playlist.
	Entries []Entry
}

// Report is the result of an extraction run.
type Report struct {
	Title    string
	Uploader string

	// Files are the engine-reported local paths of downloaded files, in the
	// order reported, after post-processing. Empty for metadata-only runs.
	Files []string

	// Entries carries resolved entry URLs for metadata-only runs against
	// multi-entry sources.
	Entries []Entry
}

// Engine resolves a page URL to concrete media formats and metadata,
// optionally retrieving bytes to local storage.
type Engine interface {
	// Probe performs one metadata-only inspection of url with playlist
	// traversal enabled. No bytes are retrieved.
	Probe(ctx context.Context, url string) (*Info, error)

	// Extract performs one extraction run with the given parameters.
	Extract(ctx context.Context, params ExtractionParams) (*Report, error)
}
