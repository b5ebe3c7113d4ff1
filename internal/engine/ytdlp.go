package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
)

// Progress reporting interval for the underlying engine process.
const DefaultProgressInterval = 500 * time.Millisecond

// YTDLP drives the yt-dlp extraction engine. It is stateless and safe for
// concurrent use; every call builds a fresh command.
type YTDLP struct {
	progressInterval time.Duration
}

// NewYTDLP creates a yt-dlp backed engine.
func NewYTDLP() *YTDLP {
	return &YTDLP{progressInterval: DefaultProgressInterval}
}

// probeInfo mirrors the subset of yt-dlp's JSON output the relay consumes.
type probeInfo struct {
	Title     string `json:"title"`
	Extractor string `json:"extractor"`
	Uploader  string `json:"uploader"`
	Type      string `json:"_type"`
	Formats   []struct {
		VCodec string `json:"vcodec"`
		Height *int   `json:"height"`
	} `json:"formats"`
	Entries []struct {
		ID         string `json:"id"`
		Title      string `json:"title"`
		URL        string `json:"url"`
		WebpageURL string `json:"webpage_url"`
	} `json:"entries"`
}

// Probe implements Engine. It runs yt-dlp in dump-single-json mode with
// playlist traversal enabled and parses the emitted metadata.
func (y *YTDLP) Probe(ctx context.Context, url string) (*Info, error) {
	dl := ytdlp.New().
		SkipDownload().
		DumpSingleJSON().
		YesPlaylist()

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("metadata probe failed: %w", err)
	}

	info, err := parseProbeOutput(result.Stdout)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// parseProbeOutput decodes one JSON metadata document from engine output.
func parseProbeOutput(output string) (*Info, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil, fmt.Errorf("metadata probe returned no output")
	}

	var raw probeInfo
	if err := json.Unmarshal([]byte(output), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse probe metadata: %w", err)
	}

	info := &Info{
		Title:     raw.Title,
		Extractor: raw.Extractor,
		Uploader:  raw.Uploader,
	}

	// Audio-only formats have no height and carry vcodec "none".
	seen := make(map[int]bool)
	for _, format := range raw.Formats {
		if format.VCodec == "none" || format.Height == nil || *format.Height <= 0 {
			continue
		}
		if !seen[*format.Height] {
			seen[*format.Height] = true
			info.Heights = append(info.Heights, *format.Height)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(info.Heights)))

	for _, entry := range raw.Entries {
		entryURL := entry.URL
		if entryURL == "" {
			entryURL = entry.WebpageURL
		}
		if entryURL == "" {
			continue
		}
		info.Entries = append(info.Entries, Entry{
			ID:    entry.ID,
			Title: entry.Title,
			URL:   entryURL,
		})
	}
	return info, nil
}

// Extract implements Engine. Exactly one yt-dlp run per call.
func (y *YTDLP) Extract(ctx context.Context, params ExtractionParams) (*Report, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if !params.Download {
		return y.resolveOnly(ctx, params)
	}

	dl := ytdlp.New().
		ForceOverwrites().
		RestrictFilenames().
		Output(params.OutputTemplate)

	if params.Format != "" {
		dl.Format(params.Format)
	}
	if params.TraversePlaylist {
		dl.YesPlaylist()
	} else {
		dl.NoPlaylist()
	}
	if params.CookiesPath != "" {
		dl.Cookies(params.CookiesPath)
	}
	if params.Proxy != "" {
		dl.Proxy(params.Proxy)
	}
	applyPostProcess(dl, params.Post)

	if params.Progress != nil {
		dl.ProgressFunc(y.progressInterval, func(update ytdlp.ProgressUpdate) {
			if update.TotalBytes > 0 {
				percent := int(float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100)
				params.Progress(percent)
			}
		})
	}

	result, err := dl.Run(ctx, params.URL)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	return reportFromResult(result)
}

// resolveOnly runs a metadata-only extraction and returns resolved entry
// URLs instead of local files.
func (y *YTDLP) resolveOnly(ctx context.Context, params ExtractionParams) (*Report, error) {
	dl := ytdlp.New().
		SkipDownload().
		DumpSingleJSON()

	if params.TraversePlaylist {
		dl.YesPlaylist()
	} else {
		dl.NoPlaylist()
	}
	if params.CookiesPath != "" {
		dl.Cookies(params.CookiesPath)
	}
	if params.Proxy != "" {
		dl.Proxy(params.Proxy)
	}

	result, err := dl.Run(ctx, params.URL)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	info, err := parseProbeOutput(result.Stdout)
	if err != nil {
		return nil, err
	}
	return &Report{
		Title:    info.Title,
		Uploader: info.Uploader,
		Entries:  info.Entries,
	}, nil
}

// applyPostProcess translates the directive into engine flags.
func applyPostProcess(dl *ytdlp.Command, post *PostProcess) {
	if post == nil {
		return
	}
	if post.ExtractAudio {
		dl.ExtractAudio().AudioFormat(post.AudioCodec)
		if post.AudioQuality != "" {
			dl.AudioQuality(post.AudioQuality)
		}
	}
	if post.MergeContainer != "" {
		dl.MergeOutputFormat(post.MergeContainer)
	}
	if post.RecodeContainer != "" {
		dl.RecodeVideo(post.RecodeContainer)
	}
}

// reportFromResult maps the engine's own post-download report. The engine is
// trusted for final filenames: post-processing may have changed the
// extension, so the pre-download template is never re-derived here.
func reportFromResult(result *ytdlp.Result) (*Report, error) {
	info, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to read extraction report: %w", err)
	}
	if len(info) == 0 {
		return nil, fmt.Errorf("extraction reported no media")
	}

	report := &Report{}
	if info[0].Title != nil {
		report.Title = *info[0].Title
	}
	if info[0].Uploader != nil {
		report.Uploader = *info[0].Uploader
	}
	for _, item := range info {
		if item.Filename != nil && *item.Filename != "" {
			report.Files = append(report.Files, *item.Filename)
		}
	}
	return report, nil
}
