package engine

import "testing"

func TestParseProbeOutputSingleVideo(t *testing.T) {
	output := `{"title": "Test Video", "extractor": "youtube", "uploader": "Test Channel"}`

	info, err := parseProbeOutput(output)
	if err != nil {
		t.Fatalf("Failed to parse probe output: %v", err)
	}

	if info.Title != "Test Video" {
		t.Errorf("Expected title 'Test Video', got '%s'", info.Title)
	}
	if info.Extractor != "youtube" {
		t.Errorf("Expected extractor 'youtube', got '%s'", info.Extractor)
	}
	if info.Uploader != "Test Channel" {
		t.Errorf("Expected uploader 'Test Channel', got '%s'", info.Uploader)
	}
	if len(info.Entries) != 0 {
		t.Errorf("Expected no entries for single video, got %d", len(info.Entries))
	}
}

func TestParseProbeOutputPlaylist(t *testing.T) {
	output := `{
		"title": "A Post",
		"extractor": "Instagram",
		"_type": "playlist",
		"entries": [
			{"id": "a", "title": "First", "url": "https://cdn.example/1.jpg"},
			{"id": "b", "title": "Second", "webpage_url": "https://example.com/p/b"},
			{"id": "c", "title": "No URL at all"}
		]
	}`

	info, err := parseProbeOutput(output)
	if err != nil {
		t.Fatalf("Failed to parse probe output: %v", err)
	}

	// Entries without any resolvable URL are dropped.
	if len(info.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(info.Entries))
	}
	if info.Entries[0].URL != "https://cdn.example/1.jpg" {
		t.Errorf("Expected direct URL preferred, got '%s'", info.Entries[0].URL)
	}
	if info.Entries[1].URL != "https://example.com/p/b" {
		t.Errorf("Expected webpage URL fallback, got '%s'", info.Entries[1].URL)
	}
}

func TestParseProbeOutputHeights(t *testing.T) {
	output := `{
		"title": "Test Video",
		"extractor": "youtube",
		"formats": [
			{"vcodec": "none", "height": null},
			{"vcodec": "avc1", "height": 360},
			{"vcodec": "avc1", "height": 1080},
			{"vcodec": "vp9", "height": 1080},
			{"vcodec": "vp9", "height": 720},
			{"vcodec": "avc1"}
		]
	}`

	info, err := parseProbeOutput(output)
	if err != nil {
		t.Fatalf("Failed to parse probe output: %v", err)
	}

	// Deduplicated video heights, highest first; audio-only and
	// height-less formats are skipped.
	want := []int{1080, 720, 360}
	if len(info.Heights) != len(want) {
		t.Fatalf("Expected heights %v, got %v", want, info.Heights)
	}
	for i := range want {
		if info.Heights[i] != want[i] {
			t.Fatalf("Expected heights %v, got %v", want, info.Heights)
		}
	}
}

func TestParseProbeOutputSurroundingWhitespace(t *testing.T) {
	info, err := parseProbeOutput("\n  {\"title\": \"Trimmed\"}  \n")
	if err != nil {
		t.Fatalf("Failed to parse probe output: %v", err)
	}
	if info.Title != "Trimmed" {
		t.Errorf("Expected title 'Trimmed', got '%s'", info.Title)
	}
}

func TestParseProbeOutputEmpty(t *testing.T) {
	if _, err := parseProbeOutput("   \n"); err == nil {
		t.Error("Expected error for empty probe output")
	}
}

func TestParseProbeOutputInvalidJSON(t *testing.T) {
	if _, err := parseProbeOutput("WARNING: not json"); err == nil {
		t.Error("Expected error for non-JSON probe output")
	}
}
