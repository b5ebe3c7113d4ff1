package engine

import "testing"

func TestValidateRequiresURL(t *testing.T) {
	params := ExtractionParams{Download: true, OutputTemplate: "/tmp/x/%(title)s.%(ext)s"}
	if err := params.Validate(); err == nil {
		t.Error("Expected error for missing URL")
	}
}

func TestValidateRequiresOutputTemplateForDownload(t *testing.T) {
	params := ExtractionParams{URL: "https://example.com/v", Download: true}
	if err := params.Validate(); err == nil {
		t.Error("Expected error for download without output template")
	}
}

func TestValidateMetadataOnlyNeedsNoTemplate(t *testing.T) {
	params := ExtractionParams{URL: "https://example.com/v", TraversePlaylist: true}
	if err := params.Validate(); err != nil {
		t.Errorf("Expected metadata-only params to validate, got %v", err)
	}
}

func TestValidateAudioExtractionRequiresCodec(t *testing.T) {
	params := ExtractionParams{
		URL:            "https://example.com/v",
		Download:       true,
		OutputTemplate: "/tmp/x/%(title)s.%(ext)s",
		Post:           &PostProcess{ExtractAudio: true},
	}
	if err := params.Validate(); err == nil {
		t.Error("Expected error for audio extraction without codec")
	}

	params.Post.AudioCodec = "mp3"
	if err := params.Validate(); err != nil {
		t.Errorf("Expected params with codec to validate, got %v", err)
	}
}
