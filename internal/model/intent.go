package model

// Platform identifies the origin site of a media URL, derived from the
// extraction engine's reported extractor identity.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"

	// PlatformGeneric covers every extractor not in the known set.
	PlatformGeneric Platform = "generic"
)

// String returns the string representation of Platform.
func (p Platform) String() string {
	return string(p)
}

// Shape describes how many independent media entries one URL resolves to.
type Shape string

const (
	// ShapeSingle is one downloadable asset.
	ShapeSingle Shape = "single"

	// ShapeMulti is a carousel: one URL containing multiple entries.
	ShapeMulti Shape = "multi"
)

// Intent is the outcome of classifying a URL with one metadata-only probe.
type Intent struct {
	URL      string
	Platform Platform
	Shape    Shape
	Title    string

	// Heights lists the source's video resolution heights, highest first.
	// Clients use them to pick a valid quality ceiling.
	Heights []int
}

// IsCarousel reports whether the URL resolved to multiple entries.
func (i Intent) IsCarousel() bool {
	return i.Shape == ShapeMulti
}
