package formats

import "github.com/xtraact/relay/internal/model"

// Variant is the per-platform parameter-building rule. The set of variants
// is closed; unknown extractors fall back to the generic rule.
type Variant struct {
	Platform model.Platform

	// TargetWidth/TargetHeight, when both set, add an exact-dimension
	// alternative at the head of the format expression. Used for vertical
	// short-form sources.
	TargetWidth  int
	TargetHeight int

	// ApplyCeiling controls whether a client-supplied quality ceiling is
	// honored for this platform.
	ApplyCeiling bool

	// Recode forces a re-encode into the target container for sources whose
	// streams do not remux cleanly.
	Recode bool

	// CookiesRequired marks platforms where missing credential material is
	// a configuration error worth a warning.
	CookiesRequired bool
}

// Vertical short-form target dimensions.
const (
	verticalWidth  = 1080
	verticalHeight = 1920
)

var variants = map[model.Platform]Variant{
	model.PlatformYouTube: {
		Platform:     model.PlatformYouTube,
		ApplyCeiling: true,
	},
	model.PlatformInstagram: {
		Platform:        model.PlatformInstagram,
		TargetWidth:     verticalWidth,
		TargetHeight:    verticalHeight,
		ApplyCeiling:    false,
		Recode:          true,
		CookiesRequired: true,
	},
	model.PlatformTikTok: {
		Platform:     model.PlatformTikTok,
		TargetWidth:  verticalWidth,
		TargetHeight: verticalHeight,
		ApplyCeiling: true,
	},
	model.PlatformGeneric: {
		Platform:     model.PlatformGeneric,
		ApplyCeiling: true,
	},
}

// VariantFor returns the parameter-building rule for platform, falling back
// to the generic rule.
func VariantFor(platform model.Platform) Variant {
	if v, ok := variants[platform]; ok {
		return v
	}
	return variants[model.PlatformGeneric]
}

// KnownPlatforms returns the closed platform set, generic excluded.
func KnownPlatforms() []model.Platform {
	return []model.Platform{
		model.PlatformYouTube,
		model.PlatformInstagram,
		model.PlatformTikTok,
	}
}

// CookieRequiredPlatforms returns the platforms whose missing credentials
// should be logged as configuration errors.
func CookieRequiredPlatforms() map[model.Platform]bool {
	required := make(map[model.Platform]bool)
	for platform, v := range variants {
		if v.CookiesRequired {
			required[platform] = true
		}
	}
	return required
}
