package model

// ResultType discriminates the two success outcomes of an orchestration.
type ResultType string

const (
	// ResultTypeMedia means a file was staged locally for one-time serving.
	ResultTypeMedia ResultType = "video"

	// ResultTypeImages means the request resolved to carousel asset URLs;
	// nothing was staged.
	ResultTypeImages ResultType = "images"
)

// ImageAsset is one constituent entry of a carousel.
type ImageAsset struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

// OrchestrationResult is the successful outcome of one download request.
type OrchestrationResult struct {
	Type  ResultType
	Title string

	// ServingKey is the public filename of the staged artifact. Set only
	// for ResultTypeMedia.
	ServingKey string

	// Uploader is the engine-reported channel or account name, when known.
	Uploader string

	// Images holds the carousel entries. Set only for ResultTypeImages.
	Images []ImageAsset
}

// Completion is the single terminal event of one orchestration, delivered
// after all progress events.
type Completion struct {
	Title    string
	Uploader string
	Err      error
}
