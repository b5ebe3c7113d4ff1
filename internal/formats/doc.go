package formats

// Package formats translates a classified intent and the client's wishes
// into concrete extraction parameters: the ordered format-selection
// expression, the post-processing directive, and traversal/download flags.
// Platform-specific behavior lives in a closed variant table, not in
// branching inside the builder.
