package engine

// Package engine is the boundary to the external extraction engine. It
// defines the typed parameter bundle for one invocation, the probe/extract
// contract, and the yt-dlp backed implementation. Everything above this
// package talks to the Engine interface only.
