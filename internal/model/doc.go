package model

// Package model defines domain data structures shared across the relay:
// incoming requests, classified intents, orchestration results, progress
// events, and the error taxonomy. Structures are designed for direct JSON
// binding at the HTTP boundary and explicit state transitions.
