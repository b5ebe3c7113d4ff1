package secrets

// Package secrets reads host-provided secret material: per-platform cookie
// files and the optional proxy endpoint. The provisioner turns read-only
// credential material into request-scoped writable copies with a guaranteed
// single release.
