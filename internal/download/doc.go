package download

// Package download drives one extraction-engine invocation per request:
// classify, provision credentials, resolve the proxy, build parameters,
// invoke the engine, and resolve the result. Credential release is scoped
// and runs on every exit path. Progress and completion are delivered as an
// event sequence: monotonically non-decreasing percentages terminated by
// exactly one completion.
