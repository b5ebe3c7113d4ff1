package model

import (
	"errors"
	"strings"
)

// ErrorKind classifies a relay failure for propagation and reporting.
type ErrorKind string

const (
	// ErrorKindInput means the request was malformed; no engine call was made.
	ErrorKindInput ErrorKind = "input"

	// ErrorKindClassification means the metadata probe failed.
	ErrorKindClassification ErrorKind = "classification"

	// ErrorKindCredential means credential material could not be read.
	// Recovered locally; never aborts a request.
	ErrorKindCredential ErrorKind = "credential"

	// ErrorKindEngine means the extraction or download call failed.
	ErrorKindEngine ErrorKind = "engine"

	// ErrorKindStaging means an expected output file was missing after a
	// reported-successful engine run.
	ErrorKindStaging ErrorKind = "staging"

	// ErrorKindNotFound means a requested artifact is absent or its name
	// failed the traversal check.
	ErrorKindNotFound ErrorKind = "not_found"
)

// ProtectedMediaMessage is the stable user-facing message substituted for
// anti-automation rejections from the origin site.
const ProtectedMediaMessage = "This video is protected and cannot be downloaded at this time."

// Error is a relay failure carrying its taxonomy kind and a message safe to
// return to the client.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

// NewError creates an Error of the given kind.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates an Error of the given kind wrapping an underlying cause.
func WrapError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf returns the taxonomy kind of err, or ErrorKindEngine for errors the
// relay did not classify itself.
func KindOf(err error) ErrorKind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return ErrorKindEngine
}

// Anti-automation markers seen in engine diagnostics. Matched
// case-insensitively against the raw error text.
var botCheckMarkers = []string{
	"confirm you are not a bot",
	"confirm you're not a bot",
	"sign in to confirm",
	"not a robot",
}

// IsBotCheck reports whether err looks like the origin site rejecting the
// request as automated traffic. The whole unwrap chain is inspected so a
// wrapped engine diagnostic is still recognized.
func IsBotCheck(err error) bool {
	for err != nil {
		msg := strings.ToLower(err.Error())
		for _, marker := range botCheckMarkers {
			if strings.Contains(msg, marker) {
				return true
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}

// UserMessage rewrites err into a message safe to surface to the client.
// Known anti-automation rejections map to ProtectedMediaMessage; relay
// errors keep their message; anything else gets a generic substitution.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if IsBotCheck(err) {
		return ProtectedMediaMessage
	}
	var re *Error
	if errors.As(err, &re) {
		return re.Message
	}
	return "Download failed: " + err.Error()
}
