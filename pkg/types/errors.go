package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindSource ErrKind = iota // malformed source element (unknown tag, missing mapper)
	ErrKindKey                   // empty or duplicate key
	ErrKindLimit                 // build exceeded configured limits
)

// String returns a short name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindSource:
		return "source"
	case ErrKindKey:
		return "key"
	case ErrKindLimit:
		return "limit"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned (usually wrapped with the offending key) by the builder
// and the collection constructor.
var (
	// ErrUnknownElement indicates a source element tagged neither item nor section.
	ErrUnknownElement = &Error{Kind: ErrKindSource, Msg: "source element is neither item nor section"}
	// ErrMissingMapper indicates an element whose kind has no mapper supplied.
	ErrMissingMapper = &Error{Kind: ErrKindSource, Msg: "no mapper for source element"}
	// ErrEmptyKey indicates a mapper produced an empty key.
	ErrEmptyKey = &Error{Kind: ErrKindKey, Msg: "empty key"}
	// ErrDuplicateKey indicates two nodes share a key within one build.
	ErrDuplicateKey = &Error{Kind: ErrKindKey, Msg: "duplicate key"}
	// ErrLimit indicates the source exceeded the configured build limits.
	ErrLimit = &Error{Kind: ErrKindLimit, Msg: "build limit exceeded"}
)

// KindOf reports the ErrKind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
