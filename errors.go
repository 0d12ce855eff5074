package rbridge

import "errors"

// Sentinel errors reported by the conversion layer. All of them are local,
// recoverable conditions: they are returned to the caller of the specific
// conversion call and never terminate the process.
var (
	// ErrNoDim is returned by Sexp.Dim when the value has no dimension
	// attribute. It is the one introspection failure that conversion
	// swallows silently (scalars and plain vectors have no dim).
	ErrNoDim = errors.New("value has no dim attribute")

	// ErrUnsupportedHostType is returned by outbound conversion when no
	// handler matches the host value's runtime type.
	ErrUnsupportedHostType = errors.New("no outbound conversion for host type")

	// ErrNotVector is returned when vector promotion is attempted on a
	// value whose tag does not denote a vector-like payload.
	ErrNotVector = errors.New("value is not a runtime vector")

	// ErrInvalidEnvironment is returned by setters that require an
	// environment-tagged value.
	ErrInvalidEnvironment = errors.New("value is not an environment")

	// ErrEmptySequence is returned when inferring a vector type from an
	// empty host sequence: the element type is ambiguous by construction.
	ErrEmptySequence = errors.New("cannot infer vector type from an empty sequence")

	// ErrMixedSequence is returned when a host sequence contains an
	// element type with no registered priority.
	ErrMixedSequence = errors.New("sequence element type cannot be handled")

	// ErrNoConverter is returned when a conversion is attempted through a
	// context that has no active converter.
	ErrNoConverter = errors.New("no active converter")

	// ErrNoHandler is returned by inbound conversion when neither a
	// tag-specific handler nor a fallback is registered. A converter built
	// with NewDefaultConverter always has a fallback, so hitting this
	// indicates a setup defect.
	ErrNoHandler = errors.New("no inbound conversion handler")
)
