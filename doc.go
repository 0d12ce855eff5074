// Package rbridge is the type-directed conversion core of a bridge between
// a Go host and an embedded R-style runtime.
//
// # Overview
//
// The embedded runtime represents every value with a tagged, reference-
// counted object. rbridge turns those values into host-native semantic
// wrappers (vectors, matrices, data frames, factors, closures,
// environments, formal-class instances) and turns host values back into
// runtime values, without losing type information or runtime identity.
// It provides:
//
//   - An open, bidirectional conversion registry keyed by host runtime
//     type (outbound) and runtime tag (inbound)
//   - Promotion rules deciding vector vs. matrix vs. array vs. table
//   - Class-name resolution for the runtime's formal class system, with
//     stack-disciplined temporary overrides
//   - A process-wide active-converter context
//
// # Quick Start
//
//	import "github.com/rbridge-dev/rbridge"
//
//	func main() {
//	    rbridge.SetConverter(rbridge.NewDefaultConverter())
//
//	    // Host to runtime
//	    s, _ := rbridge.ToForeign(3.14)     // real vector
//
//	    // Runtime to host
//	    v, _ := rbridge.ToHost(s)           // *rbridge.RealVector
//	    fmt.Println(v.(*rbridge.RealVector).Values())
//	}
//
// # Promotion
//
// A vector-like runtime value becomes a plain vector, a Matrix (dim of
// length two) or an Array (dim of length three or more). Class-driven
// rules take precedence: "data.frame" anywhere in the class chain makes a
// DataFrame, integer vectors classed "factor" make a Factor, real vectors
// classed "Date" or "POSIXct" make date/time wrappers.
//
// # Extending
//
// New wrapper categories register without modifying this package:
//
//	conv := rbridge.NewDefaultConverter()
//	conv.RegisterOutbound(reflect.TypeOf(MyType{}), toRuntime)
//	conv.RegisterInbound(rbridge.TagExtPtr, fromRuntime)
//	rbridge.SetConverter(conv)
//
// Formal-class instances resolve through a ClassMap; use WithOverrides to
// change resolution for the duration of one call:
//
//	m := rbridge.NewS4ClassMap()
//	conv := rbridge.NewDefaultConverter(rbridge.WithS4Map(m))
//	err := m.WithOverrides(map[string]rbridge.Factory{
//	    "lmerMod": wrapMixedModel,
//	}, func() error {
//	    out, err := conv.ToHost(fit)
//	    ...
//	})
//
// The override is undone on every exit path, including panics, and nested
// overrides unwind last-in first-out.
//
// # Concurrency
//
// The embedded runtime is a single-threaded, process-wide resource, and so
// is this package: converters, class maps and contexts carry no locks.
// Register handlers during setup and drive conversions from one goroutine
// at a time.
package rbridge
