package rbridge

// Tag identifies the storage category of a value held by the embedded
// runtime. It mirrors the runtime's own type codes: every value has exactly
// one tag, set at creation and never changed.
type Tag int

const (
	// TagNull is the runtime's null sentinel.
	TagNull Tag = iota

	// TagLogical is a vector of booleans.
	TagLogical

	// TagInteger is a vector of integers.
	TagInteger

	// TagReal is a vector of floating-point numbers.
	TagReal

	// TagString is a vector of strings.
	TagString

	// TagComplex is a vector of complex numbers.
	TagComplex

	// TagRaw is a vector of raw bytes.
	TagRaw

	// TagList is a generic list (elements of any type).
	TagList

	// TagPairlist is the runtime's linked-list form.
	TagPairlist

	// TagLang is an unevaluated language expression.
	TagLang

	// TagClosure is a function defined in the runtime.
	TagClosure

	// TagEnvironment is a runtime environment (name -> value bindings).
	TagEnvironment

	// TagExtPtr is an external pointer.
	TagExtPtr

	// TagS4 is an instance of the runtime's formal class system.
	TagS4
)

var tagNames = map[Tag]string{
	TagNull:        "null",
	TagLogical:     "logical",
	TagInteger:     "integer",
	TagReal:        "real",
	TagString:      "string",
	TagComplex:     "complex",
	TagRaw:         "raw",
	TagList:        "list",
	TagPairlist:    "pairlist",
	TagLang:        "lang",
	TagClosure:     "closure",
	TagEnvironment: "environment",
	TagExtPtr:      "extptr",
	TagS4:          "s4",
}

// String returns the tag name as used in diagnostics.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsVector reports whether the tag denotes a flat vector payload
// (logical, integer, real, string, complex or raw).
func (t Tag) IsVector() bool {
	switch t {
	case TagLogical, TagInteger, TagReal, TagString, TagComplex, TagRaw:
		return true
	}
	return false
}

// Sexp is a value owned by the embedded runtime.
//
// The conversion layer only borrows a Sexp for inspection: implementations
// must treat a Sexp as immutable once it has been handed to a converter.
// Class returns the runtime's class chain for the value, most-derived name
// first, or an empty slice for untagged values. Dim returns the dimension
// attribute; when the attribute is not set it returns ErrNoDim, which
// callers treat as "flat vector" rather than as a failure.
type Sexp interface {
	Tag() Tag
	Class() []string
	Dim() ([]int, error)
}

// Payloader is implemented by Sexp values whose contents can be read
// directly by the host. The semantic wrapper types use it for their typed
// accessors; values coming from a real embedding may not implement it.
type Payloader interface {
	Payload() any
}

// Wrapper is implemented by every host-native wrapper produced by inbound
// conversion. Unwrap returns the underlying runtime value, which lets
// outbound conversion pass wrappers back into the runtime unchanged.
type Wrapper interface {
	Unwrap() Sexp
}

func hasClass(s Sexp, name string) bool {
	for _, c := range s.Class() {
		if c == name {
			return true
		}
	}
	return false
}
