package rbridge

import "github.com/google/uuid"

// Value is an in-process implementation of Sexp.
//
// A real embedding supplies its own Sexp implementation backed by runtime
// memory; Value stands in for it where no live runtime is attached (tests,
// tooling, and handlers that must synthesize results). A Value is immutable
// once built: the With* methods return a modified copy and never touch the
// receiver.
type Value struct {
	tag   Tag
	class []string
	dim   []int
	data  any
}

// envData is the payload of an environment Value. The ID token gives the
// environment an identity that survives copying of the Value header.
type envData struct {
	id   string
	vars map[string]Sexp
}

// Tag returns the value's storage category.
func (v *Value) Tag() Tag { return v.tag }

// Class returns the value's class chain, most-derived name first.
// The returned slice is owned by the Value and must not be modified.
func (v *Value) Class() []string { return v.class }

// Dim returns the dimension attribute, or ErrNoDim if it was never set.
func (v *Value) Dim() ([]int, error) {
	if v.dim == nil {
		return nil, ErrNoDim
	}
	return v.dim, nil
}

// Payload returns the raw contents of the value. The concrete type depends
// on the tag: []bool, []int64, []float64, []string, []complex128, []byte,
// []Sexp for lists, *envData for environments.
func (v *Value) Payload() any { return v.data }

// WithDim returns a copy of the value carrying the given dimension
// attribute. All entries must be positive.
func (v *Value) WithDim(dims ...int) *Value {
	c := *v
	c.dim = dims
	return &c
}

// WithClass returns a copy of the value carrying the given class chain,
// most-derived name first.
func (v *Value) WithClass(names ...string) *Value {
	c := *v
	c.class = names
	return &c
}

// NewLogicals creates a logical vector value.
func NewLogicals(xs ...bool) *Value {
	return &Value{tag: TagLogical, data: xs}
}

// NewInts creates an integer vector value.
func NewInts(xs ...int64) *Value {
	return &Value{tag: TagInteger, data: xs}
}

// NewReals creates a real vector value.
func NewReals(xs ...float64) *Value {
	return &Value{tag: TagReal, data: xs}
}

// NewStrings creates a string vector value.
func NewStrings(xs ...string) *Value {
	return &Value{tag: TagString, data: xs}
}

// NewComplexes creates a complex vector value.
func NewComplexes(xs ...complex128) *Value {
	return &Value{tag: TagComplex, data: xs}
}

// NewRawBytes creates a raw byte vector value.
func NewRawBytes(b []byte) *Value {
	return &Value{tag: TagRaw, data: b}
}

// NewList creates a generic list value.
func NewList(items ...Sexp) *Value {
	return &Value{tag: TagList, data: items}
}

// NewPairlist creates a pairlist value.
func NewPairlist(items ...Sexp) *Value {
	return &Value{tag: TagPairlist, data: items}
}

// NewLang creates an unevaluated language expression from its source text.
func NewLang(src string) *Value {
	return &Value{tag: TagLang, data: src}
}

// NewClosure creates a closure value. The name is informational only; the
// conversion layer never calls into the closure.
func NewClosure(name string) *Value {
	return &Value{tag: TagClosure, data: name}
}

// NewEnvironment creates an empty environment value with a fresh identity
// token.
func NewEnvironment() *Value {
	return &Value{
		tag:  TagEnvironment,
		data: &envData{id: uuid.NewString(), vars: make(map[string]Sexp)},
	}
}

// NewExternalPtr creates an external pointer value. The token stands in for
// the runtime's pointer address.
func NewExternalPtr() *Value {
	return &Value{tag: TagExtPtr, data: uuid.NewString()}
}

// NewS4 creates an instance of the runtime's formal class system with the
// given class chain, most-derived name first.
func NewS4(class ...string) *Value {
	return &Value{tag: TagS4, class: class}
}

var nullValue = &Value{tag: TagNull}

// Null returns the runtime's null sentinel. All calls return the same value.
func Null() *Value { return nullValue }
