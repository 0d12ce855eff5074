package rbridge

import "reflect"

// ExtendsFunc is the embedding layer's class-extension query: given a
// value's class chain it returns the full candidate chain to resolve
// against a ClassMap, most-derived name first. The default is the identity
// query, which trusts the chain the value already carries.
type ExtendsFunc func(class []string) []string

// DefaultOption configures NewDefaultConverter.
type DefaultOption func(*defaultConfig)

type defaultConfig struct {
	s4Map   *ClassMap
	extends ExtendsFunc
}

// WithS4Map supplies the class map used to resolve formal-class instances.
// Callers that need scoped overrides pass their own map here and drive
// WithOverrides on it.
func WithS4Map(m *ClassMap) DefaultOption {
	return func(c *defaultConfig) { c.s4Map = m }
}

// WithExtends supplies the class-extension query used to order candidate
// class names before resolution.
func WithExtends(fn ExtendsFunc) DefaultOption {
	return func(c *defaultConfig) { c.extends = fn }
}

// NewS4ClassMap creates a class map whose default wrapper is the plain
// S4Instance.
func NewS4ClassMap() *ClassMap { return NewClassMap(WrapS4) }

// NewDefaultConverter builds the base converter.
//
// Outbound it handles the host scalar types, byte slices, typed slices and
// generic sequences, and passes runtime values and wrappers through
// unchanged. Inbound it promotes vector-like values, maps closures,
// environments, external pointers and the null sentinel to their
// designated wrappers, resolves formal-class instances through the class
// map, and wraps everything else opaquely. More specific converters layer
// on top of it with Merge.
func NewDefaultConverter(opts ...DefaultOption) *Converter {
	cfg := defaultConfig{
		s4Map:   NewS4ClassMap(),
		extends: func(class []string) []string { return class },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := NewConverter("base default converter")

	// Outbound: host scalars.
	c.RegisterOutbound(reflect.TypeOf(false), func(v any) (Sexp, error) {
		return NewLogicals(v.(bool)), nil
	})
	c.RegisterOutbound(reflect.TypeOf(int(0)), func(v any) (Sexp, error) {
		return NewInts(int64(v.(int))), nil
	})
	c.RegisterOutbound(reflect.TypeOf(int64(0)), func(v any) (Sexp, error) {
		return NewInts(v.(int64)), nil
	})
	c.RegisterOutbound(reflect.TypeOf(float64(0)), func(v any) (Sexp, error) {
		return NewReals(v.(float64)), nil
	})
	c.RegisterOutbound(reflect.TypeOf(complex128(0)), func(v any) (Sexp, error) {
		return NewComplexes(v.(complex128)), nil
	})
	c.RegisterOutbound(reflect.TypeOf(""), func(v any) (Sexp, error) {
		return NewStrings(v.(string)), nil
	})

	// Outbound: slices.
	c.RegisterOutbound(reflect.TypeOf([]byte(nil)), func(v any) (Sexp, error) {
		return NewRawBytes(v.([]byte)), nil
	})
	c.RegisterOutbound(reflect.TypeOf([]bool(nil)), func(v any) (Sexp, error) {
		return NewLogicals(v.([]bool)...), nil
	})
	c.RegisterOutbound(reflect.TypeOf([]int64(nil)), func(v any) (Sexp, error) {
		return NewInts(v.([]int64)...), nil
	})
	c.RegisterOutbound(reflect.TypeOf([]float64(nil)), func(v any) (Sexp, error) {
		return NewReals(v.([]float64)...), nil
	})
	c.RegisterOutbound(reflect.TypeOf([]string(nil)), func(v any) (Sexp, error) {
		return NewStrings(v.([]string)...), nil
	})
	c.RegisterOutbound(reflect.TypeOf([]complex128(nil)), func(v any) (Sexp, error) {
		return NewComplexes(v.([]complex128)...), nil
	})
	c.RegisterOutbound(reflect.TypeOf([]any(nil)), func(v any) (Sexp, error) {
		return SequenceToVector(v.([]any))
	})

	// Outbound pass-through: values already foreign, and wrappers carrying
	// one. These interface descriptors are the mandatory outbound fallback.
	c.RegisterOutbound(reflect.TypeOf((*Sexp)(nil)).Elem(), func(v any) (Sexp, error) {
		return v.(Sexp), nil
	})
	c.RegisterOutbound(reflect.TypeOf((*Wrapper)(nil)).Elem(), func(v any) (Sexp, error) {
		return v.(Wrapper).Unwrap(), nil
	})

	// Inbound: structural promotion for vector-like and composite tags.
	for _, tag := range []Tag{
		TagLogical, TagInteger, TagReal, TagString, TagComplex, TagRaw,
		TagList, TagPairlist, TagLang,
	} {
		c.RegisterInbound(tag, Promote)
	}

	// Inbound: tags with exactly one designated wrapper.
	c.RegisterInbound(TagClosure, func(s Sexp) (any, error) { return WrapFunction(s), nil })
	c.RegisterInbound(TagEnvironment, func(s Sexp) (any, error) { return WrapEnvironment(s), nil })
	c.RegisterInbound(TagExtPtr, func(s Sexp) (any, error) { return WrapExternalPtr(s), nil })
	c.RegisterInbound(TagNull, func(s Sexp) (any, error) { return s, nil })

	// Inbound: formal-class instances resolve through the class map, with
	// the chain ordered by the extends query.
	c.RegisterInbound(TagS4, func(s Sexp) (any, error) {
		chain := cfg.extends(s.Class())
		return cfg.s4Map.Resolve(chain)(s), nil
	})

	// Anything else crosses the boundary opaquely.
	c.RegisterInboundFallback(func(s Sexp) (any, error) { return WrapRObject(s), nil })

	return c
}
