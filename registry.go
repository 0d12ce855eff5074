package rbridge

import (
	"reflect"

	"github.com/pkg/errors"
)

// OutboundFunc converts a host value into a runtime value.
type OutboundFunc func(v any) (Sexp, error)

// InboundFunc converts a runtime value into a host-native object.
type InboundFunc func(s Sexp) (any, error)

// Converter holds the two dispatch tables of the conversion layer: an
// outbound table keyed by the host value's runtime type and an inbound
// table keyed by the runtime tag.
//
// Registration is open: new handlers may be installed at any time, and
// re-registering a key replaces the previous handler. Registration is
// expected to happen during setup; a Converter is not synchronized and must
// not be mutated while conversions are running.
type Converter struct {
	name string

	outbound map[reflect.Type]OutboundFunc
	// Interface descriptors, in registration order. Outbound resolution
	// scans these after the exact-type lookup misses, so the first
	// registered interface a value implements wins.
	outIfaces []reflect.Type

	inbound    map[Tag]InboundFunc
	inFallback InboundFunc
}

// NewConverter creates an empty converter. The name is a human-readable
// label used in diagnostics.
func NewConverter(name string) *Converter {
	return &Converter{
		name:     name,
		outbound: make(map[reflect.Type]OutboundFunc),
		inbound:  make(map[Tag]InboundFunc),
	}
}

// Name returns the converter's label.
func (c *Converter) Name() string { return c.name }

// RegisterOutbound installs a handler for host values of the given runtime
// type. Interface types act as catch-all descriptors: a value matches when
// its type implements the interface and no exact-type handler exists.
// Registering an already-registered type replaces the handler.
func (c *Converter) RegisterOutbound(t reflect.Type, fn OutboundFunc) {
	if t.Kind() == reflect.Interface {
		if _, exists := c.outbound[t]; !exists {
			c.outIfaces = append(c.outIfaces, t)
		}
	}
	c.outbound[t] = fn
}

// RegisterInbound installs a handler for runtime values with the given tag.
// Registering an already-registered tag replaces the handler.
func (c *Converter) RegisterInbound(tag Tag, fn InboundFunc) {
	c.inbound[tag] = fn
}

// RegisterInboundFallback installs the universal inbound handler used when
// no tag-specific handler matches. Every usable converter must have one:
// it is what lets unrecognized runtime values cross the boundary as opaque
// wrappers instead of failing.
func (c *Converter) RegisterInboundFallback(fn InboundFunc) {
	c.inFallback = fn
}

// ToForeign converts a host value into a runtime value.
//
// Resolution is by the value's runtime type, most specific first: an exact
// type match, then registered interface descriptors in registration order.
// A nil host value converts to the runtime null.
func (c *Converter) ToForeign(v any) (Sexp, error) {
	if v == nil {
		return Null(), nil
	}
	t := reflect.TypeOf(v)
	if fn, ok := c.outbound[t]; ok {
		return fn(v)
	}
	for _, it := range c.outIfaces {
		if t.Implements(it) {
			return c.outbound[it](v)
		}
	}
	return nil, errors.Wrapf(ErrUnsupportedHostType, "%T", v)
}

// ToHost converts a runtime value into a host-native object.
//
// Resolution is by tag, falling back to the universal handler when no
// tag-specific handler is registered. ErrNoHandler is returned only when
// the fallback is missing too, which indicates a misassembled converter.
func (c *Converter) ToHost(s Sexp) (any, error) {
	if fn, ok := c.inbound[s.Tag()]; ok {
		return fn(s)
	}
	if c.inFallback != nil {
		return c.inFallback(s)
	}
	return nil, errors.Wrapf(ErrNoHandler, "tag %s in converter %q", s.Tag(), c.name)
}

// Merge builds a converter layering the tables of the given converters,
// left to right. Later converters win on key collisions; the fallback of
// the last converter that has one is kept. The inputs are not modified.
func Merge(name string, convs ...*Converter) *Converter {
	merged := NewConverter(name)
	for _, c := range convs {
		for _, it := range c.outIfaces {
			merged.RegisterOutbound(it, c.outbound[it])
		}
		for t, fn := range c.outbound {
			if t.Kind() == reflect.Interface {
				continue
			}
			merged.outbound[t] = fn
		}
		for tag, fn := range c.inbound {
			merged.inbound[tag] = fn
		}
		if c.inFallback != nil {
			merged.inFallback = c.inFallback
		}
	}
	return merged
}
