package rbridge

// Context holds the currently active converter.
//
// Conversion entry points resolve the active converter at call time, so
// replacing it takes effect immediately for all subsequent conversions.
// There is no save/restore stacking at this level; callers substituting a
// converter temporarily keep the old reference and put it back themselves.
// A Context is not synchronized: the embedded runtime is a single-threaded
// resource and the conversion layer is driven from one goroutine at a time.
type Context struct {
	active *Converter
}

// NewContext creates a context with no active converter. Conversions
// through it fail with ErrNoConverter until Set is called.
func NewContext() *Context { return &Context{} }

// Set replaces the active converter.
func (c *Context) Set(conv *Converter) { c.active = conv }

// Active returns the active converter, or ErrNoConverter if none was set.
// Attempting conversions before setup is a programming error and is
// reported rather than silently defaulted.
func (c *Context) Active() (*Converter, error) {
	if c.active == nil {
		return nil, ErrNoConverter
	}
	return c.active, nil
}

// ToForeign converts a host value through the context's active converter.
func (c *Context) ToForeign(v any) (Sexp, error) {
	conv, err := c.Active()
	if err != nil {
		return nil, err
	}
	return conv.ToForeign(v)
}

// ToHost converts a runtime value through the context's active converter.
func (c *Context) ToHost(s Sexp) (any, error) {
	conv, err := c.Active()
	if err != nil {
		return nil, err
	}
	return conv.ToHost(s)
}

// defaultContext is the process-wide context used by the package-level
// conversion functions. One embedded runtime per process, one context.
var defaultContext = NewContext()

// SetConverter replaces the process-wide active converter.
func SetConverter(conv *Converter) { defaultContext.Set(conv) }

// CurrentConverter returns the process-wide active converter.
func CurrentConverter() (*Converter, error) { return defaultContext.Active() }

// ToForeign converts a host value through the process-wide active
// converter.
func ToForeign(v any) (Sexp, error) { return defaultContext.ToForeign(v) }

// ToHost converts a runtime value through the process-wide active
// converter.
func ToHost(s Sexp) (any, error) { return defaultContext.ToHost(s) }
