package rbridge

import "time"

// The semantic wrapper types. Each wraps one runtime value and is built by
// a Wrap* constructor taking that value; the constructors are what gets
// registered into converters and class maps. Typed accessors read the
// payload when the underlying Sexp exposes one and return zero values
// otherwise (a live embedding reads runtime memory instead).

func payloadOf[T any](s Sexp) T {
	var zero T
	p, ok := s.(Payloader)
	if !ok {
		return zero
	}
	v, ok := p.Payload().(T)
	if !ok {
		return zero
	}
	return v
}

// RObject is the opaque wrapper used when no more specific conversion
// applies. It carries the runtime value without interpreting it.
type RObject struct{ sexp Sexp }

// WrapRObject wraps a runtime value opaquely.
func WrapRObject(s Sexp) any { return &RObject{sexp: s} }

func (o *RObject) Unwrap() Sexp { return o.sexp }

// BoolVector is a flat logical vector.
type BoolVector struct{ sexp Sexp }

// WrapBoolVector wraps a logical vector value.
func WrapBoolVector(s Sexp) any { return &BoolVector{sexp: s} }

func (v *BoolVector) Unwrap() Sexp   { return v.sexp }
func (v *BoolVector) Values() []bool { return payloadOf[[]bool](v.sexp) }

// IntVector is a flat integer vector.
type IntVector struct{ sexp Sexp }

// WrapIntVector wraps an integer vector value.
func WrapIntVector(s Sexp) any { return &IntVector{sexp: s} }

func (v *IntVector) Unwrap() Sexp    { return v.sexp }
func (v *IntVector) Values() []int64 { return payloadOf[[]int64](v.sexp) }

// RealVector is a flat floating-point vector.
type RealVector struct{ sexp Sexp }

// WrapRealVector wraps a real vector value.
func WrapRealVector(s Sexp) any { return &RealVector{sexp: s} }

func (v *RealVector) Unwrap() Sexp      { return v.sexp }
func (v *RealVector) Values() []float64 { return payloadOf[[]float64](v.sexp) }

// StrVector is a flat string vector.
type StrVector struct{ sexp Sexp }

// WrapStrVector wraps a string vector value.
func WrapStrVector(s Sexp) any { return &StrVector{sexp: s} }

func (v *StrVector) Unwrap() Sexp     { return v.sexp }
func (v *StrVector) Values() []string { return payloadOf[[]string](v.sexp) }

// ComplexVector is a flat complex vector.
type ComplexVector struct{ sexp Sexp }

// WrapComplexVector wraps a complex vector value.
func WrapComplexVector(s Sexp) any { return &ComplexVector{sexp: s} }

func (v *ComplexVector) Unwrap() Sexp         { return v.sexp }
func (v *ComplexVector) Values() []complex128 { return payloadOf[[]complex128](v.sexp) }

// ByteVector is a flat raw byte vector.
type ByteVector struct{ sexp Sexp }

// WrapByteVector wraps a raw vector value.
func WrapByteVector(s Sexp) any { return &ByteVector{sexp: s} }

func (v *ByteVector) Unwrap() Sexp   { return v.sexp }
func (v *ByteVector) Values() []byte { return payloadOf[[]byte](v.sexp) }

// Matrix is a vector promoted by a two-entry dim attribute. The element
// storage keeps the underlying tag; Tag() exposes it.
type Matrix struct{ sexp Sexp }

// WrapMatrix wraps a matrix-shaped vector value.
func WrapMatrix(s Sexp) any { return &Matrix{sexp: s} }

func (m *Matrix) Unwrap() Sexp { return m.sexp }
func (m *Matrix) Tag() Tag     { return m.sexp.Tag() }

// Nrow returns the row count, or 0 when the dim attribute is unreadable.
func (m *Matrix) Nrow() int {
	if d, err := m.sexp.Dim(); err == nil && len(d) == 2 {
		return d[0]
	}
	return 0
}

// Ncol returns the column count, or 0 when the dim attribute is unreadable.
func (m *Matrix) Ncol() int {
	if d, err := m.sexp.Dim(); err == nil && len(d) == 2 {
		return d[1]
	}
	return 0
}

// Array is a vector promoted by a dim attribute with three or more entries.
type Array struct{ sexp Sexp }

// WrapArray wraps an array-shaped vector value.
func WrapArray(s Sexp) any { return &Array{sexp: s} }

func (a *Array) Unwrap() Sexp { return a.sexp }
func (a *Array) Tag() Tag     { return a.sexp.Tag() }

// Dims returns the dimension sizes, or nil when unreadable.
func (a *Array) Dims() []int {
	d, err := a.sexp.Dim()
	if err != nil {
		return nil
	}
	return d
}

// DataFrame is a table: a value whose class chain contains "data.frame".
// The backing storage can be any vector-like tag.
type DataFrame struct{ sexp Sexp }

// WrapDataFrame wraps a data.frame value.
func WrapDataFrame(s Sexp) any { return &DataFrame{sexp: s} }

func (d *DataFrame) Unwrap() Sexp { return d.sexp }

// Factor is an integer vector whose class chain contains "factor". The
// integer payload holds the level codes.
type Factor struct{ sexp Sexp }

// WrapFactor wraps a factor value.
func WrapFactor(s Sexp) any { return &Factor{sexp: s} }

func (f *Factor) Unwrap() Sexp   { return f.sexp }
func (f *Factor) Codes() []int64 { return payloadOf[[]int64](f.sexp) }

// DateVector is a real vector holding days since the Unix epoch.
type DateVector struct{ sexp Sexp }

// WrapDateVector wraps a Date-classed real vector.
func WrapDateVector(s Sexp) any { return &DateVector{sexp: s} }

func (v *DateVector) Unwrap() Sexp      { return v.sexp }
func (v *DateVector) Values() []float64 { return payloadOf[[]float64](v.sexp) }

// Times returns the dates as UTC midnights.
func (v *DateVector) Times() []time.Time {
	days := v.Values()
	out := make([]time.Time, len(days))
	for i, d := range days {
		out[i] = time.Unix(int64(d)*86400, 0).UTC()
	}
	return out
}

// TimeVector is a real vector holding seconds since the Unix epoch
// (the runtime's POSIXct representation).
type TimeVector struct{ sexp Sexp }

// WrapTimeVector wraps a POSIXct-classed real vector.
func WrapTimeVector(s Sexp) any { return &TimeVector{sexp: s} }

func (v *TimeVector) Unwrap() Sexp      { return v.sexp }
func (v *TimeVector) Values() []float64 { return payloadOf[[]float64](v.sexp) }

// Times returns the timestamps as UTC instants with sub-second precision
// truncated to nanoseconds.
func (v *TimeVector) Times() []time.Time {
	secs := v.Values()
	out := make([]time.Time, len(secs))
	for i, s := range secs {
		sec := int64(s)
		nsec := int64((s - float64(sec)) * 1e9)
		out[i] = time.Unix(sec, nsec).UTC()
	}
	return out
}

// ListVector is a generic list.
type ListVector struct{ sexp Sexp }

// WrapListVector wraps a list value.
func WrapListVector(s Sexp) any { return &ListVector{sexp: s} }

func (v *ListVector) Unwrap() Sexp  { return v.sexp }
func (v *ListVector) Items() []Sexp { return payloadOf[[]Sexp](v.sexp) }

// PairList is the runtime's linked-list form.
type PairList struct{ sexp Sexp }

// WrapPairList wraps a pairlist value.
func WrapPairList(s Sexp) any { return &PairList{sexp: s} }

func (v *PairList) Unwrap() Sexp  { return v.sexp }
func (v *PairList) Items() []Sexp { return payloadOf[[]Sexp](v.sexp) }

// LangSexp is an unevaluated language expression.
type LangSexp struct{ sexp Sexp }

// WrapLangSexp wraps a language expression value.
func WrapLangSexp(s Sexp) any { return &LangSexp{sexp: s} }

func (v *LangSexp) Unwrap() Sexp   { return v.sexp }
func (v *LangSexp) Source() string { return payloadOf[string](v.sexp) }

// Function wraps a runtime closure. Calling it is the embedding layer's
// business; the conversion layer only carries it across the boundary.
type Function struct{ sexp Sexp }

// WrapFunction wraps a closure value.
func WrapFunction(s Sexp) any { return &Function{sexp: s} }

func (f *Function) Unwrap() Sexp { return f.sexp }

// Environment wraps a runtime environment.
type Environment struct{ sexp Sexp }

// WrapEnvironment wraps an environment value.
func WrapEnvironment(s Sexp) any { return &Environment{sexp: s} }

func (e *Environment) Unwrap() Sexp { return e.sexp }

// ID returns the environment's identity token, or "" when the underlying
// value does not expose one.
func (e *Environment) ID() string {
	if d := payloadOf[*envData](e.sexp); d != nil {
		return d.id
	}
	return ""
}

// Get returns the binding for name, if present.
func (e *Environment) Get(name string) (Sexp, bool) {
	d := payloadOf[*envData](e.sexp)
	if d == nil {
		return nil, false
	}
	v, ok := d.vars[name]
	return v, ok
}

// Set installs a binding. It is a no-op when the underlying value does not
// expose its bindings.
func (e *Environment) Set(name string, v Sexp) {
	if d := payloadOf[*envData](e.sexp); d != nil {
		d.vars[name] = v
	}
}

// ExternalPtr wraps an external pointer value.
type ExternalPtr struct{ sexp Sexp }

// WrapExternalPtr wraps an external pointer value.
func WrapExternalPtr(s Sexp) any { return &ExternalPtr{sexp: s} }

func (p *ExternalPtr) Unwrap() Sexp { return p.sexp }

// Token returns the pointer's identity token, or "" when not exposed.
func (p *ExternalPtr) Token() string { return payloadOf[string](p.sexp) }

// S4Instance is the default wrapper for instances of the runtime's formal
// class system. Class maps resolve most-derived class names to more
// specific wrappers; unmapped classes end up here.
type S4Instance struct{ sexp Sexp }

// WrapS4 wraps a formal-class instance.
func WrapS4(s Sexp) any { return &S4Instance{sexp: s} }

func (o *S4Instance) Unwrap() Sexp    { return o.sexp }
func (o *S4Instance) Class() []string { return o.sexp.Class() }

// Formula is a language expression classed "formula". It records the
// environment in which the formula resolves its symbols.
type Formula struct {
	sexp Sexp
	env  Sexp
}

// WrapFormula wraps a formula value.
func WrapFormula(s Sexp) any { return &Formula{sexp: s} }

func (f *Formula) Unwrap() Sexp   { return f.sexp }
func (f *Formula) Source() string { return payloadOf[string](f.sexp) }

// Environment returns the formula's resolution environment, or nil if none
// was attached.
func (f *Formula) Environment() Sexp { return f.env }

// SetEnvironment attaches the environment in which the formula will look
// up its symbols. The argument must be environment-tagged.
func (f *Formula) SetEnvironment(env Sexp) error {
	if env == nil || env.Tag() != TagEnvironment {
		return ErrInvalidEnvironment
	}
	f.env = env
	return nil
}
