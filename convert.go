package rbridge

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Inferring a uniform runtime vector type from a heterogeneous host
// sequence uses a fixed generality ordering: bool < int < float < complex
// < string. The most general element type present decides the vector type
// and every element is coerced upward to it.

type seqKind int

const (
	seqBool seqKind = iota
	seqInt
	seqFloat
	seqComplex
	seqString
)

func seqKindOf(v any) (seqKind, bool) {
	switch v.(type) {
	case bool:
		return seqBool, true
	case int, int64:
		return seqInt, true
	case float64:
		return seqFloat, true
	case complex128:
		return seqComplex, true
	case string:
		return seqString, true
	}
	return 0, false
}

// SequenceToVector builds a runtime vector from a host sequence.
//
// An empty sequence fails with ErrEmptySequence: the vector type cannot be
// determined. An element whose type has no generality ordering fails with
// ErrMixedSequence rather than silently coercing.
func SequenceToVector(xs []any) (*Value, error) {
	if len(xs) == 0 {
		return nil, ErrEmptySequence
	}
	kind := seqBool
	for i, x := range xs {
		k, ok := seqKindOf(x)
		if !ok {
			return nil, errors.Wrapf(ErrMixedSequence, "element %d (%T)", i, x)
		}
		if k > kind {
			kind = k
		}
	}
	switch kind {
	case seqBool:
		out := make([]bool, len(xs))
		for i, x := range xs {
			out[i] = x.(bool)
		}
		return NewLogicals(out...), nil
	case seqInt:
		out := make([]int64, len(xs))
		for i, x := range xs {
			out[i] = coerceInt(x)
		}
		return NewInts(out...), nil
	case seqFloat:
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = coerceFloat(x)
		}
		return NewReals(out...), nil
	case seqComplex:
		out := make([]complex128, len(xs))
		for i, x := range xs {
			out[i] = coerceComplex(x)
		}
		return NewComplexes(out...), nil
	default:
		out := make([]string, len(xs))
		for i, x := range xs {
			out[i] = coerceString(x)
		}
		return NewStrings(out...), nil
	}
}

func coerceInt(v any) int64 {
	switch x := v.(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case int:
		return int64(x)
	case int64:
		return x
	}
	return 0
}

func coerceFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	default:
		return float64(coerceInt(x))
	}
}

func coerceComplex(v any) complex128 {
	switch x := v.(type) {
	case complex128:
		return x
	default:
		return complex(coerceFloat(x), 0)
	}
}

// coerceString follows the runtime's as.character formatting: booleans
// become TRUE/FALSE, numbers lose no precision.
func coerceString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
