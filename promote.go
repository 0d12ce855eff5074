package rbridge

import "github.com/pkg/errors"

// Promotion decides which semantic wrapper a vector-like runtime value
// becomes. The rules, most specific first:
//
//  1. a "data.frame" class anywhere in the chain makes it a DataFrame,
//     whatever the storage tag;
//  2. tag-specific classes: integer + "factor" is a Factor, real +
//     "POSIXct" is a TimeVector, real + "Date" is a DateVector — these
//     never become matrix or array even when a dim attribute is present;
//  3. otherwise the dim attribute splits plain vector (absent, empty, or
//     one entry), Matrix (exactly two entries) and Array (three or more).
//
// Composite tags (list, pairlist, lang) promote structurally with no dim
// logic; lang values classed "formula" become Formula.

// Promote converts a vector-like or composite runtime value into its
// semantic wrapper. It is the inbound handler the default converter
// registers for every such tag. Values with any other tag fail with
// ErrNotVector.
func Promote(s Sexp) (any, error) {
	if hasClass(s, "data.frame") && (s.Tag().IsVector() || s.Tag() == TagList) {
		return WrapDataFrame(s), nil
	}

	switch s.Tag() {
	case TagInteger:
		if hasClass(s, "factor") {
			return WrapFactor(s), nil
		}
		return promoteShaped(s, WrapIntVector)
	case TagReal:
		if hasClass(s, "POSIXct") {
			return WrapTimeVector(s), nil
		}
		if hasClass(s, "Date") {
			return WrapDateVector(s), nil
		}
		return promoteShaped(s, WrapRealVector)
	case TagLogical:
		return promoteShaped(s, WrapBoolVector)
	case TagString:
		return promoteShaped(s, WrapStrVector)
	case TagComplex:
		return promoteShaped(s, WrapComplexVector)
	case TagRaw:
		return promoteShaped(s, WrapByteVector)
	case TagList:
		return WrapListVector(s), nil
	case TagPairlist:
		return WrapPairList(s), nil
	case TagLang:
		if hasClass(s, "formula") {
			return WrapFormula(s), nil
		}
		return WrapLangSexp(s), nil
	}
	return nil, errors.Wrapf(ErrNotVector, "tag %s", s.Tag())
}

// promoteShaped applies the dim rule. A missing dim attribute (ErrNoDim)
// is the normal scalar/vector case and selects the flat wrapper; any other
// Dim failure is a real introspection error and propagates.
func promoteShaped(s Sexp, vector Factory) (any, error) {
	dim, err := s.Dim()
	if err != nil {
		if errors.Is(err, ErrNoDim) {
			return vector(s), nil
		}
		return nil, errors.Wrapf(err, "reading dim attribute of %s value", s.Tag())
	}
	switch {
	case len(dim) == 2:
		return WrapMatrix(s), nil
	case len(dim) >= 3:
		return WrapArray(s), nil
	default:
		return vector(s), nil
	}
}
