package rbridge_test

import (
	"reflect"
	"testing"

	"github.com/rbridge-dev/rbridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripScalars(t *testing.T) {
	conv := rbridge.NewDefaultConverter()

	t.Run("bool", func(t *testing.T) {
		s, err := conv.ToForeign(true)
		require.NoError(t, err)
		v, err := conv.ToHost(s)
		require.NoError(t, err)
		assert.Equal(t, []bool{true}, v.(*rbridge.BoolVector).Values())
	})

	t.Run("int", func(t *testing.T) {
		s, err := conv.ToForeign(42)
		require.NoError(t, err)
		v, err := conv.ToHost(s)
		require.NoError(t, err)
		assert.Equal(t, []int64{42}, v.(*rbridge.IntVector).Values())
	})

	t.Run("int64", func(t *testing.T) {
		s, err := conv.ToForeign(int64(-7))
		require.NoError(t, err)
		v, err := conv.ToHost(s)
		require.NoError(t, err)
		assert.Equal(t, []int64{-7}, v.(*rbridge.IntVector).Values())
	})

	t.Run("float", func(t *testing.T) {
		s, err := conv.ToForeign(3.5)
		require.NoError(t, err)
		v, err := conv.ToHost(s)
		require.NoError(t, err)
		assert.Equal(t, []float64{3.5}, v.(*rbridge.RealVector).Values())
	})

	t.Run("complex", func(t *testing.T) {
		s, err := conv.ToForeign(complex(1, 2))
		require.NoError(t, err)
		v, err := conv.ToHost(s)
		require.NoError(t, err)
		assert.Equal(t, []complex128{complex(1, 2)}, v.(*rbridge.ComplexVector).Values())
	})

	t.Run("string", func(t *testing.T) {
		s, err := conv.ToForeign("hello")
		require.NoError(t, err)
		v, err := conv.ToHost(s)
		require.NoError(t, err)
		assert.Equal(t, []string{"hello"}, v.(*rbridge.StrVector).Values())
	})

	t.Run("bytes", func(t *testing.T) {
		s, err := conv.ToForeign([]byte{0x01, 0xff})
		require.NoError(t, err)
		v, err := conv.ToHost(s)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0xff}, v.(*rbridge.ByteVector).Values())
	})
}

func TestDispatchDeterminism(t *testing.T) {
	conv := rbridge.NewDefaultConverter()
	type myType struct{ n int }

	called := false
	conv.RegisterOutbound(reflect.TypeOf(myType{}), func(v any) (rbridge.Sexp, error) {
		called = true
		return rbridge.NewInts(int64(v.(myType).n)), nil
	})

	// Registrations for unrelated types must not affect resolution.
	conv.RegisterOutbound(reflect.TypeOf(uint16(0)), func(v any) (rbridge.Sexp, error) {
		return rbridge.Null(), nil
	})

	s, err := conv.ToForeign(myType{n: 9})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, rbridge.TagInteger, s.Tag())
}

func TestReRegistrationOverwrites(t *testing.T) {
	conv := rbridge.NewDefaultConverter()
	type myType struct{}

	first := func(v any) (rbridge.Sexp, error) { return rbridge.NewStrings("first"), nil }
	second := func(v any) (rbridge.Sexp, error) { return rbridge.NewStrings("second"), nil }

	conv.RegisterOutbound(reflect.TypeOf(myType{}), first)
	conv.RegisterOutbound(reflect.TypeOf(myType{}), second)

	s, err := conv.ToForeign(myType{})
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, payloadStrings(t, s))

	// Registering the same handler twice leaves behavior unchanged.
	conv.RegisterOutbound(reflect.TypeOf(myType{}), second)
	s, err = conv.ToForeign(myType{})
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, payloadStrings(t, s))
}

func payloadStrings(t *testing.T, s rbridge.Sexp) []string {
	t.Helper()
	p, ok := s.(rbridge.Payloader)
	require.True(t, ok)
	out, ok := p.Payload().([]string)
	require.True(t, ok)
	return out
}

func TestForeignPassThrough(t *testing.T) {
	conv := rbridge.NewDefaultConverter()

	orig := rbridge.NewReals(1.5)
	s, err := conv.ToForeign(orig)
	require.NoError(t, err)
	assert.Same(t, orig, s, "foreign-native values pass through unchanged")
}

func TestWrapperUnwrapsOnOutbound(t *testing.T) {
	conv := rbridge.NewDefaultConverter()

	orig := rbridge.NewInts(1, 2, 3)
	host, err := conv.ToHost(orig)
	require.NoError(t, err)

	back, err := conv.ToForeign(host)
	require.NoError(t, err)
	assert.Same(t, rbridge.Sexp(orig), back, "wrappers carry runtime identity back out")
}

func TestUnsupportedHostType(t *testing.T) {
	conv := rbridge.NewDefaultConverter()

	_, err := conv.ToForeign(struct{ x chan int }{})
	assert.ErrorIs(t, err, rbridge.ErrUnsupportedHostType)
}

func TestNilHostConvertsToNull(t *testing.T) {
	conv := rbridge.NewDefaultConverter()

	s, err := conv.ToForeign(nil)
	require.NoError(t, err)
	assert.Equal(t, rbridge.TagNull, s.Tag())
}

func TestInboundFallback(t *testing.T) {
	// A converter with only a fallback wraps every tag opaquely.
	bare := rbridge.NewConverter("bare")
	bare.RegisterInboundFallback(func(s rbridge.Sexp) (any, error) {
		return rbridge.WrapRObject(s), nil
	})

	v, err := bare.ToHost(rbridge.NewS4("lmerMod"))
	require.NoError(t, err)
	assert.IsType(t, &rbridge.RObject{}, v)
}

func TestNoHandlerIsSetupDefect(t *testing.T) {
	bare := rbridge.NewConverter("bare")

	_, err := bare.ToHost(rbridge.NewInts(1))
	assert.ErrorIs(t, err, rbridge.ErrNoHandler)
}

func TestMergeLayering(t *testing.T) {
	base := rbridge.NewDefaultConverter()

	overlay := rbridge.NewConverter("overlay")
	overlay.RegisterInbound(rbridge.TagInteger, func(s rbridge.Sexp) (any, error) {
		return "overlaid", nil
	})

	merged := rbridge.Merge("base+overlay", base, overlay)
	assert.Equal(t, "base+overlay", merged.Name())

	// Overlay wins for its tag.
	v, err := merged.ToHost(rbridge.NewInts(1))
	require.NoError(t, err)
	assert.Equal(t, "overlaid", v)

	// Base entries survive for everything else.
	v, err = merged.ToHost(rbridge.NewReals(1.5))
	require.NoError(t, err)
	assert.IsType(t, &rbridge.RealVector{}, v)

	// Inputs are untouched.
	v, err = base.ToHost(rbridge.NewInts(1))
	require.NoError(t, err)
	assert.IsType(t, &rbridge.IntVector{}, v)
}
