package rbridge_test

import (
	"errors"
	"testing"

	"github.com/rbridge-dev/rbridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wrapperA struct{ s rbridge.Sexp }
type wrapperB struct{ s rbridge.Sexp }
type wrapperC struct{ s rbridge.Sexp }

func factoryA(s rbridge.Sexp) any { return &wrapperA{s: s} }
func factoryB(s rbridge.Sexp) any { return &wrapperB{s: s} }
func factoryC(s rbridge.Sexp) any { return &wrapperC{s: s} }

func TestClassMapOrdering(t *testing.T) {
	cm := rbridge.NewClassMap(rbridge.WrapS4)
	cm.Register("Base", factoryA)

	// Only the ancestor is registered: first match over the pre-ordered
	// chain lands on it.
	f := cm.Resolve([]string{"Derived", "Base"})
	assert.IsType(t, &wrapperA{}, f(rbridge.NewS4("Derived", "Base")))

	key, ok := cm.FindKey([]string{"Derived", "Base"})
	require.True(t, ok)
	assert.Equal(t, "Base", key)

	// The most-derived registration wins once present.
	cm.Register("Derived", factoryB)
	f = cm.Resolve([]string{"Derived", "Base"})
	assert.IsType(t, &wrapperB{}, f(rbridge.NewS4("Derived", "Base")))
}

func TestClassMapDefault(t *testing.T) {
	cm := rbridge.NewClassMap(factoryC)

	f := cm.Resolve([]string{"nothing", "registered"})
	assert.IsType(t, &wrapperC{}, f(rbridge.NewS4("nothing")))

	_, ok := cm.FindKey([]string{"nothing"})
	assert.False(t, ok)
}

func TestClassMapContainsRemove(t *testing.T) {
	cm := rbridge.NewClassMap(rbridge.WrapS4)
	cm.Register("A", factoryA)

	assert.True(t, cm.Contains("A"))
	cm.Remove("A")
	assert.False(t, cm.Contains("A"))
}

func TestOverrideRestoration(t *testing.T) {
	cm := rbridge.NewClassMap(rbridge.WrapS4)
	cm.Register("A", factoryA)

	err := cm.WithOverrides(map[string]rbridge.Factory{
		"A": factoryB,
		"B": factoryC,
	}, func() error {
		assert.IsType(t, &wrapperB{}, cm.Resolve([]string{"A"})(rbridge.NewS4("A")))
		assert.IsType(t, &wrapperC{}, cm.Resolve([]string{"B"})(rbridge.NewS4("B")))
		return nil
	})
	require.NoError(t, err)

	// A is back to its original mapping; B is gone entirely, not merely
	// reset to the default.
	assert.IsType(t, &wrapperA{}, cm.Resolve([]string{"A"})(rbridge.NewS4("A")))
	assert.False(t, cm.Contains("B"))
}

func TestOverrideRestorationOnError(t *testing.T) {
	cm := rbridge.NewClassMap(rbridge.WrapS4)
	cm.Register("A", factoryA)

	boom := errors.New("body failed")
	err := cm.WithOverrides(map[string]rbridge.Factory{
		"A": factoryB,
		"B": factoryC,
	}, func() error {
		return boom
	})
	assert.ErrorIs(t, err, boom)

	assert.IsType(t, &wrapperA{}, cm.Resolve([]string{"A"})(rbridge.NewS4("A")))
	assert.False(t, cm.Contains("B"))
}

func TestOverrideRestorationOnPanic(t *testing.T) {
	cm := rbridge.NewClassMap(rbridge.WrapS4)
	cm.Register("A", factoryA)

	func() {
		defer func() { _ = recover() }()
		_ = cm.WithOverrides(map[string]rbridge.Factory{
			"A": factoryB,
			"B": factoryC,
		}, func() error {
			panic("body panicked")
		})
	}()

	assert.IsType(t, &wrapperA{}, cm.Resolve([]string{"A"})(rbridge.NewS4("A")))
	assert.False(t, cm.Contains("B"))
}

func TestNestedOverridesUnwindLIFO(t *testing.T) {
	cm := rbridge.NewClassMap(rbridge.WrapS4)
	cm.Register("A", factoryA)

	err := cm.WithOverrides(map[string]rbridge.Factory{"A": factoryB}, func() error {
		assert.IsType(t, &wrapperB{}, cm.Resolve([]string{"A"})(rbridge.NewS4("A")))

		err := cm.WithOverrides(map[string]rbridge.Factory{"A": factoryC}, func() error {
			assert.IsType(t, &wrapperC{}, cm.Resolve([]string{"A"})(rbridge.NewS4("A")))
			return nil
		})
		require.NoError(t, err)

		// Inner exit restores the outer override, not the original.
		assert.IsType(t, &wrapperB{}, cm.Resolve([]string{"A"})(rbridge.NewS4("A")))
		return nil
	})
	require.NoError(t, err)

	assert.IsType(t, &wrapperA{}, cm.Resolve([]string{"A"})(rbridge.NewS4("A")))
}

func TestS4ResolutionThroughConverter(t *testing.T) {
	m := rbridge.NewS4ClassMap()
	conv := rbridge.NewDefaultConverter(rbridge.WithS4Map(m))

	// Unmapped classes land on the default S4 wrapper.
	v, err := conv.ToHost(rbridge.NewS4("lmerMod", "merMod"))
	require.NoError(t, err)
	assert.IsType(t, &rbridge.S4Instance{}, v)

	// A mapping on an ancestor picks it up through the chain.
	m.Register("merMod", factoryA)
	v, err = conv.ToHost(rbridge.NewS4("lmerMod", "merMod"))
	require.NoError(t, err)
	assert.IsType(t, &wrapperA{}, v)

	// A scoped override changes resolution only inside the body.
	err = m.WithOverrides(map[string]rbridge.Factory{"lmerMod": factoryB}, func() error {
		v, err := conv.ToHost(rbridge.NewS4("lmerMod", "merMod"))
		require.NoError(t, err)
		assert.IsType(t, &wrapperB{}, v)
		return nil
	})
	require.NoError(t, err)

	v, err = conv.ToHost(rbridge.NewS4("lmerMod", "merMod"))
	require.NoError(t, err)
	assert.IsType(t, &wrapperA{}, v)
}

func TestS4ExtendsQueryOrdersChain(t *testing.T) {
	m := rbridge.NewS4ClassMap()
	m.Register("grandparent", factoryC)

	// The value only carries its own class name; the extends query
	// supplies the full ancestry.
	conv := rbridge.NewDefaultConverter(
		rbridge.WithS4Map(m),
		rbridge.WithExtends(func(class []string) []string {
			return append(class, "parent", "grandparent")
		}),
	)

	v, err := conv.ToHost(rbridge.NewS4("child"))
	require.NoError(t, err)
	assert.IsType(t, &wrapperC{}, v)
}
