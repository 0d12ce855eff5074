package rbridge_test

import (
	"strings"
	"testing"

	"github.com/rbridge-dev/rbridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileYAML = `
default: s4
classes:
  tbl_df: dataframe
  lmerMod: s4
`

func TestLoadProfile(t *testing.T) {
	p, err := rbridge.LoadProfile(strings.NewReader(profileYAML))
	require.NoError(t, err)
	assert.Equal(t, "s4", p.Default)
	assert.Equal(t, "dataframe", p.Classes["tbl_df"])
}

func TestProfileBuildClassMap(t *testing.T) {
	p, err := rbridge.LoadProfile(strings.NewReader(profileYAML))
	require.NoError(t, err)

	cm, err := p.BuildClassMap(rbridge.BuiltinFactories())
	require.NoError(t, err)

	f := cm.Resolve([]string{"tbl_df", "data.frame"})
	assert.IsType(t, &rbridge.DataFrame{}, f(rbridge.NewS4("tbl_df")))

	// Unmapped chains fall back to the profile default.
	f = cm.Resolve([]string{"unknown"})
	assert.IsType(t, &rbridge.S4Instance{}, f(rbridge.NewS4("unknown")))
}

func TestProfileUnknownKind(t *testing.T) {
	p := &rbridge.Profile{Classes: map[string]string{"x": "no-such-kind"}}

	err := p.Apply(rbridge.NewS4ClassMap(), rbridge.BuiltinFactories())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-kind")

	p = &rbridge.Profile{Default: "no-such-kind"}
	_, err = p.BuildClassMap(rbridge.BuiltinFactories())
	require.Error(t, err)
}

func TestProfileBadYAML(t *testing.T) {
	_, err := rbridge.LoadProfile(strings.NewReader("classes: [not, a, map]"))
	assert.Error(t, err)
}
