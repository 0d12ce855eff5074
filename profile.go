package rbridge

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Profile is a declarative class-map configuration. It names wrapper kinds
// rather than factories so mappings can live in a config file:
//
//	default: s4
//	classes:
//	  lmerMod: s4
//	  tbl_df: dataframe
//
// Kind names resolve against a factory table; BuiltinFactories covers the
// wrappers shipped with this package.
type Profile struct {
	Default string            `yaml:"default"`
	Classes map[string]string `yaml:"classes"`
}

// LoadProfile reads a YAML profile.
func LoadProfile(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading profile")
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "parsing profile")
	}
	return &p, nil
}

// Apply registers the profile's class mappings into an existing map.
// A kind name absent from the factory table is an error.
func (p *Profile) Apply(cm *ClassMap, kinds map[string]Factory) error {
	for class, kind := range p.Classes {
		f, ok := kinds[kind]
		if !ok {
			return errors.Errorf("profile maps class %q to unknown wrapper kind %q", class, kind)
		}
		cm.Register(class, f)
	}
	return nil
}

// BuildClassMap creates a class map from the profile. The default kind
// must be present in the factory table; an empty default falls back to the
// plain S4 wrapper.
func (p *Profile) BuildClassMap(kinds map[string]Factory) (*ClassMap, error) {
	def := Factory(WrapS4)
	if p.Default != "" {
		f, ok := kinds[p.Default]
		if !ok {
			return nil, errors.Errorf("profile default is unknown wrapper kind %q", p.Default)
		}
		def = f
	}
	cm := NewClassMap(def)
	if err := p.Apply(cm, kinds); err != nil {
		return nil, err
	}
	return cm, nil
}

// BuiltinFactories returns the wrapper kinds shipped with this package,
// keyed by the names profiles use.
func BuiltinFactories() map[string]Factory {
	return map[string]Factory{
		"opaque":    WrapRObject,
		"s4":        WrapS4,
		"dataframe": WrapDataFrame,
		"factor":    WrapFactor,
		"matrix":    WrapMatrix,
		"array":     WrapArray,
		"function":  WrapFunction,
		"env":       WrapEnvironment,
		"formula":   WrapFormula,
		"date":      WrapDateVector,
		"time":      WrapTimeVector,
	}
}
