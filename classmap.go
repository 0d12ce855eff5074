package rbridge

// Factory builds a host-native wrapper around a runtime value. The wrapper
// constructors in this package (WrapS4, WrapDataFrame, ...) all satisfy it.
type Factory func(s Sexp) any

// ClassMap maps runtime class names to wrapper factories.
//
// Resolution walks a candidate class chain, already ordered most-derived
// name first by the runtime's own class-extension query, and returns the
// factory of the first name present in the map. A miss is not an error:
// every ClassMap carries a default factory, held outside the table, that
// resolution falls back to.
type ClassMap struct {
	def Factory
	m   map[string]Factory
}

// NewClassMap creates a class map with the given default factory.
func NewClassMap(def Factory) *ClassMap {
	return &ClassMap{def: def, m: make(map[string]Factory)}
}

// Register inserts or replaces the factory for a class name.
func (cm *ClassMap) Register(name string, f Factory) {
	cm.m[name] = f
}

// Contains reports whether a class name is mapped.
func (cm *ClassMap) Contains(name string) bool {
	_, ok := cm.m[name]
	return ok
}

// Remove deletes the mapping for a class name, if any.
func (cm *ClassMap) Remove(name string) {
	delete(cm.m, name)
}

// FindKey returns the first candidate name present in the map. It reports
// which ancestor matched, for callers that need the name itself rather
// than the factory.
func (cm *ClassMap) FindKey(names []string) (string, bool) {
	for _, n := range names {
		if _, ok := cm.m[n]; ok {
			return n, true
		}
	}
	return "", false
}

// Resolve returns the factory for the first candidate name present in the
// map, or the default factory if none match.
func (cm *ClassMap) Resolve(names []string) Factory {
	if k, ok := cm.FindKey(names); ok {
		return cm.m[k]
	}
	return cm.def
}

// overrideFrame records the prior state of one key changed by an override.
// Frames never leave the WithOverrides call that created them.
type overrideFrame struct {
	key     string
	existed bool
	prev    Factory
}

// WithOverrides runs body with the given mappings temporarily installed.
//
// On every exit path, including a panic from body, each changed key is put
// back exactly as it was: restored to its prior factory if it existed,
// removed entirely if it did not. Overrides nest; because restoration runs
// as the deferred half of each call, nested overrides unwind last-in
// first-out and the map always ends where it started.
func (cm *ClassMap) WithOverrides(overrides map[string]Factory, body func() error) error {
	frames := make([]overrideFrame, 0, len(overrides))
	for k, f := range overrides {
		prev, existed := cm.m[k]
		frames = append(frames, overrideFrame{key: k, existed: existed, prev: prev})
		cm.m[k] = f
	}
	defer func() {
		for i := len(frames) - 1; i >= 0; i-- {
			fr := frames[i]
			if fr.existed {
				cm.m[fr.key] = fr.prev
			} else {
				delete(cm.m, fr.key)
			}
		}
	}()
	return body()
}
