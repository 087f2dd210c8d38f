package runtime

// Defaults returns every deterministic runtime, keyed by Name() in
// DefaultsByName for the service pipeline's RuntimeConfig phase, which
// selects a runtime by the language's RuntimeName() (spec.md §4.4).
func Defaults() []Definition {
	return []Definition{Native{}, Node{}, Python{}, JVM{}, Ruby{}, Beam{}, Dotnet{}, PHP{}}
}

// DefaultsByName indexes Defaults() by Name() for O(1) lookup.
func DefaultsByName() map[string]Definition {
	out := make(map[string]Definition)
	for _, d := range Defaults() {
		out[d.Name()] = d
	}
	return out
}
