package language

// Defaults returns every deterministic language definition in the
// registration order spec.md §4.1 relies on for detection tie-breaks
// (earlier wins). LLM-backed variants are appended separately by the
// top-level stack registry per mode, never by this package.
func Defaults() []Definition {
	return []Definition{
		Rust{},
		Golang{},
		Java{},
		Kotlin{},
		TypeScript{},
		JavaScript{},
		Python{},
		CSharp{},
		FSharp{},
		Ruby{},
		PHP{},
		CPP{},
		Elixir{},
		Zig{},
	}
}
