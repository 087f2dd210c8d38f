// Package scanner walks a repository once (spec.md §4.2), collecting
// the manifest-bearing sorted file tree, README content, and
// truncation flags every later phase works from. Grounded on gzh-cli's
// internal/filesystem.FileSystemImpl.WalkDir (constructors.go) for the
// walk shape and original_source/crates/core/src/fs/real.rs for the
// exclusion/depth/entry-limit semantics.
package scanner

import (
	"path"
	"sort"
	"strings"

	"github.com/gizzahub/universalbuild/internal/errtax"
	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/stack/buildsystem"
	"github.com/gizzahub/universalbuild/internal/stack/language"
)

// defaultExclusions is the global exclusion set unioned with every
// language's ExcludedDirs() (spec.md §4.2).
var defaultExclusions = map[string]bool{
	".git":         true,
	"node_modules": true,
	"target":       true,
	"dist":         true,
	"build":        true,
	"vendor":       true,
	".venv":        true,
	"__pycache__":  true,
}

// Options bounds a single scan. Zero values fall back to the defaults
// spec.md §4.2 names.
type Options struct {
	MaxDepth        int
	MaxEntries      int
	ReadmeMaxBytes  int
	Languages       []language.Definition
	BuildSystems    []buildsystem.Definition
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return 10
	}
	return o.MaxDepth
}

func (o Options) maxEntries() int {
	if o.MaxEntries <= 0 {
		return 1000
	}
	return o.MaxEntries
}

func (o Options) readmeMaxBytes() int {
	if o.ReadmeMaxBytes <= 0 {
		return 64 * 1024
	}
	return o.ReadmeMaxBytes
}

// Result is the scanner's output: everything downstream phases consult
// instead of touching the filesystem again.
type Result struct {
	// Files is the sorted, repo-relative file tree (directories
	// excluded).
	Files []string

	// Manifests maps a manifest's relative path to its raw content and
	// the build system(s) whose ManifestPatterns recognized it.
	Manifests map[string]ManifestHit

	Readme          string
	ReadmeTruncated bool
}

// ManifestHit is one recognized manifest file.
type ManifestHit struct {
	Content      string
	BuildSystems []string // BuildSystemID.String() values that claim this filename
}

// Scan walks fs from root, honoring the exclusion set, depth, and entry
// limits, and returns the accumulated Result. Returns an
// *errtax.Error with KindRepositoryTooLarge if depth or entry bounds
// are exceeded.
func Scan(fsys fsa.FS, root string, opts Options) (*Result, error) {
	exclusions := excludedDirs(opts.Languages)
	manifestIndex, globSuffixes := buildManifestIndex(opts.BuildSystems)

	result := &Result{Manifests: make(map[string]ManifestHit)}
	entryCount := 0

	var walk func(dir string, depth int) error
	walk = func(dir string, depth int) error {
		if depth > opts.maxDepth() {
			return errtax.New(errtax.KindRepositoryTooLarge, "max scan depth exceeded").
				WithContext("path", dir).WithContext("max_depth", opts.maxDepth())
		}

		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return nil // unreadable directory: skip rather than abort the whole scan
		}

		for _, entry := range entries {
			entryCount++
			if entryCount > opts.maxEntries() {
				return errtax.New(errtax.KindRepositoryTooLarge, "max scan entry count exceeded").
					WithContext("max_entries", opts.maxEntries())
			}

			if entry.IsDir() {
				if exclusions[entry.Name] || strings.HasPrefix(entry.Name, ".") {
					continue
				}
				if err := walk(entry.Path, depth+1); err != nil {
					return err
				}
				continue
			}

			result.Files = append(result.Files, entry.Path)

			base := path.Base(entry.Path)
			systems, matched := manifestIndex[base]
			if !matched {
				for suffix, ids := range globSuffixes {
					if strings.HasSuffix(base, suffix) {
						systems = appendAllUnique(systems, ids)
						matched = true
					}
				}
			}
			if matched {
				content, err := fsys.ReadToString(entry.Path)
				if err == nil {
					result.Manifests[entry.Path] = ManifestHit{Content: content, BuildSystems: systems}
				}
			}

			if depth == 1 && isReadme(base) && result.Readme == "" {
				readBytes, err := fsys.ReadBytes(entry.Path, opts.readmeMaxBytes()+1)
				if err == nil {
					if len(readBytes) > opts.readmeMaxBytes() {
						result.Readme = string(readBytes[:opts.readmeMaxBytes()])
						result.ReadmeTruncated = true
					} else {
						result.Readme = string(readBytes)
					}
				}
			}
		}
		return nil
	}

	if err := walk(root, 1); err != nil {
		return nil, err
	}

	sort.Strings(result.Files)
	return result, nil
}

func excludedDirs(langs []language.Definition) map[string]bool {
	out := make(map[string]bool, len(defaultExclusions))
	for name := range defaultExclusions {
		out[name] = true
	}
	for _, l := range langs {
		for _, d := range l.ExcludedDirs() {
			out[d] = true
		}
	}
	return out
}

// buildManifestIndex splits each build system's ManifestPatterns into
// literal filenames (the common case: "Cargo.toml", "package.json")
// and "*.ext"-shaped suffix globs (".csproj", ".fsproj") — the only
// glob shape a manifest filename actually needs; workspace member globs
// ("packages/*") are a different concern handled entirely by
// GlobWorkspacePattern.
func buildManifestIndex(systems []buildsystem.Definition) (literal map[string][]string, suffix map[string][]string) {
	literal = make(map[string][]string)
	suffix = make(map[string][]string)
	for _, bs := range systems {
		id := bs.ID().String()
		for _, pattern := range bs.ManifestPatterns() {
			if strings.HasPrefix(pattern.Pattern, "*.") {
				key := strings.TrimPrefix(pattern.Pattern, "*")
				suffix[key] = appendUnique(suffix[key], id)
				continue
			}
			literal[pattern.Pattern] = appendUnique(literal[pattern.Pattern], id)
		}
	}
	return literal, suffix
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

func appendAllUnique(list []string, values []string) []string {
	for _, v := range values {
		list = appendUnique(list, v)
	}
	return list
}

func isReadme(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "readme.") || lower == "readme"
}
