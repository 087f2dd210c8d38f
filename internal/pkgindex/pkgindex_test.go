package pkgindex_test

import (
	"testing"

	"github.com/gizzahub/universalbuild/internal/pkgindex"
	"github.com/stretchr/testify/assert"
)

func TestStaticIndex(t *testing.T) {
	idx := pkgindex.NewStatic(pkgindex.DefaultVersions())

	v, ok := idx.GetLatestVersion("nodejs")
	assert.True(t, ok)
	assert.Equal(t, "nodejs-20.11", v)

	assert.True(t, idx.HasPackage("python"))
	assert.False(t, idx.HasPackage("cobol"))

	_, ok = idx.GetLatestVersion("cobol")
	assert.False(t, ok)
}

// countingIndex tracks how many times GetLatestVersion actually runs,
// so the caching layer's memoization can be verified.
type countingIndex struct {
	calls int
	inner pkgindex.Index
}

func (c *countingIndex) HasPackage(name string) bool { return c.inner.HasPackage(name) }

func (c *countingIndex) GetLatestVersion(name string) (string, bool) {
	c.calls++
	return c.inner.GetLatestVersion(name)
}

func TestCachedMemoizesLookups(t *testing.T) {
	inner := &countingIndex{inner: pkgindex.NewStatic(pkgindex.DefaultVersions())}
	cached := pkgindex.NewCached(inner, 8)

	v1, ok1 := cached.GetLatestVersion("python")
	v2, ok2 := cached.GetLatestVersion("python")

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedEvictsBeyondCapacity(t *testing.T) {
	inner := &countingIndex{inner: pkgindex.NewStatic(pkgindex.DefaultVersions())}
	cached := pkgindex.NewCached(inner, 1)

	cached.GetLatestVersion("python")
	cached.GetLatestVersion("nodejs")
	cached.GetLatestVersion("python")

	assert.Equal(t, 3, inner.calls)
}
