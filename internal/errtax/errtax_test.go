package errtax_test

import (
	"errors"
	"testing"

	"github.com/gizzahub/universalbuild/internal/errtax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandClassification(t *testing.T) {
	require.Equal(t, errtax.BandFatalToRun, errtax.KindRepositoryTooLarge.Band())
	require.Equal(t, errtax.BandFatalToService, errtax.KindNoStackDetected.Band())
	require.Equal(t, errtax.BandRecoverableInPhase, errtax.KindTimeoutError.Band())
}

func TestErrorIsMatchesByKind(t *testing.T) {
	base := errtax.New(errtax.KindTimeoutError, "llm call timed out")
	wrapped := errtax.Wrap(errtax.KindTimeoutError, "retry failed", base)

	assert.True(t, errors.Is(wrapped, base))
	assert.False(t, errors.Is(wrapped, errtax.New(errtax.KindNetworkError, "x")))
}

func TestIsFatalToRun(t *testing.T) {
	assert.True(t, errtax.IsFatalToRun(errtax.New(errtax.KindPathNotFound, "missing")))
	assert.False(t, errtax.IsFatalToRun(errtax.New(errtax.KindTimeoutError, "slow")))
	assert.False(t, errtax.IsFatalToRun(errors.New("plain error")))
}

func TestWithContextChaining(t *testing.T) {
	err := errtax.New(errtax.KindParseError, "bad manifest").WithContext("path", "go.mod")
	assert.Equal(t, "go.mod", err.Context["path"])
}
