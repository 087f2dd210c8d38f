package buildsystem

import (
	"github.com/gizzahub/universalbuild/internal/fsa"
	"github.com/gizzahub/universalbuild/internal/llmclient"
	"github.com/gizzahub/universalbuild/internal/model"
	"github.com/gizzahub/universalbuild/internal/pkgindex"
)

// LLM is a placeholder Definition used only to satisfy the registry's
// interface in llm/full modes; real matching happens via the language
// package's LLM.DetectWithContext, since a stack candidate in full mode
// is always anchored to a Custom language that has no deterministic
// build-system counterpart to delegate to. DetectAll always returns
// nil: the stack registry never calls BuildSystem detection on the LLM
// variant directly, only the language's LLM wrapper.
type LLM struct {
	Base
	Client llmclient.Client
}

func NewLLM(client llmclient.Client) LLM { return LLM{Client: client} }

func (LLM) ID() model.BuildSystemID { return model.CustomBuildSystem("llm-build-system") }

func (LLM) ManifestPatterns() []model.ManifestPattern { return nil }

func (LLM) DetectAll(string, []string, fsa.FS) []model.DetectionStack { return nil }

func (LLM) BuildTemplate(pkgindex.Index, string, string) model.BuildTemplate {
	return model.BuildTemplate{}
}

func (LLM) ParsePackageMetadata(string) (string, bool) { return "", false }
