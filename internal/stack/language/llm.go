package language

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gizzahub/universalbuild/internal/llmclient"
	"github.com/gizzahub/universalbuild/internal/model"
)

// llmDetectionResponse is the schema an LLM-backed language detector
// requires response.content to parse to (spec.md §6).
type llmDetectionResponse struct {
	Language    string  `json:"language"`
	BuildSystem string  `json:"build_system"`
	Confidence  float64 `json:"confidence"`
}

// LLM wraps a Client as a Definition, used only in llm/full modes and
// only ever registered after every deterministic language. The Stack
// phase consults it when no deterministic candidate matched a service
// and, in full mode, also when the picked candidate scored Low (spec.md
// §4.1, §4.4).
type LLM struct {
	Base
	Client llmclient.Client
}

func NewLLM(client llmclient.Client) LLM { return LLM{Client: client} }

func (LLM) ID() model.LanguageID { return model.CustomLanguage("llm-language") }

func (LLM) Extensions() []string { return nil }

func (LLM) ManifestPatterns() []model.ManifestPattern { return nil }

// Detect is not used directly by the stack registry for LLM languages —
// the service pipeline's Stack phase calls DetectWithContext so it can
// pass a context and propagate errtax errors. Detect always returns nil
// to keep LLM from claiming a match during the synchronous detect_all
// accumulation pass.
func (LLM) Detect(string, string) *model.LanguageDetection { return nil }

func (l LLM) CompatibleBuildSystems() []model.BuildSystemID { return nil }

func (l LLM) IsRunnable(string, string) bool { return true }

// DetectWithContext asks the LLM backend whether manifestName/content
// implies a language+build system it recognizes, accepting the answer
// only when confidence >= 0.5 per spec.md §6's LLM contract.
func (l LLM) DetectWithContext(ctx context.Context, manifestName, content string) (model.LanguageID, model.LanguageDetection, bool, error) {
	prompt := fmt.Sprintf("Identify the language and build system implied by manifest %q:\n%s", manifestName, content)
	resp, err := l.Client.Chat(ctx, llmclient.Request{
		Messages: []llmclient.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return model.LanguageID{}, model.LanguageDetection{}, false, err
	}

	var parsed llmDetectionResponse
	if err := json.Unmarshal([]byte(resp.Content), &parsed); err != nil {
		return model.LanguageID{}, model.LanguageDetection{}, false, nil
	}
	if parsed.Confidence < 0.5 {
		return model.LanguageID{}, model.LanguageDetection{}, false, nil
	}

	lang := model.CustomLanguage(parsed.Language)
	bs := model.CustomBuildSystem(parsed.BuildSystem)
	return lang, model.LanguageDetection{BuildSystem: bs, Confidence: parsed.Confidence}, true, nil
}
