package stack

import (
	"testing"

	"github.com/gizzahub/universalbuild/internal/detectconfig"
	"github.com/gizzahub/universalbuild/internal/llmclient"
)

func TestStaticModeExcludesLLMVariants(t *testing.T) {
	reg := WithDefaults(detectconfig.ModeStatic, nil)
	for _, l := range reg.Languages {
		if l.ID().String() == "llm-language" {
			t.Fatal("static mode must not register an LLM language variant")
		}
	}
	if reg.AllowLLMOverride {
		t.Fatal("static mode must not allow LLM override")
	}
}

func TestLLMModeAppendsVariantsLast(t *testing.T) {
	static := WithDefaults(detectconfig.ModeStatic, nil)
	withLLM := WithDefaults(detectconfig.ModeLLM, llmclient.NewMock())

	if len(withLLM.Languages) != len(static.Languages)+1 {
		t.Fatalf("expected exactly one LLM language appended, got %d vs %d", len(withLLM.Languages), len(static.Languages))
	}
	if len(withLLM.BuildSystems) != len(static.BuildSystems)+1 {
		t.Fatalf("expected exactly one LLM build system appended, got %d vs %d", len(withLLM.BuildSystems), len(static.BuildSystems))
	}
	if withLLM.AllowLLMOverride {
		t.Fatal("llm mode (not full) must not allow override of deterministic results")
	}
}

func TestFullModeAllowsOverride(t *testing.T) {
	reg := WithDefaults(detectconfig.ModeFull, llmclient.NewMock())
	if !reg.AllowLLMOverride {
		t.Fatal("full mode must allow LLM override")
	}
}

func TestRuntimeByName(t *testing.T) {
	reg := WithDefaults(detectconfig.ModeStatic, nil)
	if _, ok := reg.RuntimeByName("node"); !ok {
		t.Fatal("expected node runtime to be registered")
	}
	if _, ok := reg.RuntimeByName("does-not-exist"); ok {
		t.Fatal("unexpected runtime match")
	}
}
