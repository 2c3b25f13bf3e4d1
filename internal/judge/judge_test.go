package judge

import (
	"context"
	"errors"
	"testing"

	"github.com/kamilpajak/traitlab/internal/llm"
	"github.com/kamilpajak/traitlab/pkg/bigfive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply       string
	err         error
	lastModelID string
	lastReq     llm.Request
	calls       int
}

func (s *stubGenerator) Generate(_ context.Context, modelID string, req llm.Request) (string, error) {
	s.calls++
	s.lastModelID = modelID
	s.lastReq = req
	return s.reply, s.err
}

func opennessTrait(t *testing.T) bigfive.Trait {
	t.Helper()
	tr, ok := bigfive.TraitByCode(bigfive.Openness)
	require.True(t, ok)
	return tr
}

func TestSystemPrompt_CarriesClassificationView(t *testing.T) {
	tr := opennessTrait(t)
	prompt := SystemPrompt(tr)

	assert.Contains(t, prompt, "Detect the score of Openness")
	assert.Contains(t, prompt, "[-2, -1, 0, 1, 2] or Nondistinguishable")
	assert.Contains(t, prompt, tr.Classification.Definition)
	assert.Contains(t, prompt, "High score of Openness (maximum 2): '"+tr.Classification.High+"'")
	assert.Contains(t, prompt, "Low score of Openness (minimum -2): '"+tr.Classification.Low+"'")
	assert.Contains(t, prompt, "keys: score, clues, reasoning, decision type. PROVIDE ONLY JSON.")
	assert.Contains(t, prompt, "Explicit signs")
	assert.Contains(t, prompt, "Implicit signs")
	assert.Contains(t, prompt, "Intuition")
	assert.NotContains(t, prompt, "\n", "the instruction is a single line")
}

func TestUserPrompt(t *testing.T) {
	assert.Equal(t, "Question: Q INPUT: some text", UserPrompt("Q", "some text"))
}

func TestEvaluate_UsesJudgeModelAtTemperatureZero(t *testing.T) {
	stub := &stubGenerator{reply: `{"score": 2, "clues": "c", "reasoning": "r", "decision type": "Implicit signs"}`}
	j := New(stub, "llama3-70b-8192", nil)

	v, err := j.Evaluate(context.Background(), opennessTrait(t), "What is your dream career?", "I want to paint.")
	require.NoError(t, err)

	assert.Equal(t, "llama3-70b-8192", stub.lastModelID)
	require.NotNil(t, stub.lastReq.Temperature)
	assert.Equal(t, 0.0, *stub.lastReq.Temperature)
	assert.Contains(t, stub.lastReq.System, "Openness")
	assert.Equal(t, "Question: What is your dream career? INPUT: I want to paint.", stub.lastReq.User)

	require.NotNil(t, v.Score)
	assert.Equal(t, "2", *v.Score)
	assert.Equal(t, 1, stub.calls)
}

func TestEvaluate_BackendErrorPropagates(t *testing.T) {
	stub := &stubGenerator{err: errors.New("retries exhausted")}
	j := New(stub, "llama3-70b-8192", nil)

	_, err := j.Evaluate(context.Background(), opennessTrait(t), "q", "text")
	require.Error(t, err)
}

func TestEvaluate_UnparseableReplyIsNotAnError(t *testing.T) {
	stub := &stubGenerator{reply: "I refuse to answer in JSON."}
	j := New(stub, "llama3-70b-8192", nil)

	v, err := j.Evaluate(context.Background(), opennessTrait(t), "q", "text")
	require.NoError(t, err)
	assert.True(t, v.IsParseError())
}
