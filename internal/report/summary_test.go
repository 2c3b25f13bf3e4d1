package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamilpajak/traitlab/pkg/results"
)

func sampleRun() *results.Run {
	run := results.NewRun()
	run.FinishedAt = run.StartedAt.Add(90 * time.Second)
	run.Generation = []results.GenerationRecord{
		{
			ModelKey:          "Llama-3.1-8B",
			PromptedTrait:     "Openness",
			PromptedScore:     5,
			GeneratedText:     "crimson scarlet ruby",
			JudgeScore:        strp("2"),
			JudgeDecisionType: strp("Explicit signs"),
		},
		{
			ModelKey:          "Llama-3.1-8B",
			PromptedTrait:     "Openness",
			PromptedScore:     1,
			GeneratedText:     "crimson scarlet ruby",
			JudgeScore:        strp("-2"),
			JudgeDecisionType: strp("Implicit signs"),
		},
	}
	run.Questionnaire = []results.QuestionnaireRecord{
		{ModelKey: "Llama-3.1-8B", Trait: "Openness", PromptedLevel: results.LevelHigh, QType: "direct", Answer: "agree strongly with the statement"},
		{ModelKey: "Llama-3.1-8B", Trait: "Openness", PromptedLevel: results.LevelLow, QType: "direct", Answer: "disagree strongly with the statement"},
	}
	run.Skips = results.SkipCounts{Generation: 1, ParseErrors: 2}
	return run
}

func TestBuild(t *testing.T) {
	s := Build(sampleRun())

	assert.Equal(t, 2, s.GenerationRows)
	assert.Equal(t, 2, s.QuestionnaireRows)
	assert.Equal(t, 1, s.Skips.Generation)
	assert.Equal(t, 2, s.Skips.ParseErrors)

	require.Len(t, s.Confusion, 1)
	assert.Equal(t, 2, s.Confusion[0].Total())

	require.Len(t, s.LevelMeans, 2)
	assert.InDelta(t, 5.0, s.LevelMeans[0].Mean, 1e-9)
	assert.Equal(t, [5]int{0, 0, 0, 0, 1}, s.LevelMeans[0].Hist)
	assert.InDelta(t, 1.0, s.LevelMeans[1].Mean, 1e-9)

	require.Len(t, s.Similarity, 1)
	assert.InDelta(t, 1.0, s.Similarity[0].Matrix[0][4], 1e-9, "identical texts at intensities 1 and 5")
}

func TestSummary_WriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Build(sampleRun()).WriteText(&buf))
	out := buf.String()

	assert.Contains(t, out, "Generation rows")
	assert.Contains(t, out, "Judge parse errors")
	assert.Contains(t, out, "Prompted vs. detected buckets")
	assert.Contains(t, out, "Llama-3.1-8B / Openness")
	assert.Contains(t, out, "Questionnaire means")
	assert.Contains(t, out, "Linguistic similarity")
	assert.Contains(t, out, "5.00")
}

func TestSummary_WriteText_EmptyRun(t *testing.T) {
	run := results.NewRun()
	run.FinishedAt = run.StartedAt

	var buf bytes.Buffer
	require.NoError(t, Build(run).WriteText(&buf))
	out := buf.String()

	assert.Contains(t, out, "no judged rows to compare")
	assert.Contains(t, out, "no questionnaire rows to score")
	assert.Contains(t, out, "no generated texts to compare")
}

func TestSummary_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Build(sampleRun()).WriteJSON(&buf))

	var decoded Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.GenerationRows)
	assert.Len(t, decoded.Confusion, 1)
	assert.Len(t, decoded.LevelMeans, 2)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	for _, key := range []string{"run_id", "skips", "confusion_matrices", "questionnaire_means", "similarity"} {
		assert.Contains(t, raw, key)
	}
}
