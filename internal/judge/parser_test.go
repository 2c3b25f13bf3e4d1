package judge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestParseVerdict_EmbeddedInProse(t *testing.T) {
	raw := `Here is my analysis. {"score": 1, "clues": "x", "reasoning": "y", "decision type": "Explicit signs"} Hope that helps!`
	v := ParseVerdict(raw)

	require.NotNil(t, v.Score)
	assert.Equal(t, "1", *v.Score)
	assert.Equal(t, strp("x"), v.Clues)
	assert.Equal(t, strp("y"), v.Reasoning)
	assert.Equal(t, strp("Explicit signs"), v.DecisionType)
	assert.False(t, v.IsParseError())
}

func TestParseVerdict_NoJSON(t *testing.T) {
	v := ParseVerdict("no json here")

	assert.Nil(t, v.Score)
	assert.Nil(t, v.Clues)
	assert.Nil(t, v.DecisionType)
	require.NotNil(t, v.Reasoning)
	assert.Equal(t, ParseErrorReasoning, *v.Reasoning)
	assert.True(t, v.IsParseError())
}

func TestParseVerdict_MalformedJSON(t *testing.T) {
	v := ParseVerdict(`{score: -1, this is not json}`)
	assert.True(t, v.IsParseError())
}

func TestParseVerdict_EmptyObject(t *testing.T) {
	// A valid but empty object is a parse success with every key absent,
	// distinct from the sentinel.
	v := ParseVerdict("{}")

	assert.Nil(t, v.Score)
	assert.Nil(t, v.Clues)
	assert.Nil(t, v.Reasoning)
	assert.Nil(t, v.DecisionType)
	assert.False(t, v.IsParseError())
}

func TestParseVerdict_BracesInsideStrings(t *testing.T) {
	raw := `note {"score": -2, "clues": "uses {nested} punctuation", "reasoning": "r", "decision type": "Implicit signs"} end`
	v := ParseVerdict(raw)

	require.NotNil(t, v.Score)
	assert.Equal(t, "-2", *v.Score)
	assert.Equal(t, strp("uses {nested} punctuation"), v.Clues)
}

func TestParseVerdict_TwoObjectsIsNotParseable(t *testing.T) {
	// The greedy first-{ to last-} span covers both objects and the prose
	// between them; that is not a single JSON value.
	v := ParseVerdict(`{"score": 1} but actually {"score": 2}`)
	assert.True(t, v.IsParseError())
}

func TestParseVerdict_MissingKeys(t *testing.T) {
	v := ParseVerdict(`{"score": 0}`)

	require.NotNil(t, v.Score)
	assert.Equal(t, "0", *v.Score)
	assert.Nil(t, v.Clues)
	assert.Nil(t, v.Reasoning)
	assert.Nil(t, v.DecisionType)
	assert.False(t, v.IsParseError())
}

func TestParseVerdict_FractionalScoreKeepsRawToken(t *testing.T) {
	v := ParseVerdict(`{"score": 1.5}`)
	require.NotNil(t, v.Score)
	assert.Equal(t, "1.5", *v.Score)
}

func TestParseVerdict_NondistinguishableScore(t *testing.T) {
	v := ParseVerdict(`{"score": "Nondistinguishable", "decision type": "Nondistinguishable"}`)

	require.NotNil(t, v.Score)
	assert.Equal(t, "Nondistinguishable", *v.Score)
	assert.Equal(t, strp("Nondistinguishable"), v.DecisionType)
}

func TestParseVerdict_CluesArray(t *testing.T) {
	v := ParseVerdict(`{"clues": ["warm tone", "mentions parties", 2]}`)
	require.NotNil(t, v.Clues)
	assert.Equal(t, "warm tone; mentions parties; 2", *v.Clues)
}

func TestParseVerdict_WrongTypesBecomeNil(t *testing.T) {
	v := ParseVerdict(`{"score": [1], "clues": 5, "reasoning": 7, "decision type": true}`)

	assert.Nil(t, v.Score)
	assert.Nil(t, v.Clues)
	assert.Nil(t, v.Reasoning)
	assert.Nil(t, v.DecisionType)
	assert.False(t, v.IsParseError())
}

func TestParseVerdict_Totality(t *testing.T) {
	// Whatever the judge replies, the parser returns a complete verdict and
	// never panics.
	inputs := []string{
		"",
		"}{",
		"{",
		"}",
		"{}",
		"null",
		`[1, 2, 3]`,
		`{"score":`,
		"\x00\xff garbage bytes {",
		`prose { prose } prose`,
	}
	for _, in := range inputs {
		v := ParseVerdict(in)
		if v.IsParseError() {
			assert.Equal(t, ParseErrorReasoning, *v.Reasoning, "input %q", in)
		}
	}
}
