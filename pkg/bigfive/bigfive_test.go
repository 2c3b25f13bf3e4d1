package bigfive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraits_OrderAndViews(t *testing.T) {
	ts := Traits()
	require.Len(t, ts, 5)

	wantOrder := []Code{Openness, Conscientiousness, Extraversion, Agreeableness, Neuroticism}
	for i, tr := range ts {
		assert.Equal(t, wantOrder[i], tr.Code)
		assert.NotEmpty(t, tr.Name)
		assert.NotEmpty(t, tr.Generation.Low)
		assert.NotEmpty(t, tr.Generation.High)
		assert.NotEmpty(t, tr.Classification.Definition)
		assert.NotEmpty(t, tr.Classification.Low)
		assert.NotEmpty(t, tr.Classification.High)
	}
}

func TestTraitByCode(t *testing.T) {
	tr, ok := TraitByCode(Neuroticism)
	require.True(t, ok)
	assert.Equal(t, "Neuroticism", tr.Name)

	_, ok = TraitByCode(Code("X"))
	assert.False(t, ok)
}

func TestQuestions_Count(t *testing.T) {
	qs := Questions()
	assert.Len(t, qs, 6)
	assert.Equal(t, "What is your dream career?", qs[0])
	assert.Equal(t, "What does the world need more of?", qs[5])
}

func TestItemGroups_BankIntegrity(t *testing.T) {
	groups := ItemGroups()
	require.Len(t, groups, 5)

	wantCounts := map[string]int{
		"openness":          10,
		"conscientiousness": 9,
		"extraversion":      8,
		"agreeableness":     9,
		"neuroticism":       8,
	}
	wantOrder := []string{"openness", "conscientiousness", "extraversion", "agreeableness", "neuroticism"}

	total := 0
	seen := map[int]bool{}
	for i, g := range groups {
		assert.Equal(t, wantOrder[i], g.Key)
		assert.Equal(t, Code(strings.ToUpper(g.Key[:1])), g.Code)
		assert.Len(t, g.Items, wantCounts[g.Key])
		for _, item := range g.Items {
			assert.False(t, seen[item.Num], "duplicate item number %d", item.Num)
			seen[item.Num] = true
			assert.True(t, item.Type == Direct || item.Type == Inverted)
			assert.True(t, strings.HasPrefix(item.Statement, "I see myself as someone who "))
			total++
		}
	}
	assert.Equal(t, 44, total)
	for n := 1; n <= 44; n++ {
		assert.True(t, seen[n], "item number %d missing", n)
	}
}

func TestLikertScale_OrderedScores(t *testing.T) {
	opts := LikertScale()
	require.Len(t, opts, 5)
	for i, o := range opts {
		assert.Equal(t, i+1, o.Score)
		assert.Contains(t, o.Phrase, "the statement")
	}
	assert.Equal(t, "disagree strongly with the statement", opts[0].Phrase)
	assert.Equal(t, "agree strongly with the statement", opts[4].Phrase)
}
