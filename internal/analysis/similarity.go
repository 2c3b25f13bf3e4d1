package analysis

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/kamilpajak/traitlab/pkg/results"
)

// TraitSimilarity holds the 5x5 cosine similarity grid between the mean
// TF-IDF vectors of the texts generated at each prompted intensity, for one
// (model, trait) cell.
type TraitSimilarity struct {
	ModelKey string        `json:"model_key"`
	Trait    string        `json:"trait"`
	Matrix   [5][5]float64 `json:"matrix"`
}

// SimilarityRow is one flattened cell of a similarity grid.
type SimilarityRow struct {
	ModelKey   string  `json:"model_key"`
	Trait      string  `json:"trait"`
	Score1     int     `json:"prompted_score_1"`
	Score2     int     `json:"prompted_score_2"`
	Similarity float64 `json:"similarity_score"`
}

// TraitSimilarities computes one similarity grid per non-empty (model, trait)
// cell. Model and trait orders follow first appearance in the records; the
// vocabulary is fitted per cell.
func TraitSimilarities(records []results.GenerationRecord) []TraitSimilarity {
	var (
		models []string
		traits []string
	)
	seenModel := make(map[string]bool)
	seenTrait := make(map[string]bool)
	for _, r := range records {
		if !seenModel[r.ModelKey] {
			seenModel[r.ModelKey] = true
			models = append(models, r.ModelKey)
		}
		if !seenTrait[r.PromptedTrait] {
			seenTrait[r.PromptedTrait] = true
			traits = append(traits, r.PromptedTrait)
		}
	}

	var out []TraitSimilarity
	for _, model := range models {
		for _, trait := range traits {
			var (
				texts  []string
				scores []int
			)
			for _, r := range records {
				if r.ModelKey == model && r.PromptedTrait == trait {
					texts = append(texts, r.GeneratedText)
					scores = append(scores, r.PromptedScore)
				}
			}
			if len(texts) == 0 {
				continue
			}
			out = append(out, TraitSimilarity{
				ModelKey: model,
				Trait:    trait,
				Matrix:   similarityMatrix(texts, scores),
			})
		}
	}
	return out
}

// SimilarityRows flattens every similarity grid into 25 rows per cell, in
// row-major score order.
func SimilarityRows(records []results.GenerationRecord) []SimilarityRow {
	var rows []SimilarityRow
	for _, sim := range TraitSimilarities(records) {
		for i := 0; i < 5; i++ {
			for j := 0; j < 5; j++ {
				rows = append(rows, SimilarityRow{
					ModelKey:   sim.ModelKey,
					Trait:      sim.Trait,
					Score1:     i + 1,
					Score2:     j + 1,
					Similarity: sim.Matrix[i][j],
				})
			}
		}
	}
	return rows
}

// similarityMatrix vectorizes the texts with TF-IDF (terms of two or more
// word characters, stop words removed, document frequency of at least two,
// smoothed idf, L2-normalized rows) and returns the pairwise cosine
// similarity of the per-intensity mean vectors. An empty vocabulary yields
// the zero grid, and intensities with no texts contribute zero vectors.
func similarityMatrix(texts []string, scores []int) [5][5]float64 {
	var grid [5][5]float64

	n := len(texts)
	docs := make([][]string, n)
	df := make(map[string]int)
	for i, text := range texts {
		docs[i] = tokenize(text)
		seen := make(map[string]bool)
		for _, tok := range docs[i] {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	var vocab []string
	for tok, count := range df {
		if count >= 2 {
			vocab = append(vocab, tok)
		}
	}
	if len(vocab) == 0 {
		return grid
	}
	sort.Strings(vocab)
	index := make(map[string]int, len(vocab))
	for i, tok := range vocab {
		index[tok] = i
	}

	idf := make([]float64, len(vocab))
	for i, tok := range vocab {
		idf[i] = math.Log(float64(1+n)/float64(1+df[tok])) + 1
	}

	rows := make([][]float64, n)
	for i, toks := range docs {
		vec := make([]float64, len(vocab))
		for _, tok := range toks {
			if j, ok := index[tok]; ok {
				vec[j]++
			}
		}
		var norm float64
		for j := range vec {
			vec[j] *= idf[j]
			norm += vec[j] * vec[j]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range vec {
				vec[j] /= norm
			}
		}
		rows[i] = vec
	}

	var means [5][]float64
	for s := 1; s <= 5; s++ {
		mean := make([]float64, len(vocab))
		count := 0
		for i, score := range scores {
			if score != s {
				continue
			}
			for j, v := range rows[i] {
				mean[j] += v
			}
			count++
		}
		if count > 0 {
			for j := range mean {
				mean[j] /= float64(count)
			}
		}
		means[s-1] = mean
	}

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			grid[i][j] = cosine(means[i], means[j])
		}
	}
	return grid
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// tokenize lowercases the text, splits it into runs of word characters, and
// keeps runs of length two or more that are not stop words.
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	var (
		tokens []string
		run    []rune
	)
	flush := func() {
		if len(run) >= 2 {
			tok := string(run)
			if !englishStopWords[tok] {
				tokens = append(tokens, tok)
			}
		}
		run = run[:0]
	}
	for _, r := range lower {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			run = append(run, r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}
