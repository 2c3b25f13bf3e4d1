// Package analysis turns raw sweep records into the derived views the report
// layer prints: Likert-scored questionnaire answers, prompted-versus-detected
// confusion matrices and linguistic similarity grids.
package analysis

import (
	"math"
	"strconv"
	"strings"

	"github.com/kamilpajak/traitlab/pkg/bigfive"
	"github.com/kamilpajak/traitlab/pkg/results"
)

// DecisionNondistinguishable is the judge decision type that marks a verdict
// as carrying no usable signal. Such rows are excluded from confusion counts.
const DecisionNondistinguishable = "Nondistinguishable"

// MatchScore maps a raw questionnaire answer onto the Likert scale. The
// answer is trimmed and lowercased, then the first scale phrase contained in
// it wins. Unmatched answers default to the neutral 3.
func MatchScore(answer string, scale []bigfive.LikertOption) int {
	cleaned := strings.ToLower(strings.TrimSpace(answer))
	for _, opt := range scale {
		if strings.Contains(cleaned, opt.Phrase) {
			return opt.Score
		}
	}
	return 3
}

// AdjustedScore reflects scores of inverted items onto the direct scale, so
// a 5 on an inverted item reads as a 1.
func AdjustedScore(score int, qType string) int {
	if qType == string(bigfive.Inverted) {
		return 6 - score
	}
	return score
}

// ScoredAnswer is a questionnaire record with its matched and adjusted
// Likert scores attached.
type ScoredAnswer struct {
	results.QuestionnaireRecord
	Score    int
	Adjusted int
}

// ScoreQuestionnaire scores every questionnaire record against the scale,
// preserving record order.
func ScoreQuestionnaire(records []results.QuestionnaireRecord, scale []bigfive.LikertOption) []ScoredAnswer {
	scored := make([]ScoredAnswer, 0, len(records))
	for _, r := range records {
		s := MatchScore(r.Answer, scale)
		scored = append(scored, ScoredAnswer{
			QuestionnaireRecord: r,
			Score:               s,
			Adjusted:            AdjustedScore(s, r.QType),
		})
	}
	return scored
}

// LevelMean is the average adjusted score of one (model, trait, level) cell.
// Hist counts adjusted scores 1..5 at indexes 0..4.
type LevelMean struct {
	ModelKey string        `json:"model_key"`
	Trait    string        `json:"trait"`
	Level    results.Level `json:"prompted_level"`
	Mean     float64       `json:"mean"`
	N        int           `json:"n"`
	Hist     [5]int        `json:"hist"`
}

// LevelMeans aggregates scored answers per (model, trait, level) in
// first-seen order.
func LevelMeans(scored []ScoredAnswer) []LevelMean {
	type key struct {
		model string
		trait string
		level results.Level
	}
	var (
		order []key
		cells = make(map[key]*LevelMean)
		sums  = make(map[key]int)
	)
	for _, s := range scored {
		k := key{s.ModelKey, s.Trait, s.PromptedLevel}
		cell, seen := cells[k]
		if !seen {
			cell = &LevelMean{ModelKey: k.model, Trait: k.trait, Level: k.level}
			cells[k] = cell
			order = append(order, k)
		}
		sums[k] += s.Adjusted
		cell.N++
		if s.Adjusted >= 1 && s.Adjusted <= 5 {
			cell.Hist[s.Adjusted-1]++
		}
	}

	means := make([]LevelMean, 0, len(order))
	for _, k := range order {
		cell := cells[k]
		cell.Mean = float64(sums[k]) / float64(cell.N)
		means = append(means, *cell)
	}
	return means
}

// Bucket is a coarse score category used on both axes of the confusion
// matrix.
type Bucket int

const (
	BucketLow Bucket = iota
	BucketMedium
	BucketHigh
)

func (b Bucket) String() string {
	switch b {
	case BucketLow:
		return "low"
	case BucketMedium:
		return "medium"
	case BucketHigh:
		return "high"
	}
	return "unknown"
}

// PromptedBucket maps a prompted 1-5 intensity onto a bucket.
func PromptedBucket(score int) (Bucket, bool) {
	switch score {
	case 1, 2:
		return BucketLow, true
	case 3:
		return BucketMedium, true
	case 4, 5:
		return BucketHigh, true
	}
	return 0, false
}

// DetectedBucket maps a raw judge score token onto a bucket. The token is
// parsed as a float and truncated toward zero, so "1.7" lands in high and
// "-0.3" in medium. Tokens outside the -2..2 range or unparseable at all do
// not map.
func DetectedBucket(raw string) (Bucket, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	switch int(f) {
	case -2, -1:
		return BucketLow, true
	case 0:
		return BucketMedium, true
	case 1, 2:
		return BucketHigh, true
	}
	return 0, false
}

// ConfusionMatrix counts prompted-versus-detected bucket pairs for one
// (model, trait) cell. Rows are prompted buckets, columns detected, both in
// low, medium, high order.
type ConfusionMatrix struct {
	ModelKey string    `json:"model_key"`
	Trait    string    `json:"trait"`
	Counts   [3][3]int `json:"counts"`
}

// Total is the number of rows counted into the matrix.
func (m ConfusionMatrix) Total() int {
	n := 0
	for _, row := range m.Counts {
		for _, c := range row {
			n += c
		}
	}
	return n
}

// ConfusionMatrices builds one matrix per (model, trait) cell that has at
// least one eligible row. A row is eligible when the judge returned a score
// and a decision type, the decision type is not Nondistinguishable, and both
// scores map onto buckets. Cells appear in first-seen order.
func ConfusionMatrices(records []results.GenerationRecord) []ConfusionMatrix {
	type key struct {
		model string
		trait string
	}
	var (
		order    []key
		matrices = make(map[key]*ConfusionMatrix)
	)
	for _, r := range records {
		if r.JudgeScore == nil || r.JudgeDecisionType == nil {
			continue
		}
		if *r.JudgeDecisionType == DecisionNondistinguishable {
			continue
		}
		prompted, ok := PromptedBucket(r.PromptedScore)
		if !ok {
			continue
		}
		detected, ok := DetectedBucket(*r.JudgeScore)
		if !ok {
			continue
		}

		k := key{r.ModelKey, r.PromptedTrait}
		m, seen := matrices[k]
		if !seen {
			m = &ConfusionMatrix{ModelKey: k.model, Trait: k.trait}
			matrices[k] = m
			order = append(order, k)
		}
		m.Counts[prompted][detected]++
	}

	out := make([]ConfusionMatrix, 0, len(order))
	for _, k := range order {
		out = append(out, *matrices[k])
	}
	return out
}
