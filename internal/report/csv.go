// Package report persists run results as CSV files and renders the derived
// summaries as text tables or JSON.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/kamilpajak/traitlab/internal/analysis"
	"github.com/kamilpajak/traitlab/pkg/results"
)

// Output filenames inside the results directory.
const (
	GenerationCSV    = "text_generation_results.csv"
	QuestionnaireCSV = "questionnaire_results.csv"
	SimilarityCSV    = "linguistic_similarity_data.csv"
)

// CSVWriter writes result tables into a results directory, creating it on
// first use. Empty tables are skipped with a warning instead of producing
// header-only files.
type CSVWriter struct {
	dir    string
	logger *zap.Logger
}

// NewCSVWriter returns a writer rooted at dir. A nil logger disables logging.
func NewCSVWriter(dir string, logger *zap.Logger) *CSVWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVWriter{dir: dir, logger: logger}
}

// WriteGeneration writes the text generation results table.
func (w *CSVWriter) WriteGeneration(records []results.GenerationRecord) error {
	if len(records) == 0 {
		w.logger.Warn("no generation rows, skipping save", zap.String("file", GenerationCSV))
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ModelKey,
			r.ModelID,
			r.PromptedTrait,
			strconv.Itoa(r.PromptedScore),
			r.Question,
			r.GeneratedText,
			optional(r.JudgeScore),
			optional(r.JudgeClues),
			optional(r.JudgeReasoning),
			optional(r.JudgeDecisionType),
		})
	}
	header := []string{
		"model_key", "model_id", "prompted_trait", "prompted_score", "question",
		"generated_text", "judge_score", "judge_clues", "judge_reasoning", "judge_decision_type",
	}
	return w.write(GenerationCSV, header, rows)
}

// WriteQuestionnaire writes the questionnaire results table.
func (w *CSVWriter) WriteQuestionnaire(records []results.QuestionnaireRecord) error {
	if len(records) == 0 {
		w.logger.Warn("no questionnaire rows, skipping save", zap.String("file", QuestionnaireCSV))
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ModelKey,
			r.Trait,
			string(r.PromptedLevel),
			r.QType,
			r.Answer,
		})
	}
	header := []string{"model_key", "trait", "prompted_level", "Q_type", "Answer"}
	return w.write(QuestionnaireCSV, header, rows)
}

// WriteSimilarity writes the flattened linguistic similarity table.
func (w *CSVWriter) WriteSimilarity(simRows []analysis.SimilarityRow) error {
	if len(simRows) == 0 {
		w.logger.Warn("no similarity rows, skipping save", zap.String("file", SimilarityCSV))
		return nil
	}

	rows := make([][]string, 0, len(simRows))
	for _, r := range simRows {
		rows = append(rows, []string{
			r.ModelKey,
			r.Trait,
			strconv.Itoa(r.Score1),
			strconv.Itoa(r.Score2),
			strconv.FormatFloat(r.Similarity, 'g', -1, 64),
		})
	}
	header := []string{"model_key", "trait", "prompted_score_1", "prompted_score_2", "similarity_score"}
	return w.write(SimilarityCSV, header, rows)
}

func (w *CSVWriter) write(filename string, header []string, rows [][]string) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create results directory: %w", err)
	}

	path := filepath.Join(w.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	w.logger.Info("saved results", zap.String("file", path), zap.Int("rows", len(rows)))
	return nil
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
