package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/kamilpajak/traitlab/internal/analysis"
	"github.com/kamilpajak/traitlab/pkg/bigfive"
	"github.com/kamilpajak/traitlab/pkg/results"
)

// Summary bundles every derived view of one run.
type Summary struct {
	RunID             string                     `json:"run_id"`
	StartedAt         time.Time                  `json:"started_at"`
	FinishedAt        time.Time                  `json:"finished_at"`
	GenerationRows    int                        `json:"generation_rows"`
	QuestionnaireRows int                        `json:"questionnaire_rows"`
	Skips             results.SkipCounts         `json:"skips"`
	Confusion         []analysis.ConfusionMatrix `json:"confusion_matrices"`
	LevelMeans        []analysis.LevelMean       `json:"questionnaire_means"`
	Similarity        []analysis.TraitSimilarity `json:"similarity"`
}

// Build derives the full summary of a run.
func Build(run *results.Run) Summary {
	scored := analysis.ScoreQuestionnaire(run.Questionnaire, bigfive.LikertScale())
	return Summary{
		RunID:             run.ID.String(),
		StartedAt:         run.StartedAt,
		FinishedAt:        run.FinishedAt,
		GenerationRows:    len(run.Generation),
		QuestionnaireRows: len(run.Questionnaire),
		Skips:             run.Skips,
		Confusion:         analysis.ConfusionMatrices(run.Generation),
		LevelMeans:        analysis.LevelMeans(scored),
		Similarity:        analysis.TraitSimilarities(run.Generation),
	}
}

// WriteJSON writes the summary as indented JSON.
func (s Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteText writes the summary as a sequence of text tables.
func (s Summary) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "Run %s (%s)\n\n", s.RunID, s.FinishedAt.Sub(s.StartedAt).Round(time.Second))

	if err := s.writeOverview(w); err != nil {
		return err
	}
	if err := s.writeConfusion(w); err != nil {
		return err
	}
	if err := s.writeLevelMeans(w); err != nil {
		return err
	}
	return s.writeSimilarity(w)
}

func (s Summary) writeOverview(w io.Writer) error {
	table := newTable(w, []string{"Metric", "Count"})
	rows := [][]string{
		{"Generation rows", strconv.Itoa(s.GenerationRows)},
		{"Generation skips", strconv.Itoa(s.Skips.Generation)},
		{"Judge skips", strconv.Itoa(s.Skips.Judge)},
		{"Judge parse errors", strconv.Itoa(s.Skips.ParseErrors)},
		{"Questionnaire rows", strconv.Itoa(s.QuestionnaireRows)},
		{"Questionnaire skips", strconv.Itoa(s.Skips.Questionnaire)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func (s Summary) writeConfusion(w io.Writer) error {
	fmt.Fprintln(w, "Prompted vs. detected buckets")
	if len(s.Confusion) == 0 {
		_, err := fmt.Fprintln(w, "  no judged rows to compare")
		return err
	}
	for _, m := range s.Confusion {
		fmt.Fprintf(w, "\n%s / %s (%d rows)\n", m.ModelKey, m.Trait, m.Total())
		table := newTable(w, []string{"Prompted", "low", "medium", "high"})
		for p := analysis.BucketLow; p <= analysis.BucketHigh; p++ {
			row := []string{p.String()}
			for d := analysis.BucketLow; d <= analysis.BucketHigh; d++ {
				row = append(row, strconv.Itoa(m.Counts[p][d]))
			}
			if err := table.Append(row); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func (s Summary) writeLevelMeans(w io.Writer) error {
	fmt.Fprintln(w, "Questionnaire means (adjusted scores)")
	if len(s.LevelMeans) == 0 {
		_, err := fmt.Fprintln(w, "  no questionnaire rows to score")
		return err
	}
	table := newTable(w, []string{"Model", "Trait", "Level", "Mean", "N", "1/2/3/4/5"})
	for _, m := range s.LevelMeans {
		row := []string{
			m.ModelKey,
			m.Trait,
			string(m.Level),
			strconv.FormatFloat(m.Mean, 'f', 2, 64),
			strconv.Itoa(m.N),
			histCell(m.Hist),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func (s Summary) writeSimilarity(w io.Writer) error {
	fmt.Fprintln(w, "Linguistic similarity between prompted intensities")
	if len(s.Similarity) == 0 {
		_, err := fmt.Fprintln(w, "  no generated texts to compare")
		return err
	}
	for _, sim := range s.Similarity {
		fmt.Fprintf(w, "\n%s / %s\n", sim.ModelKey, sim.Trait)
		table := newTable(w, []string{"Score", "1", "2", "3", "4", "5"})
		for i := 0; i < 5; i++ {
			row := []string{strconv.Itoa(i + 1)}
			for j := 0; j < 5; j++ {
				row = append(row, strconv.FormatFloat(sim.Matrix[i][j], 'f', 2, 64))
			}
			if err := table.Append(row); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

// histCell renders a 1..5 score histogram as slash-separated counts.
func histCell(h [5]int) string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, "/")
}

// newTable creates a table writer with the formatting shared by all report
// tables.
func newTable(w io.Writer, headers []string) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{Left: tw.On, Top: tw.Off, Right: tw.On, Bottom: tw.Off},
		}),
	)
}
