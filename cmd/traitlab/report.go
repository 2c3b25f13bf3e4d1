package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kamilpajak/traitlab/internal/config"
	"github.com/kamilpajak/traitlab/internal/report"
	"github.com/kamilpajak/traitlab/internal/store"
)

var (
	reportRunID  string
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a stored run without touching any backend",
	Long: `Reload a run from the local database and re-derive its summary:
confusion matrices, questionnaire means and linguistic similarity.

Defaults to the most recent run; pass --run to pick an older one.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportRunID, "run", "", "Run ID to report on (defaults to the latest run)")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "Output format (text, json)")
	reportCmd.Flags().StringVar(&resultsDir, "results-dir", "", "Directory holding the run database (overrides RESULTS_DIR)")
}

func runReport(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if resultsDir != "" {
		cfg.ResultsDir = resultsDir
	}

	st, err := store.Open(filepath.Join(cfg.ResultsDir, dbFile))
	if err != nil {
		return err
	}
	defer st.Close()

	var id uuid.UUID
	if reportRunID != "" {
		if id, err = uuid.Parse(reportRunID); err != nil {
			return fmt.Errorf("invalid run id %q: %w", reportRunID, err)
		}
	} else {
		if id, err = st.LatestRunID(); err != nil {
			return err
		}
	}

	run, err := st.LoadRun(id)
	if err != nil {
		return err
	}

	summary := report.Build(run)
	if reportFormat == "json" {
		return summary.WriteJSON(os.Stdout)
	}
	return summary.WriteText(os.Stdout)
}
