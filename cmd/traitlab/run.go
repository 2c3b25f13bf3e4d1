package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamilpajak/traitlab/internal/analysis"
	"github.com/kamilpajak/traitlab/internal/config"
	"github.com/kamilpajak/traitlab/internal/experiment"
	"github.com/kamilpajak/traitlab/internal/judge"
	"github.com/kamilpajak/traitlab/internal/llm"
	"github.com/kamilpajak/traitlab/internal/report"
	"github.com/kamilpajak/traitlab/internal/store"
)

// dbFile is the run database inside the results directory.
const dbFile = "traitlab.db"

var (
	rosterPath string
	resultsDir string
	noStore    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run both experiment sweeps over the model roster",
	Long: `Run the persona-prompted generation sweep and the BFI-44 questionnaire
sweep over every model in the roster, then write CSVs, store the run and
print a summary.

The roster defaults to one Ollama and one Groq model; point --config at
a models.yaml to change it. The judge always runs on Groq, so GROQ_API_KEY
is required.`,
	RunE: runSweeps,
}

func init() {
	runCmd.Flags().StringVarP(&rosterPath, "config", "c", "", "Path to a models.yaml roster")
	runCmd.Flags().StringVar(&resultsDir, "results-dir", "", "Directory for output files (overrides RESULTS_DIR)")
	runCmd.Flags().BoolVar(&noStore, "no-store", false, "Skip saving the run to the local database")
}

func runSweeps(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if resultsDir != "" {
		cfg.ResultsDir = resultsDir
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	specs := config.DefaultRoster()
	if rosterPath != "" {
		if specs, err = config.LoadRoster(rosterPath); err != nil {
			return err
		}
	}

	groq, err := llm.NewGroqClient(cfg.GroqAPIKey,
		llm.WithGroqBaseURL(cfg.GroqBaseURL),
		llm.WithGroqRequestsPerMinute(cfg.GroqRPM),
		llm.WithGroqHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		llm.WithGroqLogger(logger),
	)
	if err != nil {
		return err
	}

	var ollama *llm.OllamaClient
	for _, spec := range specs {
		if spec.Provider == llm.ProviderOllama {
			ollama = llm.NewOllamaClient(cfg.OllamaHost, llm.WithOllamaLogger(logger))
			break
		}
	}

	fmt.Fprintf(os.Stderr, "Preparing %d models...\n", len(specs))
	roster, err := llm.BuildRoster(ctx, specs, groq, ollama)
	if err != nil {
		return fmt.Errorf("failed to build roster: %w", err)
	}

	reporter := newProgressReporter(os.Stderr)
	defer reporter.Close()

	eng := experiment.New(experiment.Params{
		Roster:   roster,
		Judge:    judge.New(groq, cfg.JudgeModel, logger),
		Logger:   logger,
		Reporter: reporter,
	})

	run, err := eng.Run(ctx)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	reporter.Close()

	csvw := report.NewCSVWriter(cfg.ResultsDir, logger)
	if err := csvw.WriteGeneration(run.Generation); err != nil {
		return err
	}
	if err := csvw.WriteQuestionnaire(run.Questionnaire); err != nil {
		return err
	}
	if err := csvw.WriteSimilarity(analysis.SimilarityRows(run.Generation)); err != nil {
		return err
	}
	dim := color.New(color.FgHiBlack)
	_, _ = dim.Fprintf(os.Stderr, "Results written to %s\n", cfg.ResultsDir)

	if !noStore {
		st, err := store.Open(filepath.Join(cfg.ResultsDir, dbFile))
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.SaveRun(run); err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		logger.Info("run saved", zap.String("run_id", run.ID.String()))
	}

	fmt.Fprintln(os.Stderr)
	return report.Build(run).WriteText(os.Stdout)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
