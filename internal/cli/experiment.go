package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/askoren/blockplan/internal/config"
	"github.com/askoren/blockplan/internal/display"
	"github.com/askoren/blockplan/internal/experiment"
	"github.com/askoren/blockplan/internal/llm"
)

var (
	experimentModel string
	experimentRuns  int
	experimentCSV   string
	experimentDB    string
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Sweep problem sizes and prompting configurations",
	Long: `Run the full experiment: for each configured problem size, run both
the baseline arm (static prompt) and the enhanced arm (aggregated
counterexample feedback) for the configured number of independent runs.

Per-run results are appended to the results database and exported as
CSV. Render a chart afterwards with 'blockplan plot'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err := config.Load(cwd)
		if err != nil {
			return err
		}

		model := cfg.LLM.Model
		if experimentModel != "" {
			model = experimentModel
		}
		planner, err := llm.Select(model, llm.Options{
			APIKey:     cfg.LLM.APIKey(),
			BaseURL:    cfg.LLM.BaseURL,
			OllamaHost: cfg.LLM.OllamaHost,
		})
		if err != nil {
			return err
		}

		runsPerConfig := cfg.Experiment.RunsPerConfig
		if experimentRuns > 0 {
			runsPerConfig = experimentRuns
		}
		csvPath := cfg.Experiment.ResultsCSV
		if experimentCSV != "" {
			csvPath = experimentCSV
		}
		dbPath := cfg.Experiment.ResultsDB
		if experimentDB != "" {
			dbPath = experimentDB
		}

		disp := display.New()
		runner := &experiment.Runner{
			Planner:       planner,
			Sizes:         cfg.Experiment.Sizes,
			RunsPerConfig: runsPerConfig,
			MaxIterations: cfg.Experiment.MaxIterations,
			Temperature:   cfg.LLM.Temperature,
			Progress: func(res experiment.Result) {
				disp.Info("run", fmt.Sprintf(
					"size %d, config %s, run %d: success=%t, iterations=%d",
					res.NumBlocks, res.Config, res.Run, res.Success, res.Iterations))
			},
		}

		ctx := context.Background()
		results, err := runner.Run(ctx)
		if err != nil {
			return err
		}

		if err := experiment.SaveCSV(csvPath, results); err != nil {
			return err
		}
		disp.Success(fmt.Sprintf("Results saved to %s", csvPath))

		store, err := experiment.OpenStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.InsertAll(ctx, model, results); err != nil {
			return err
		}
		disp.Success(fmt.Sprintf("Results recorded in %s", dbPath))
		return nil
	},
}

func init() {
	experimentCmd.Flags().StringVar(&experimentModel, "model", "", "model to use (default from config)")
	experimentCmd.Flags().IntVar(&experimentRuns, "runs", 0, "independent runs per configuration (default from config)")
	experimentCmd.Flags().StringVar(&experimentCSV, "csv", "", "CSV output path (default from config)")
	experimentCmd.Flags().StringVar(&experimentDB, "db", "", "results database path (default from config)")
	rootCmd.AddCommand(experimentCmd)
}
