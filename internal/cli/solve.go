package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askoren/blockplan/internal/config"
	"github.com/askoren/blockplan/internal/display"
	"github.com/askoren/blockplan/internal/llm"
	"github.com/askoren/blockplan/internal/loop"
	"github.com/askoren/blockplan/internal/problem"
)

var (
	solveIterations int
	solveBaseline   bool
	solveNoColor    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <model> <num-blocks>",
	Short: "Run one refinement session to completion",
	Long: `Run a single counterexample-guided planning session.

The model id selects the backend: gpt-style ids use the OpenAI API
(key read from the configured environment variable, OPENAI_API_KEY by
default); anything else is served through a local Ollama server.

Examples:
  blockplan solve gpt-4o 5
  blockplan solve llama3.1:8b 4 --iterations 30`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		model := args[0]
		numBlocks, err := strconv.Atoi(args[1])
		if err != nil || numBlocks < 2 {
			return fmt.Errorf("num-blocks must be an integer >= 2, got %q", args[1])
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err := config.Load(cwd)
		if err != nil {
			return err
		}

		planner, err := llm.Select(model, llm.Options{
			APIKey:     cfg.LLM.APIKey(),
			BaseURL:    cfg.LLM.BaseURL,
			OllamaHost: cfg.LLM.OllamaHost,
		})
		if err != nil {
			return err
		}

		maxIterations := cfg.Loop.MaxIterations
		if solveIterations > 0 {
			maxIterations = solveIterations
		}

		disp := display.NewWithOptions(solveNoColor)
		disp.Box("TASK", strings.Split(problem.InitialDescription(numBlocks), "\n")...)
		disp.Box("GOAL", strings.Split(problem.GoalDescription(numBlocks), "\n")...)

		ctrl := &loop.Controller{
			Planner:       planner,
			NumBlocks:     numBlocks,
			Init:          problem.Tower,
			Goal:          problem.ReversedTower,
			MaxIterations: maxIterations,
			Temperature:   cfg.LLM.Temperature,
			Enhanced:      !solveBaseline,
			Observer:      progressObserver(disp),
		}

		report, err := ctrl.Run(context.Background())
		if err != nil {
			return err
		}

		if !report.Success {
			disp.Error(fmt.Sprintf("No verified plan found after %d iterations.", report.Iterations))
			return fmt.Errorf("iteration budget exhausted")
		}

		disp.Success(fmt.Sprintf("Plan verified on iteration %d!", report.Iterations))
		lines := strings.Split(strings.TrimRight(report.Plan.Canonical(), "\n"), "\n")
		disp.Box("PLAN", lines...)
		return nil
	},
}

// progressObserver maps loop phase events onto status lines
func progressObserver(disp *display.Display) func(loop.Event) {
	return func(ev loop.Event) {
		switch ev.Phase {
		case loop.PhaseGenerate:
			disp.Info("iteration", fmt.Sprintf("%d: requesting plan", ev.Iteration))
		case loop.PhaseFeedback:
			disp.Warning(ev.Detail)
		}
	}
}

func init() {
	solveCmd.Flags().IntVar(&solveIterations, "iterations", 0, "maximum refinement iterations (default from config)")
	solveCmd.Flags().BoolVar(&solveBaseline, "baseline", false, "disable counterexample feedback (static prompt)")
	solveCmd.Flags().BoolVar(&solveNoColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(solveCmd)
}
