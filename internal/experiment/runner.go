// Package experiment sweeps the refinement loop across problem sizes
// and prompting configurations, persists per-run results, and renders
// summary charts.
package experiment

import (
	"context"
	"fmt"

	"github.com/askoren/blockplan/internal/llm"
	"github.com/askoren/blockplan/internal/loop"
	"github.com/askoren/blockplan/internal/problem"
)

// Configuration names for the two prompting arms
const (
	ConfigBaseline = "baseline"
	ConfigEnhanced = "enhanced"
)

// Result is one independent run's record
type Result struct {
	NumBlocks  int
	Config     string
	Run        int
	Success    bool
	Iterations int
}

// Runner executes the full sweep: sizes x configurations x runs
type Runner struct {
	Planner       llm.Planner
	Sizes         []int
	RunsPerConfig int
	MaxIterations int
	Temperature   float32

	// Progress is called after each run; nil disables reporting
	Progress func(Result)
}

// Run performs every configured run sequentially and returns the
// collected results. Cancellation is honored between runs.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	var results []Result
	for _, numBlocks := range r.Sizes {
		for _, config := range []string{ConfigBaseline, ConfigEnhanced} {
			for run := 0; run < r.RunsPerConfig; run++ {
				if err := ctx.Err(); err != nil {
					return results, err
				}
				ctrl := &loop.Controller{
					Planner:       r.Planner,
					NumBlocks:     numBlocks,
					Init:          problem.Tower,
					Goal:          problem.ReversedTower,
					MaxIterations: r.MaxIterations,
					Temperature:   r.Temperature,
					Enhanced:      config == ConfigEnhanced,
				}
				report, err := ctrl.Run(ctx)
				if err != nil {
					return results, fmt.Errorf("size %d, config %s, run %d: %w", numBlocks, config, run, err)
				}
				res := Result{
					NumBlocks:  numBlocks,
					Config:     config,
					Run:        run,
					Success:    report.Success,
					Iterations: report.Iterations,
				}
				results = append(results, res)
				if r.Progress != nil {
					r.Progress(res)
				}
			}
		}
	}
	return results, nil
}
