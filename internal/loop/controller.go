// Package loop runs the counterexample-guided refinement loop: request
// a plan from the planner, parse it, verify it, and on failure feed a
// localized counterexample back into the next prompt until the plan
// verifies or the iteration budget runs out.
package loop

import (
	"context"
	"fmt"
	"strings"

	"github.com/askoren/blockplan/internal/domain"
	"github.com/askoren/blockplan/internal/llm"
	"github.com/askoren/blockplan/internal/plan"
	"github.com/askoren/blockplan/internal/problem"
)

// Phase is one step of the controller's state machine
type Phase string

const (
	PhaseGenerate  Phase = "generate"
	PhaseParse     Phase = "parse"
	PhaseVerify    Phase = "verify"
	PhaseExtract   Phase = "extract"
	PhaseFeedback  Phase = "feedback"
	PhaseSuccess   Phase = "success"
	PhaseExhausted Phase = "exhausted"
)

// Outcome classifies why an iteration's plan was rejected
type Outcome string

const (
	// OutcomeValid means the plan verified
	OutcomeValid Outcome = "valid"
	// OutcomeParseDefect means no usable actions were recovered
	OutcomeParseDefect Outcome = "parse_defect"
	// OutcomeFailingStep means a prefix of the plan is already
	// inconsistent, independent of the goal
	OutcomeFailingStep Outcome = "failing_step"
	// OutcomeGoalUnreached means the plan executes consistently but
	// does not reach the goal
	OutcomeGoalUnreached Outcome = "goal_unreached"
)

// Event is emitted at every phase transition so callers can trace or
// display progress without the controller knowing about either.
type Event struct {
	Iteration int
	Phase     Phase
	Detail    string
}

// Controller drives the refinement loop for one task instance
type Controller struct {
	Planner   llm.Planner
	NumBlocks int
	Init      domain.Condition
	Goal      domain.Condition

	// MaxIterations bounds the loop; exceeding it terminates as
	// exhausted rather than success
	MaxIterations int

	// Temperature is passed through to the planner
	Temperature float32

	// Enhanced aggregates counterexample feedback into the prompt
	// across iterations. When false the base prompt is reused
	// unchanged every iteration (the experiment's baseline arm).
	Enhanced bool

	// Observer receives phase events; nil disables tracing
	Observer func(Event)
}

// Report is the controller's terminal record for one session
type Report struct {
	Model      string
	NumBlocks  int
	Success    bool
	Iterations int
	Plan       plan.Plan
	Response   string
}

// Run executes the loop to completion. It returns a report in both the
// success and exhausted cases; an error only signals that the external
// planner call failed or the context was cancelled between iterations.
func (c *Controller) Run(ctx context.Context) (*Report, error) {
	base := problem.BasePrompt(c.NumBlocks)
	prompt := base
	var aggregated strings.Builder

	report := &Report{Model: c.Planner.Name(), NumBlocks: c.NumBlocks}

	for iter := 1; iter <= c.MaxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report.Iterations = iter

		c.emit(iter, PhaseGenerate, "")
		text, err := c.Planner.GeneratePlan(ctx, llm.Request{
			System:      problem.SystemMessage,
			Prompt:      prompt,
			Temperature: c.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("generate plan (iteration %d): %w", iter, err)
		}
		report.Response = text

		c.emit(iter, PhaseParse, "")
		p := plan.Parse(text)

		outcome, feedback := c.evaluate(iter, p)
		if outcome == OutcomeValid {
			report.Success = true
			report.Plan = p
			c.emit(iter, PhaseSuccess, "")
			return report, nil
		}

		c.emit(iter, PhaseFeedback, feedback)
		if c.Enhanced {
			aggregated.WriteString("\n")
			aggregated.WriteString(feedback)
			prompt = fmt.Sprintf(
				"%s\n\nFeedback from previous iterations:\n%s\n\nPlease revise your plan accordingly.",
				base, aggregated.String())
		}
	}

	c.emit(c.MaxIterations, PhaseExhausted, "")
	return report, nil
}

// evaluate classifies one candidate plan and synthesizes the feedback
// text for the next prompt. An empty plan or out-of-range block id is a
// parse defect and yields generic feedback; a broken transition yields
// feedback naming the offending action and its 1-indexed position; a
// consistent plan that misses the goal says so explicitly instead of
// naming a bogus failing step.
func (c *Controller) evaluate(iter int, p plan.Plan) (Outcome, string) {
	if err := p.Validate(c.NumBlocks); err != nil {
		return OutcomeParseDefect,
			"Your response did not contain a usable plan. Reply with only a numbered list of actions, one per line, naming blocks like block0."
	}

	c.emit(iter, PhaseVerify, "")
	if domain.Verify(c.NumBlocks, c.Init, c.Goal, p) == domain.Valid {
		return OutcomeValid, ""
	}

	c.emit(iter, PhaseExtract, "")
	if k, ok := domain.FindFailingPrefix(c.NumBlocks, c.Init, p); ok {
		return OutcomeFailingStep, fmt.Sprintf(
			"Your plan fails at step %d (%s): the state transition is invalid because the action's preconditions are not met.",
			k, p[k-1])
	}
	return OutcomeGoalUnreached,
		"Your plan executes consistently but does not reach the goal state. Please adjust the sequence of actions."
}

func (c *Controller) emit(iter int, phase Phase, detail string) {
	if c.Observer != nil {
		c.Observer(Event{Iteration: iter, Phase: phase, Detail: detail})
	}
}
