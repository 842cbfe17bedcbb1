// Package llm provides planner backends that turn a prompt into a
// candidate plan text. The refinement loop only depends on the Planner
// interface, so tests drive it with a scripted stub.
package llm

import "context"

// Request carries one plan generation request
type Request struct {
	// System is the system message framing the planner's role
	System string
	// Prompt is the task prompt, possibly carrying prior feedback
	Prompt string
	// Temperature controls sampling; zero means backend default
	Temperature float32
}

// Planner generates candidate plan text from a prompt
type Planner interface {
	// Name returns the backend name (e.g., "openai", "ollama")
	Name() string

	// GeneratePlan returns the raw model response for the request.
	// Callers must tolerate empty or malformed responses; those are
	// routed through the normal parse-failure path.
	GeneratePlan(ctx context.Context, req Request) (string, error)
}
