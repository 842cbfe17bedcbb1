// Package plan defines the action model for blocksworld plans and the
// parser that recovers a plan from free-form LLM output.
package plan

import (
	"fmt"
	"strings"
)

// NoBlock is the sentinel argument value for actions that do not use a
// second block, or whose block could not be recovered from the text.
const NoBlock = -1

// Kind represents the kind of a blocksworld action
type Kind string

const (
	// KindPickUp lifts a clear block off the table
	KindPickUp Kind = "pick_up"
	// KindPutDown places the held block on the table
	KindPutDown Kind = "put_down"
	// KindStack places the held block on another clear block
	KindStack Kind = "stack"
	// KindUnstack lifts a clear block off the block beneath it
	KindUnstack Kind = "unstack"
	// KindUnrecognized tags actions whose verb is none of the above.
	// Parsing never rejects them; the verifier and the failing-prefix
	// extractor treat them as steps with no satisfying transition.
	KindUnrecognized Kind = "unrecognized"
)

// IsValid checks if a kind is one of the four known action kinds
func (k Kind) IsValid() bool {
	for _, valid := range AllKinds() {
		if k == valid {
			return true
		}
	}
	return false
}

// AllKinds returns all known action kinds
func AllKinds() []Kind {
	return []Kind{KindPickUp, KindPutDown, KindStack, KindUnstack}
}

// Binary reports whether the kind takes two block arguments
func (k Kind) Binary() bool {
	return k == KindStack || k == KindUnstack
}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// Action is one step of a plan. Arg2 is NoBlock for unary kinds.
// For unrecognized actions, Verb preserves the verb as written so
// feedback can name it; Verb is empty for recognized kinds.
type Action struct {
	Kind Kind
	Arg1 int
	Arg2 int
	Verb string
}

// String renders the action in the canonical "kind blockX [blockY]" form
func (a Action) String() string {
	verb := a.Kind.String()
	if a.Kind == KindUnrecognized && a.Verb != "" {
		verb = a.Verb
	}
	parts := []string{verb}
	if a.Arg1 != NoBlock {
		parts = append(parts, fmt.Sprintf("block%d", a.Arg1))
	}
	if a.Arg2 != NoBlock {
		parts = append(parts, fmt.Sprintf("block%d", a.Arg2))
	}
	return strings.Join(parts, " ")
}

// Plan is an ordered sequence of actions. Order defines the chain of
// states the verifier builds; a plan has no identity beyond its sequence.
type Plan []Action

// Canonical serializes the plan as a numbered list, one action per line.
// Parsing the result yields an identical plan for any plan composed of
// the four known kinds.
func (p Plan) Canonical() string {
	var sb strings.Builder
	for i, a := range p {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, a.String())
	}
	return sb.String()
}

// Validate ensures the plan is usable as a verification query: it must
// contain at least one action and every block argument must be in range.
// Unrecognized kinds pass validation; rejecting them is the verifier's
// job so the failing step can be reported precisely.
func (p Plan) Validate(numBlocks int) error {
	if len(p) == 0 {
		return fmt.Errorf("plan: %w", ErrNoActions)
	}
	for i, a := range p {
		if a.Arg1 == NoBlock {
			return fmt.Errorf("plan step %d (%s): missing block argument: %w", i+1, a, ErrMissingArgument)
		}
		if a.Kind.Binary() && a.Arg2 == NoBlock {
			return fmt.Errorf("plan step %d (%s): missing second block argument: %w", i+1, a, ErrMissingArgument)
		}
		if a.Arg1 < 0 || a.Arg1 >= numBlocks {
			return fmt.Errorf("plan step %d (%s): block%d out of range [0,%d): %w", i+1, a, a.Arg1, numBlocks, ErrBlockRange)
		}
		if a.Arg2 != NoBlock && (a.Arg2 < 0 || a.Arg2 >= numBlocks) {
			return fmt.Errorf("plan step %d (%s): block%d out of range [0,%d): %w", i+1, a, a.Arg2, numBlocks, ErrBlockRange)
		}
	}
	return nil
}
