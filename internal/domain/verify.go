package domain

import (
	"fmt"

	"github.com/crillab/gophersat/bf"

	"github.com/askoren/blockplan/internal/plan"
)

// Result is the outcome of a plan verification query
type Result string

const (
	// Valid means the goal is reachable via this exact plan
	Valid Result = "valid"
	// Invalid means the conjunction of initial state, transitions and
	// goal is unsatisfiable. The caller should run FindFailingPrefix to
	// learn whether a transition is broken or the goal is unreached.
	Invalid Result = "invalid"
)

// Verify checks a plan against an initial condition and a goal.
//
// It builds one fresh state per step (len(p)+1 in total), asserts the
// initial condition on the first, each action's transition between
// consecutive states, and the goal on the last, then solves the whole
// conjunction once. The solving context lives only for this call.
func Verify(numBlocks int, init, goal Condition, p plan.Plan) Result {
	states := chain(len(p) + 1)
	fs := make([]bf.Formula, 0, len(p)+2)
	fs = append(fs, init(states[0], numBlocks))
	for i, a := range p {
		fs = append(fs, Transition(states[i], states[i+1], numBlocks, a))
	}
	fs = append(fs, goal(states[len(p)], numBlocks))
	if bf.Solve(bf.And(fs...)) != nil {
		return Valid
	}
	return Invalid
}

// chain creates n fresh states labelled s0..s(n-1)
func chain(n int) []*State {
	states := make([]*State, n)
	for i := range states {
		states[i] = NewState(fmt.Sprintf("s%d", i))
	}
	return states
}
