package domain

import (
	"github.com/crillab/gophersat/bf"

	"github.com/askoren/blockplan/internal/plan"
)

// FindFailingPrefix locates the first broken step of a plan.
//
// It returns the smallest k (1-indexed) such that the initial condition
// conjoined with the first k transitions, with no goal asserted, is
// unsatisfiable. The second return is false if every prefix up to the
// full plan is satisfiable; a satisfiable full prefix with an invalid
// verification means the plan executes consistently but misses the
// goal.
//
// The scan is a linear forward pass with a fresh state chain and a
// fresh solve per prefix. Plans are short, so rebuilding each prefix is
// cheaper to reason about than carrying solver state between queries.
func FindFailingPrefix(numBlocks int, init Condition, p plan.Plan) (int, bool) {
	for k := 1; k <= len(p); k++ {
		if bf.Solve(prefixFormula(numBlocks, init, p, k)) == nil {
			return k, true
		}
	}
	return 0, false
}

// prefixFormula builds the goal-free query for the first k actions
func prefixFormula(numBlocks int, init Condition, p plan.Plan, k int) bf.Formula {
	states := chain(k + 1)
	fs := make([]bf.Formula, 0, k+1)
	fs = append(fs, init(states[0], numBlocks))
	for i := 0; i < k; i++ {
		fs = append(fs, Transition(states[i], states[i+1], numBlocks, p[i]))
	}
	return bf.And(fs...)
}
