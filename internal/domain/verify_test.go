package domain

import (
	"testing"

	"github.com/crillab/gophersat/bf"
	"github.com/stretchr/testify/assert"

	"github.com/askoren/blockplan/internal/plan"
)

// goalOn asserts only that top sits on bottom in the final state
func goalOn(top, bottom int) Condition {
	return func(s *State, _ int) bf.Formula {
		return s.On(top, bottom)
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name      string
		numBlocks int
		goal      Condition
		p         plan.Plan
		want      Result
	}{
		{
			name:      "pick up then stack reaches goal",
			numBlocks: 2,
			goal:      goalOn(1, 0),
			p: plan.Plan{
				{Kind: plan.KindPickUp, Arg1: 1, Arg2: plan.NoBlock},
				{Kind: plan.KindStack, Arg1: 1, Arg2: 0},
			},
			want: Valid,
		},
		{
			name:      "stack without pick up is invalid",
			numBlocks: 2,
			goal:      goalOn(1, 0),
			p: plan.Plan{
				{Kind: plan.KindStack, Arg1: 1, Arg2: 0},
			},
			want: Invalid,
		},
		{
			name:      "consistent plan that misses the goal is invalid",
			numBlocks: 3,
			goal:      goalOn(1, 0),
			p: plan.Plan{
				{Kind: plan.KindPickUp, Arg1: 2, Arg2: plan.NoBlock},
				{Kind: plan.KindPutDown, Arg1: 2, Arg2: plan.NoBlock},
			},
			want: Invalid,
		},
		{
			name:      "unrecognized action is invalid",
			numBlocks: 2,
			goal:      goalOn(1, 0),
			p: plan.Plan{
				{Kind: plan.KindUnrecognized, Arg1: 1, Arg2: plan.NoBlock, Verb: "fly"},
			},
			want: Invalid,
		},
		{
			name:      "empty plan checks the goal on the initial state",
			numBlocks: 2,
			goal: func(s *State, _ int) bf.Formula {
				return s.OnTable(0)
			},
			p:    plan.Plan{},
			want: Valid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Verify(tt.numBlocks, flatWorld, tt.goal, tt.p)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A longer round trip: build a two-block tower, take it apart again,
// and end where we started.
func TestVerifyRoundTrip(t *testing.T) {
	p := plan.Plan{
		{Kind: plan.KindPickUp, Arg1: 1, Arg2: plan.NoBlock},
		{Kind: plan.KindStack, Arg1: 1, Arg2: 0},
		{Kind: plan.KindUnstack, Arg1: 1, Arg2: 0},
		{Kind: plan.KindPutDown, Arg1: 1, Arg2: plan.NoBlock},
	}
	goal := func(s *State, n int) bf.Formula {
		return flatWorld(s, n)
	}
	assert.Equal(t, Valid, Verify(2, flatWorld, Condition(goal), p))
}
