// Package problem generates blocksworld task instances: initial and
// goal conditions for the tower-reversal family, plus the natural
// language descriptions and prompt text handed to the planner.
package problem

import (
	"fmt"
	"strings"

	"github.com/crillab/gophersat/bf"

	"github.com/askoren/blockplan/internal/domain"
)

// SystemMessage instructs the planner on the expected output shape
const SystemMessage = "You are a helpful planner that outputs only a numbered list of actions for a blocksworld puzzle."

// Tower is the initial condition for the tower configuration: block0 on
// the table, each block i stacked on i-1, only the top block clear, and
// the hand free.
//
// Every predicate of the initial state is pinned true or false. The
// action frame clauses then determine every later state, which keeps
// the single-support and clearness invariants without extra axioms.
func Tower(s *domain.State, n int) bf.Formula {
	var fs []bf.Formula
	fs = append(fs, s.HandFree())
	for b := 0; b < n; b++ {
		fs = append(fs, bf.Not(s.Held(b)))
	}
	for b := 0; b < n; b++ {
		if b == 0 {
			fs = append(fs, s.OnTable(b))
		} else {
			fs = append(fs, bf.Not(s.OnTable(b)))
		}
		if b == n-1 {
			fs = append(fs, s.Clear(b))
		} else {
			fs = append(fs, bf.Not(s.Clear(b)))
		}
	}
	for top := 0; top < n; top++ {
		for bottom := 0; bottom < n; bottom++ {
			if top == bottom {
				continue
			}
			if top == bottom+1 {
				fs = append(fs, s.On(top, bottom))
			} else {
				fs = append(fs, bf.Not(s.On(top, bottom)))
			}
		}
	}
	return bf.And(fs...)
}

// ReversedTower is the goal condition: the original tower upside down,
// block n-1 on the table, each block i on i+1, only block0 clear, hand
// free. Goal conditions may be partial; this one pins support and
// clearness for every block the way the task intends.
func ReversedTower(s *domain.State, n int) bf.Formula {
	var fs []bf.Formula
	fs = append(fs, s.HandFree())
	fs = append(fs, s.OnTable(n-1))
	for b := 0; b < n-1; b++ {
		fs = append(fs, bf.Not(s.OnTable(b)))
	}
	for b := 0; b < n-1; b++ {
		fs = append(fs, s.On(b, b+1))
	}
	fs = append(fs, s.Clear(0))
	for b := 1; b < n; b++ {
		fs = append(fs, bf.Not(s.Clear(b)))
	}
	return bf.And(fs...)
}

// InitialDescription renders the tower configuration in natural language
func InitialDescription(n int) string {
	blocks := blockNames(n)
	return fmt.Sprintf(
		"Initial state:\n- A tower with %s at the bottom, then %s.\n- Agent's hand is free.",
		blocks[0], strings.Join(blocks[1:], ", "))
}

// GoalDescription renders the reversed tower in natural language
func GoalDescription(n int) string {
	blocks := blockNames(n)
	lines := []string{
		"Goal state:",
		fmt.Sprintf("- %s is on the table.", blocks[n-1]),
	}
	for i := 0; i < n-1; i++ {
		lines = append(lines, fmt.Sprintf("- %s is stacked on %s", blocks[i], blocks[i+1]))
	}
	lines = append(lines, fmt.Sprintf("- Only %s is clear.", blocks[0]))
	return strings.Join(lines, "\n")
}

// BasePrompt builds the task prompt for n blocks: problem statement,
// allowed actions and a step budget of 2n.
func BasePrompt(n int) string {
	allowed := strings.Join([]string{
		"Allowed actions:",
		"  pick_up <block>",
		"  put_down <block>",
		"  stack <blockA> <blockB>",
		"  unstack <blockA> <blockB>",
	}, "\n")
	return fmt.Sprintf(`We have a blocksworld with %d blocks labeled 0..%d.

%s

%s

%s

Please produce a valid plan in at most %d steps.

Now produce YOUR plan as a numbered list:`,
		n, n-1, InitialDescription(n), GoalDescription(n), allowed, 2*n)
}

func blockNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("block%d", i)
	}
	return names
}
