package domain

import (
	"github.com/crillab/gophersat/bf"

	"github.com/askoren/blockplan/internal/plan"
)

// Each encoder returns one formula: precondition on s1, effect on s2,
// and frame clauses equating every predicate the effect does not name.
// Omitting a frame clause lets the solver invent changes, so the frame
// must be total.

// PickUp encodes lifting block b off the table.
// Pre: b on table, b clear, hand free. Eff: b held.
func PickUp(s1, s2 *State, numBlocks, b int) bf.Formula {
	fs := []bf.Formula{
		s1.OnTable(b),
		s1.Clear(b),
		s1.HandFree(),

		s2.Held(b),
		bf.Not(s2.OnTable(b)),
		bf.Not(s2.Clear(b)),
		bf.Not(s2.HandFree()),
	}
	fs = append(fs, sameBlocks(s1, s2, numBlocks, except(b), except(b), except(b))...)
	fs = append(fs, samePairs(s1, s2, numBlocks, -1, -1)...)
	return bf.And(fs...)
}

// PutDown encodes placing the held block b on the table.
// Pre: b held. Eff: b on table and clear, hand free.
func PutDown(s1, s2 *State, numBlocks, b int) bf.Formula {
	fs := []bf.Formula{
		s1.Held(b),

		bf.Not(s2.Held(b)),
		s2.OnTable(b),
		s2.Clear(b),
		s2.HandFree(),
	}
	fs = append(fs, sameBlocks(s1, s2, numBlocks, except(b), except(b), except(b))...)
	fs = append(fs, samePairs(s1, s2, numBlocks, -1, -1)...)
	return bf.And(fs...)
}

// Stack encodes placing the held block top onto block bottom.
// Pre: top held, bottom clear. Eff: top on bottom and clear, bottom no
// longer clear, hand free. The table predicate of top stays false, so
// the table frame covers every block.
func Stack(s1, s2 *State, numBlocks, top, bottom int) bf.Formula {
	fs := []bf.Formula{
		s1.Held(top),
		s1.Clear(bottom),

		bf.Not(s2.Held(top)),
		bf.Not(s2.OnTable(top)),
		s2.On(top, bottom),
		s2.Clear(top),
		bf.Not(s2.Clear(bottom)),
		s2.HandFree(),
	}
	fs = append(fs, sameBlocks(s1, s2, numBlocks, except(top), nil, except(top, bottom))...)
	fs = append(fs, samePairs(s1, s2, numBlocks, top, bottom)...)
	return bf.And(fs...)
}

// Unstack encodes lifting block top off block bottom.
// Pre: top on bottom, top clear, hand free. Eff: top held, bottom
// clear. Nothing moves onto or off the table.
func Unstack(s1, s2 *State, numBlocks, top, bottom int) bf.Formula {
	fs := []bf.Formula{
		s1.On(top, bottom),
		s1.Clear(top),
		s1.HandFree(),

		s2.Held(top),
		bf.Not(s2.On(top, bottom)),
		bf.Not(s2.Clear(top)),
		s2.Clear(bottom),
		bf.Not(s2.HandFree()),
	}
	fs = append(fs, sameBlocks(s1, s2, numBlocks, except(top), nil, except(top, bottom))...)
	fs = append(fs, samePairs(s1, s2, numBlocks, top, bottom)...)
	return bf.And(fs...)
}

// Transition encodes one plan step between consecutive states. An
// unrecognized action kind has no satisfying transition, which makes
// the failing-prefix scan total: the scan stops at that step instead of
// silently skipping it.
func Transition(s1, s2 *State, numBlocks int, a plan.Action) bf.Formula {
	switch a.Kind {
	case plan.KindPickUp:
		return PickUp(s1, s2, numBlocks, a.Arg1)
	case plan.KindPutDown:
		return PutDown(s1, s2, numBlocks, a.Arg1)
	case plan.KindStack:
		return Stack(s1, s2, numBlocks, a.Arg1, a.Arg2)
	case plan.KindUnstack:
		return Unstack(s1, s2, numBlocks, a.Arg1, a.Arg2)
	case plan.KindUnrecognized:
		return bf.False
	}
	return bf.False
}

// except builds the exclusion set used by frame clauses
func except(blocks ...int) map[int]bool {
	m := make(map[int]bool, len(blocks))
	for _, b := range blocks {
		m[b] = true
	}
	return m
}

// sameBlocks equates the held, table and clear predicates of every
// block outside the respective exclusion set. A nil set means the
// predicate is untouched for all blocks.
func sameBlocks(s1, s2 *State, numBlocks int, heldExcept, tableExcept, clearExcept map[int]bool) []bf.Formula {
	var fs []bf.Formula
	for x := 0; x < numBlocks; x++ {
		if !heldExcept[x] {
			fs = append(fs, bf.Eq(s1.Held(x), s2.Held(x)))
		}
		if !tableExcept[x] {
			fs = append(fs, bf.Eq(s1.OnTable(x), s2.OnTable(x)))
		}
		if !clearExcept[x] {
			fs = append(fs, bf.Eq(s1.Clear(x), s2.Clear(x)))
		}
	}
	return fs
}

// samePairs equates the on relation for every ordered pair except
// (top, bottom). Pass -1, -1 to equate all pairs.
func samePairs(s1, s2 *State, numBlocks, top, bottom int) []bf.Formula {
	var fs []bf.Formula
	for x := 0; x < numBlocks; x++ {
		for y := 0; y < numBlocks; y++ {
			if x == y || (x == top && y == bottom) {
				continue
			}
			fs = append(fs, bf.Eq(s1.On(x, y), s2.On(x, y)))
		}
	}
	return fs
}
