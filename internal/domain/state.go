// Package domain encodes blocksworld states and actions as boolean
// formulas and answers plan-verification queries with a SAT solver.
//
// A State is a family of named propositional variables describing one
// time step: per block, whether it sits on the table, is held, or is
// clear, per ordered pair whether one block sits on another, and one
// variable for whether the hand is free. Quantification over blocks is
// finite, so every "for all blocks" condition is a plain conjunction
// over [0, numBlocks).
package domain

import (
	"fmt"

	"github.com/crillab/gophersat/bf"
)

// State names the boolean variables of a single time step. It carries
// no assignment of its own; states are bound together only by the
// constraints relating consecutive steps.
type State struct {
	label string
}

// NewState creates a state tagged by a unique step label such as "s0"
func NewState(label string) *State {
	return &State{label: label}
}

// Label returns the step label the state's variables are scoped under
func (s *State) Label() string {
	return s.label
}

// OnTable is the variable for "block b sits on the table"
func (s *State) OnTable(b int) bf.Formula {
	return bf.Var(s.varOnTable(b))
}

// Held is the variable for "block b is held in the hand"
func (s *State) Held(b int) bf.Formula {
	return bf.Var(s.varHeld(b))
}

// On is the variable for "block top sits directly on block bottom"
func (s *State) On(top, bottom int) bf.Formula {
	return bf.Var(s.varOn(top, bottom))
}

// Clear is the variable for "no block sits on block b"
func (s *State) Clear(b int) bf.Formula {
	return bf.Var(s.varClear(b))
}

// HandFree is the variable for "the hand holds nothing"
func (s *State) HandFree() bf.Formula {
	return bf.Var(s.varHandFree())
}

func (s *State) varOnTable(b int) string {
	return fmt.Sprintf("%s_table_%d", s.label, b)
}

func (s *State) varHeld(b int) string {
	return fmt.Sprintf("%s_held_%d", s.label, b)
}

func (s *State) varOn(top, bottom int) string {
	return fmt.Sprintf("%s_on_%d_%d", s.label, top, bottom)
}

func (s *State) varClear(b int) string {
	return fmt.Sprintf("%s_clear_%d", s.label, b)
}

func (s *State) varHandFree() string {
	return fmt.Sprintf("%s_handfree", s.label)
}

// Condition adds initial- or goal-state constraints to a query. The
// verifier treats these constructors as opaque; the problem package
// supplies concrete ones.
type Condition func(s *State, numBlocks int) bf.Formula
