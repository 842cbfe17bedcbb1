package plan

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// leading "1. ", "2) ", "3 " style numbering
	numberPrefix = regexp.MustCompile(`^\d+[.)]?\s*`)
	// a token embedding a block index, e.g. "block2", "Block2," or "(block2)"
	blockToken = regexp.MustCompile(`(?i)block(\d+)`)
)

// Parse converts raw LLM output into an ordered sequence of actions.
//
// Each non-empty line is stripped of its leading numbering; the first
// token (lowercased) is the action verb and any remaining tokens that
// embed a block index contribute arguments in the order found. Lines
// producing no tokens are skipped. Unknown verbs are kept as
// unrecognized actions rather than rejected, so the verifier can point
// at the exact offending step.
func Parse(text string) Plan {
	var p Plan
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		line = numberPrefix.ReplaceAllString(line, "")
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		verb := strings.ToLower(tokens[0])

		var blocks []int
		for _, tok := range tokens[1:] {
			if m := blockToken.FindStringSubmatch(tok); m != nil {
				n, err := strconv.Atoi(m[1])
				if err != nil {
					continue
				}
				blocks = append(blocks, n)
			}
		}

		a := Action{Kind: Kind(verb), Arg1: NoBlock, Arg2: NoBlock}
		if !a.Kind.IsValid() {
			a.Kind = KindUnrecognized
			a.Verb = verb
		}
		if len(blocks) > 0 {
			a.Arg1 = blocks[0]
		}
		if len(blocks) > 1 {
			a.Arg2 = blocks[1]
		}
		p = append(p, a)
	}
	return p
}
