package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Plan
	}{
		{
			name:  "canonical numbered list",
			input: "1. pick_up block1\n2. stack block1 block0\n",
			want: Plan{
				{Kind: KindPickUp, Arg1: 1, Arg2: NoBlock},
				{Kind: KindStack, Arg1: 1, Arg2: 0},
			},
		},
		{
			name:  "parenthesis numbering and mixed case",
			input: "1) Unstack Block2 Block1\n2) Put_Down Block2",
			want: Plan{
				{Kind: KindUnstack, Arg1: 2, Arg2: 1},
				{Kind: KindPutDown, Arg1: 2, Arg2: NoBlock},
			},
		},
		{
			name:  "blank lines skipped",
			input: "\n1. pick_up block0\n\n\n2. put_down block0\n\n",
			want: Plan{
				{Kind: KindPickUp, Arg1: 0, Arg2: NoBlock},
				{Kind: KindPutDown, Arg1: 0, Arg2: NoBlock},
			},
		},
		{
			name:  "extraneous words between block tokens",
			input: "1. stack block2 on top of block0",
			want: Plan{
				{Kind: KindStack, Arg1: 2, Arg2: 0},
			},
		},
		{
			name:  "block token embedded in punctuation",
			input: "1. pick_up (block3),",
			want: Plan{
				{Kind: KindPickUp, Arg1: 3, Arg2: NoBlock},
			},
		},
		{
			name:  "unknown verb kept as unrecognized",
			input: "1. fly block1 block2",
			want: Plan{
				{Kind: KindUnrecognized, Arg1: 1, Arg2: 2, Verb: "fly"},
			},
		},
		{
			name:  "bare digits carry no block ids",
			input: "1. stack 1 0",
			want: Plan{
				{Kind: KindStack, Arg1: NoBlock, Arg2: NoBlock},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Re-serializing a parsed plan to the canonical numbered form and
// re-parsing must yield the identical action sequence.
func TestParseCanonicalIdempotence(t *testing.T) {
	plans := []Plan{
		{
			{Kind: KindPickUp, Arg1: 1, Arg2: NoBlock},
			{Kind: KindStack, Arg1: 1, Arg2: 0},
		},
		{
			{Kind: KindUnstack, Arg1: 2, Arg2: 1},
			{Kind: KindPutDown, Arg1: 2, Arg2: NoBlock},
			{Kind: KindPickUp, Arg1: 0, Arg2: NoBlock},
			{Kind: KindStack, Arg1: 0, Arg2: 1},
		},
		{
			{Kind: KindPutDown, Arg1: 0, Arg2: NoBlock},
		},
	}

	for _, p := range plans {
		reparsed := Parse(p.Canonical())
		require.Equal(t, p, reparsed)
		// Fixed point: a second round trip changes nothing
		require.Equal(t, p.Canonical(), reparsed.Canonical())
	}
}

func TestPlanValidate(t *testing.T) {
	tests := []struct {
		name      string
		p         Plan
		numBlocks int
		wantErr   error
	}{
		{
			name:      "valid plan",
			p:         Plan{{Kind: KindPickUp, Arg1: 1, Arg2: NoBlock}},
			numBlocks: 2,
			wantErr:   nil,
		},
		{
			name:      "empty plan",
			p:         nil,
			numBlocks: 2,
			wantErr:   ErrNoActions,
		},
		{
			name:      "missing argument",
			p:         Plan{{Kind: KindStack, Arg1: NoBlock, Arg2: NoBlock}},
			numBlocks: 2,
			wantErr:   ErrMissingArgument,
		},
		{
			name:      "binary kind missing second argument",
			p:         Plan{{Kind: KindStack, Arg1: 1, Arg2: NoBlock}},
			numBlocks: 2,
			wantErr:   ErrMissingArgument,
		},
		{
			name:      "first argument out of range",
			p:         Plan{{Kind: KindPickUp, Arg1: 5, Arg2: NoBlock}},
			numBlocks: 3,
			wantErr:   ErrBlockRange,
		},
		{
			name:      "second argument out of range",
			p:         Plan{{Kind: KindStack, Arg1: 0, Arg2: 7}},
			numBlocks: 3,
			wantErr:   ErrBlockRange,
		},
		{
			name:      "unrecognized kind passes validation",
			p:         Plan{{Kind: KindUnrecognized, Arg1: 0, Arg2: NoBlock, Verb: "fly"}},
			numBlocks: 2,
			wantErr:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate(tt.numBlocks)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{Action{Kind: KindPickUp, Arg1: 2, Arg2: NoBlock}, "pick_up block2"},
		{Action{Kind: KindStack, Arg1: 1, Arg2: 0}, "stack block1 block0"},
		{Action{Kind: KindUnrecognized, Arg1: 1, Arg2: NoBlock, Verb: "fly"}, "fly block1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.String())
	}
}
