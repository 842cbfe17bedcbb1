package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		opts     Options
		wantName string
		wantErr  bool
	}{
		{
			name:     "gpt model routes to openai",
			model:    "gpt-4o",
			opts:     Options{APIKey: "k"},
			wantName: "openai",
		},
		{
			name:     "model id is case insensitive",
			model:    " GPT-4o-Mini ",
			opts:     Options{APIKey: "k"},
			wantName: "openai",
		},
		{
			name:    "gpt model without key fails",
			model:   "gpt-4o",
			opts:    Options{},
			wantErr: true,
		},
		{
			name:     "local model routes to ollama",
			model:    "llama3.1:8b",
			opts:     Options{},
			wantName: "ollama",
		},
		{
			name:    "empty model fails",
			model:   "  ",
			opts:    Options{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Select(tt.model, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
		})
	}
}
