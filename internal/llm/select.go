package llm

import (
	"fmt"
	"strings"
)

// Options carries the backend settings the selector needs
type Options struct {
	// APIKey authenticates against the OpenAI-compatible endpoint
	APIKey string
	// BaseURL overrides the OpenAI API endpoint (optional)
	BaseURL string
	// OllamaHost points at the local model server (optional)
	OllamaHost string
}

// Select returns a planner for a model identifier. GPT-style ids route
// to the OpenAI backend; everything else is assumed to be served
// locally through Ollama.
func Select(model string, opts Options) (Planner, error) {
	id := strings.ToLower(strings.TrimSpace(model))
	if id == "" {
		return nil, fmt.Errorf("empty model identifier")
	}
	if strings.HasPrefix(id, "gpt") || strings.HasPrefix(id, "o1") || strings.HasPrefix(id, "o3") {
		if opts.APIKey == "" {
			return nil, fmt.Errorf("model %q needs an API key", model)
		}
		return NewOpenAI(opts.APIKey, opts.BaseURL, id), nil
	}
	return NewOllama(opts.OllamaHost, id)
}
