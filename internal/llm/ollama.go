package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// Ollama implements Planner against a locally served model (llama,
// deepseek and friends) through an Ollama server.
type Ollama struct {
	model *ollama.LLM
	id    string
}

// NewOllama creates an Ollama planner for the given model id.
// serverURL is optional; the client defaults to the local server.
func NewOllama(serverURL, model string) (*Ollama, error) {
	opts := []ollama.Option{ollama.WithModel(model)}
	if serverURL != "" {
		opts = append(opts, ollama.WithServerURL(serverURL))
	}
	m, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("ollama client: %w", err)
	}
	return &Ollama{model: m, id: model}, nil
}

func (o *Ollama) Name() string {
	return "ollama"
}

// GeneratePlan sends the request to the local model and returns the
// first choice's content.
func (o *Ollama) GeneratePlan(ctx context.Context, req Request) (string, error) {
	var messages []llms.MessageContent
	if req.System != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, req.Prompt))

	resp, err := o.model.GenerateContent(ctx, messages, llms.WithTemperature(float64(req.Temperature)))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("generation returned no choices")
	}
	return resp.Choices[0].Content, nil
}
