package engine

import (
	"context"

	"github.com/crewsearch/crewsearch/config"
	goopenai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ModelClient is the seam between the engine and the chat completions API.
// Tests substitute a fake; production code uses the openai-go client pointed
// at any OpenAI-compatible endpoint (Ollama by default).
type ModelClient interface {
	Complete(ctx context.Context, params goopenai.ChatCompletionNewParams) (*goopenai.ChatCompletion, error)
}

type openaiModelClient struct {
	client *goopenai.Client
}

var _ ModelClient = (*openaiModelClient)(nil)

func NewModelClient(conf *config.ModelConfig) ModelClient {
	return &openaiModelClient{
		client: goopenai.NewClient(
			option.WithBaseURL(conf.BaseURL),
			option.WithAPIKey(conf.APIKey),
		),
	}
}

func (c *openaiModelClient) Complete(ctx context.Context, params goopenai.ChatCompletionNewParams) (*goopenai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}
