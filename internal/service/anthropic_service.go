package service

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fadilmartias/submitme/internal/model"
)

const anthropicProvider = "anthropic"

// AnthropicService uses the Messages API. Schema mode forces a single tool
// whose input schema is the requested JSON schema and returns the tool input.
type AnthropicService struct {
	client anthropic.Client
	model  string
}

func NewAnthropicService(baseURL, apiKey, model string) *AnthropicService {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &AnthropicService{client: anthropic.NewClient(opts...), model: model}
}

func (s *AnthropicService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	system, rest := splitMessages(req.Messages)
	if len(rest) == 0 {
		return "", errors.New("anthropic needs at least one user message")
	}

	messages := make([]anthropic.MessageParam, 0, len(rest))
	for _, m := range rest {
		messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(s.model),
		MaxTokens:   int64(req.MaxTokens),
		Messages:    messages,
		Temperature: anthropic.Float(float64(req.Temperature)),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	if req.Schema != nil {
		params.Tools = []anthropic.ToolUnionParam{{
			OfTool: &anthropic.ToolParam{
				Name:        req.Schema.Name,
				Description: anthropic.String("Record the structured data extracted from the input."),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: req.Schema.Schema["properties"],
					Required:   stringList(req.Schema.Schema["required"]),
				},
			},
		}}
		params.ToolChoice = anthropic.ToolChoiceParamOfTool(req.Schema.Name)
	}

	msg, err := s.client.Messages.New(ctx, params)
	if err != nil {
		status := 0
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		return "", &model.ProviderError{Provider: anthropicProvider, StatusCode: status, Err: err}
	}

	var text strings.Builder
	for _, block := range msg.Content {
		switch block.Type {
		case "tool_use":
			if req.Schema != nil && len(block.Input) > 0 {
				return string(block.Input), nil
			}
		case "text":
			text.WriteString(block.Text)
		}
	}

	if req.Schema != nil {
		return "", &model.ProviderError{Provider: anthropicProvider, Err: errors.New("response has no tool input")}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", &model.ProviderError{Provider: anthropicProvider, Err: errors.New("empty completion")}
	}
	return text.String(), nil
}

func (s *AnthropicService) Provider() string { return anthropicProvider }

func (s *AnthropicService) Model() string { return s.model }

func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
