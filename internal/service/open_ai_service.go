package service

import (
	"context"
	"errors"
	"strings"

	"github.com/fadilmartias/submitme/internal/logger"
	"github.com/fadilmartias/submitme/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	openAIProvider       = "openai"
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	maxErrorBodyRunes    = 300
)

// OpenAIService talks to any OpenAI-compatible /chat/completions endpoint
// (OpenAI, OpenRouter, ...). Schema mode uses strict json_schema output.
type OpenAIService struct {
	client *resty.Client
	model  string
	log    *zap.Logger
}

func NewOpenAIService(baseURL, apiKey, model string, log *zap.Logger) *OpenAIService {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultOpenAIBaseURL
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return &OpenAIService{client: client, model: model, log: logger.WithCommonFields(log, openAIProvider, model)}
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (s *OpenAIService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	messages := make([]openAIMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openAIMessage{Role: string(m.Role), Content: m.Content})
	}

	body := map[string]any{
		"model":       s.model,
		"messages":    messages,
		"temperature": req.Temperature,
		"max_tokens":  req.MaxTokens,
	}
	if req.Schema != nil {
		body["response_format"] = map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   req.Schema.Name,
				"strict": true,
				"schema": req.Schema.Schema,
			},
		}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", &model.ProviderError{Provider: openAIProvider, Err: err}
	}

	raw := resp.String()
	if resp.IsError() {
		msg := gjson.Get(raw, "error.message").String()
		if msg == "" {
			msg = logger.TruncateForLog(raw, maxErrorBodyRunes)
		}
		if isRateLimit(resp.StatusCode()) {
			s.log.Warn("provider rate limited the request", zap.Int("status", resp.StatusCode()))
		}
		return "", &model.ProviderError{
			Provider:   openAIProvider,
			StatusCode: resp.StatusCode(),
			Err:        errors.New(msg),
		}
	}

	message := gjson.Get(raw, "choices.0.message")
	if !message.Exists() {
		return "", &model.ProviderError{Provider: openAIProvider, Err: errors.New("response has no choices")}
	}
	if refusal := message.Get("refusal").String(); refusal != "" {
		return "", &model.ProviderError{Provider: openAIProvider, Err: errors.New("model refused: " + refusal)}
	}

	content := message.Get("content").String()
	if strings.TrimSpace(content) == "" {
		return "", &model.ProviderError{Provider: openAIProvider, Err: errors.New("empty completion")}
	}

	return content, nil
}

func (s *OpenAIService) Provider() string { return openAIProvider }

func (s *OpenAIService) Model() string { return s.model }
