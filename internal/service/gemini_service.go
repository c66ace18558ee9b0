package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/submitme/internal/model"
	"google.golang.org/genai"
)

const geminiProvider = "gemini"

type GeminiService struct {
	client *genai.Client
	model  string
}

func NewGeminiService(ctx context.Context, baseURL, apiKey, model string) (*GeminiService, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiService{client: client, model: model}, nil
}

func (s *GeminiService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	system, rest := splitMessages(req.Messages)
	if len(rest) == 0 {
		return "", errors.New("gemini needs at least one user message")
	}

	contents := make([]*genai.Content, 0, len(rest))
	for _, m := range rest {
		contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if system != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if req.Schema != nil {
		genConfig.ResponseMIMEType = "application/json"
		genConfig.ResponseJsonSchema = req.Schema.Schema
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, genConfig)
	if err != nil {
		return "", &model.ProviderError{Provider: geminiProvider, StatusCode: geminiStatus(err), Err: err}
	}

	if result == nil || len(result.Candidates) == 0 {
		return "", &model.ProviderError{Provider: geminiProvider, Err: errors.New("no candidates in response")}
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", &model.ProviderError{Provider: geminiProvider, Err: errors.New("empty completion")}
	}
	return text, nil
}

func (s *GeminiService) Provider() string { return geminiProvider }

func (s *GeminiService) Model() string { return s.model }

func geminiStatus(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code
	}
	return 0
}
