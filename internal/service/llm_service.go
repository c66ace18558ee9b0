package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fadilmartias/submitme/internal/config"
	"github.com/fadilmartias/submitme/internal/model"
	"go.uber.org/zap"
)

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type Message struct {
	Role    Role
	Content string
}

// JSONSchema switches a completion into structured-output mode.
type JSONSchema struct {
	Name   string
	Schema map[string]any
}

type CompletionRequest struct {
	Messages    []Message
	Schema      *JSONSchema
	Temperature float32
	MaxTokens   int
}

// LLMServiceInterface is a chat-completion provider. In schema mode Complete
// returns the JSON document, otherwise free text.
type LLMServiceInterface interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Provider() string
	Model() string
}

// NewLLMService builds the provider selected in cfg, bounded by cfg.Timeout.
func NewLLMService(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (LLMServiceInterface, error) {
	var (
		svc LLMServiceInterface
		err error
	)

	switch cfg.Provider {
	case config.ProviderOpenAI:
		svc = NewOpenAIService(cfg.BaseURL, cfg.APIKey, cfg.Model, logger)
	case config.ProviderGemini:
		svc, err = NewGeminiService(ctx, cfg.BaseURL, cfg.APIKey, cfg.Model)
	case config.ProviderAnthropic:
		svc = NewAnthropicService(cfg.BaseURL, cfg.APIKey, cfg.Model)
	default:
		return nil, &model.ConfigError{Key: "LLM_PROVIDER", Err: fmt.Errorf("unknown provider %q", cfg.Provider)}
	}
	if err != nil {
		return nil, err
	}

	return WithDeadline(svc, cfg.Timeout), nil
}

// splitMessages separates the system blocks from the conversation, for
// providers that take the system prompt out of band.
func splitMessages(messages []Message) (system string, rest []Message) {
	var parts []string
	for _, m := range messages {
		if m.Role == RoleSystem {
			parts = append(parts, m.Content)
			continue
		}
		rest = append(rest, m)
	}
	return strings.Join(parts, "\n\n"), rest
}

func validateRequest(req CompletionRequest) error {
	if len(req.Messages) == 0 {
		return fmt.Errorf("completion request has no messages")
	}
	for i, m := range req.Messages {
		if strings.TrimSpace(m.Content) == "" {
			return fmt.Errorf("message %d (%s) is empty", i, m.Role)
		}
	}
	if req.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", req.MaxTokens)
	}
	return nil
}

func isRateLimit(status int) bool {
	return status == http.StatusTooManyRequests
}

type deadlineService struct {
	inner   LLMServiceInterface
	timeout time.Duration
}

// WithDeadline bounds every Complete call of svc by timeout. A call that runs
// out of time fails with a *model.ProviderError wrapping
// model.ErrProviderTimeout.
func WithDeadline(svc LLMServiceInterface, timeout time.Duration) LLMServiceInterface {
	if timeout <= 0 {
		return svc
	}
	return &deadlineService{inner: svc, timeout: timeout}
}

func (d *deadlineService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	out, err := d.inner.Complete(timeoutCtx, req)
	if err != nil {
		if timeoutCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
			return "", &model.ProviderError{
				Provider: d.inner.Provider(),
				Err:      fmt.Errorf("%w after %s: %v", model.ErrProviderTimeout, d.timeout, err),
			}
		}
		return "", err
	}
	return out, nil
}

func (d *deadlineService) Provider() string { return d.inner.Provider() }

func (d *deadlineService) Model() string { return d.inner.Model() }
