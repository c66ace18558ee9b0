package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fadilmartias/submitme/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

func answerRequest() CompletionRequest {
	return CompletionRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "You are helpful."},
			{Role: RoleUser, Content: "Question: why us?"},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	}
}

func TestOpenAIServiceComplete(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"Because of the mission."}}]}`)
	}))
	defer srv.Close()

	svc := NewOpenAIService(srv.URL, "sk-test", "gpt-4o", zap.NewNop())
	out, err := svc.Complete(context.Background(), answerRequest())
	require.NoError(t, err)
	assert.Equal(t, "Because of the mission.", out)

	parsed := gjson.ParseBytes(body)
	assert.Equal(t, "gpt-4o", parsed.Get("model").String())
	assert.Equal(t, int64(500), parsed.Get("max_tokens").Int())
	assert.InDelta(t, 0.7, parsed.Get("temperature").Float(), 0.0001)
	assert.Equal(t, "system", parsed.Get("messages.0.role").String())
	assert.Equal(t, "Question: why us?", parsed.Get("messages.1.content").String())
	assert.False(t, parsed.Get("response_format").Exists())
}

func TestOpenAIServiceSchemaMode(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		payload, _ := json.Marshal(map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"content": `{"name":"Ada"}`}}},
		})
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	req := answerRequest()
	req.Temperature = 0
	req.Schema = &JSONSchema{Name: "parsed_cv", Schema: map[string]any{"type": "object"}}

	out, err := NewOpenAIService(srv.URL, "k", "gpt-4o", nil).Complete(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ada"}`, out)

	format := gjson.GetBytes(body, "response_format")
	assert.Equal(t, "json_schema", format.Get("type").String())
	assert.Equal(t, "parsed_cv", format.Get("json_schema.name").String())
	assert.True(t, format.Get("json_schema.strict").Bool())
	assert.Equal(t, "object", format.Get("json_schema.schema.type").String())
}

func TestOpenAIServiceHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"message":"slow down"}}`)
	}))
	defer srv.Close()

	_, err := NewOpenAIService(srv.URL, "k", "gpt-4o", zap.NewNop()).Complete(context.Background(), answerRequest())
	require.Error(t, err)

	var perr *model.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "openai", perr.Provider)
	assert.Equal(t, http.StatusTooManyRequests, perr.StatusCode)
	assert.Contains(t, perr.Error(), "slow down")
}

func TestOpenAIServiceEmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"choices":[{"message":{"content":"   "}}]}`)
	}))
	defer srv.Close()

	_, err := NewOpenAIService(srv.URL, "k", "gpt-4o", zap.NewNop()).Complete(context.Background(), answerRequest())
	var perr *model.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Error(), "empty completion")
}

func TestOpenAIServiceRejectsInvalidRequest(t *testing.T) {
	svc := NewOpenAIService("http://127.0.0.1:1", "k", "gpt-4o", zap.NewNop())

	_, err := svc.Complete(context.Background(), CompletionRequest{MaxTokens: 10})
	require.Error(t, err)

	_, err = svc.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
}
