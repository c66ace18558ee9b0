// Package servicetest provides an in-memory LLM provider for tests.
package servicetest

import (
	"context"
	"sync"

	"github.com/fadilmartias/submitme/internal/service"
)

// StubLLM answers every Complete call with Response or Err and records the
// requests it received.
type StubLLM struct {
	Response string
	Err      error

	mu       sync.Mutex
	requests []service.CompletionRequest
}

func (s *StubLLM) Complete(ctx context.Context, req service.CompletionRequest) (string, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}

func (s *StubLLM) Provider() string { return "stub" }

func (s *StubLLM) Model() string { return "stub-model" }

// Calls reports how many completions were requested.
func (s *StubLLM) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// LastRequest returns the most recent request, or the zero value.
func (s *StubLLM) LastRequest() service.CompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return service.CompletionRequest{}
	}
	return s.requests[len(s.requests)-1]
}
