package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-guide/config"
	"finance-guide/domain"
)

type mockLLM struct {
	calls    []openai.ChatCompletionResponse
	err      error
	requests []openai.ChatCompletionRequest
	keys     []string
}

func (m *mockLLM) factory() ClientFactory {
	return func(apiKey string) ChatCompleter {
		m.keys = append(m.keys, apiKey)
		return m
	}
}

func (m *mockLLM) CreateChatCompletion(ctx context.Context, r openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.requests = append(m.requests, r)
	if m.err != nil {
		return openai.ChatCompletionResponse{}, m.err
	}
	if len(m.calls) == 0 {
		panic("mockLLM: no more responses configured")
	}
	resp := m.calls[0]
	m.calls = m.calls[1:]
	return resp, nil
}

func reply(text string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: text}}},
	}
}

var testLLMConfig = config.LLMConfig{
	Model:           "gemini-1.5-flash",
	Temperature:     0.7,
	MaxOutputTokens: 2048,
	Timeout:         time.Second,
}

func TestAIService_ReplaysHistoryAfterPersona(t *testing.T) {
	llm := &mockLLM{calls: []openai.ChatCompletionResponse{reply("  Start a SIP.  ")}}
	ai := NewAIService(testLLMConfig, llm.factory())

	history := []domain.Message{
		{Role: domain.RoleUser, Content: "I am 30"},
		{Role: domain.RoleAssistant, Content: "Great, what is your income?"},
	}
	out, err := ai.Complete(context.Background(), "key-1", history, "10 lakh a year")
	require.NoError(t, err)
	assert.Equal(t, "Start a SIP.", out)

	require.Len(t, llm.requests, 1)
	req := llm.requests[0]
	assert.Equal(t, "gemini-1.5-flash", req.Model)
	assert.InDelta(t, 0.7, req.Temperature, 1e-6)
	assert.Equal(t, 2048, req.MaxTokens)

	require.Len(t, req.Messages, 4)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Equal(t, PersonaPrompt, req.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[1].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, req.Messages[2].Role)
	assert.Equal(t, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: "10 lakh a year"}, req.Messages[3])

	assert.Equal(t, []string{"key-1"}, llm.keys)
}

func TestAIService_Errors(t *testing.T) {
	llm := &mockLLM{err: context.DeadlineExceeded}
	ai := NewAIService(testLLMConfig, llm.factory())
	_, err := ai.Complete(context.Background(), "k", nil, "hi")
	require.True(t, errors.Is(err, context.DeadlineExceeded))

	empty := &mockLLM{calls: []openai.ChatCompletionResponse{{}}}
	ai = NewAIService(testLLMConfig, empty.factory())
	_, err = ai.Complete(context.Background(), "k", nil, "hi")
	require.Error(t, err)

	blank := &mockLLM{calls: []openai.ChatCompletionResponse{reply("   ")}}
	ai = NewAIService(testLLMConfig, blank.factory())
	_, err = ai.Complete(context.Background(), "k", nil, "hi")
	require.Error(t, err)
}
