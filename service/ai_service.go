package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sashabaranov/go-openai"

	"finance-guide/config"
	"finance-guide/domain"
)

// ChatCompleter is the subset of openai.Client the relay uses; it is easy to
// mock in tests.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ClientFactory builds a completion client for one API key. Keys can differ
// per session, so clients are not shared.
type ClientFactory func(apiKey string) ChatCompleter

// NewOpenAIClientFactory returns a factory for OpenAI-compatible endpoints
// (Gemini exposes one under cfg.BaseURL).
func NewOpenAIClientFactory(cfg config.LLMConfig) ClientFactory {
	return func(apiKey string) ChatCompleter {
		clientCfg := openai.DefaultConfig(apiKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		return openai.NewClientWithConfig(clientCfg)
	}
}

type AIService struct {
	cfg          config.LLMConfig
	newClient    ClientFactory
	systemPrompt string
}

func NewAIService(cfg config.LLMConfig, newClient ClientFactory) *AIService {
	return &AIService{
		cfg:          cfg,
		newClient:    newClient,
		systemPrompt: PersonaPrompt,
	}
}

// Complete sends the persona, the prior turns and the new prompt as one
// request and returns the generated text.
func (s *AIService) Complete(
	ctx context.Context,
	apiKey string,
	history []domain.Message,
	prompt string,
) (string, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxOutputTokens,
		Messages:    s.buildMessages(history, prompt),
	}

	resp, err := s.newClient(apiKey).CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion service returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("completion service returned empty text")
	}
	return text, nil
}

func (s *AIService) buildMessages(history []domain.Message, prompt string) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: s.systemPrompt,
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == domain.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})
	return messages
}
