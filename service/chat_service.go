package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"finance-guide/domain"
	"finance-guide/logger"
	"finance-guide/repository"
)

type Completer interface {
	Complete(ctx context.Context, apiKey string, history []domain.Message, prompt string) (string, error)
}

const sessionLockStripes = 64

type ChatService struct {
	sessions  repository.SessionRepository
	ai        Completer
	serverKey string
	now       func() time.Time
	locks     [sessionLockStripes]sync.Mutex
}

// NewChatService creates the chat relay. serverKey, when set, is used for
// every session and the per-session key is ignored.
func NewChatService(sessions repository.SessionRepository, ai Completer, serverKey string) *ChatService {
	return &ChatService{
		sessions:  sessions,
		ai:        ai,
		serverKey: strings.TrimSpace(serverKey),
		now:       time.Now,
	}
}

// Status reports whether a credential is available and returns the history.
func (s *ChatService) Status(ctx context.Context, sessionID string) (domain.ChatStatus, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return domain.ChatStatus{}, err
	}
	return domain.ChatStatus{
		APIKeySet: s.apiKey(session) != "",
		Messages:  nonNil(session.Messages),
	}, nil
}

// SendMessage runs one chat turn. The user message is stored before the
// completion call and stays in history if the call fails. The session lock
// is not held while the model is answering; the reply is appended to the
// session as it is when the answer arrives.
func (s *ChatService) SendMessage(ctx context.Context, sessionID, prompt string) (domain.ChatReply, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return domain.ChatReply{}, ErrEmptyMessage
	}

	apiKey, history, err := s.appendUserTurn(ctx, sessionID, prompt)
	if err != nil {
		return domain.ChatReply{}, err
	}

	reply, err := s.ai.Complete(ctx, apiKey, history, prompt)
	if err != nil {
		logger.L.Error("chat completion failed", "session", sessionID, "turns", len(history), "error", err)
		return domain.ChatReply{}, fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return domain.ChatReply{}, err
	}
	session.Messages = append(session.Messages, domain.Message{
		Role:      domain.RoleAssistant,
		Content:   reply,
		Timestamp: s.now(),
	})
	if err := s.save(ctx, session); err != nil {
		return domain.ChatReply{}, err
	}

	return domain.ChatReply{Reply: reply, Messages: session.Messages}, nil
}

// appendUserTurn resolves the credential and stores the prompt. It returns
// the history as it was before the prompt.
func (s *ChatService) appendUserTurn(ctx context.Context, sessionID, prompt string) (string, []domain.Message, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return "", nil, err
	}

	apiKey := s.apiKey(session)
	if apiKey == "" {
		return "", nil, ErrAPIKeyMissing
	}

	history := append([]domain.Message(nil), session.Messages...)
	session.Messages = append(session.Messages, s.userMessage(prompt))
	if err := s.save(ctx, session); err != nil {
		return "", nil, err
	}
	return apiKey, history, nil
}

func (s *ChatService) userMessage(prompt string) domain.Message {
	return domain.Message{Role: domain.RoleUser, Content: prompt, Timestamp: s.now()}
}

// ClearHistory empties the session's messages and keeps its API key.
func (s *ChatService) ClearHistory(ctx context.Context, sessionID string) error {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	session.Messages = nil
	return s.save(ctx, session)
}

// SetAPIKey stores a user-supplied credential on the session.
func (s *ChatService) SetAPIKey(ctx context.Context, sessionID, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return invalid("api key is empty")
	}

	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	session.APIKey = apiKey
	return s.save(ctx, session)
}

func (s *ChatService) apiKey(session domain.Session) string {
	if s.serverKey != "" {
		return s.serverKey
	}
	return session.APIKey
}

func (s *ChatService) load(ctx context.Context, sessionID string) (domain.Session, error) {
	session, ok, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		now := s.now()
		session = domain.Session{ID: sessionID, CreatedAt: now, UpdatedAt: now}
	}
	return session, nil
}

func (s *ChatService) save(ctx context.Context, session domain.Session) error {
	session.UpdatedAt = s.now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

// lock serialises turns within a session without a lock per session id.
func (s *ChatService) lock(sessionID string) func() {
	mu := &s.locks[xxhash.Sum64String(sessionID)%sessionLockStripes]
	mu.Lock()
	return mu.Unlock
}

func nonNil(messages []domain.Message) []domain.Message {
	if messages == nil {
		return []domain.Message{}
	}
	return messages
}
