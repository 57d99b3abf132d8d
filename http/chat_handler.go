package http

import (
	"errors"
	"net/http"

	"finance-guide/logger"
	"finance-guide/service"
)

type ChatHandler struct {
	service *service.ChatService
}

func NewChatHandler(service *service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

type sendMessageRequest struct {
	Prompt string `json:"prompt"`
}

type setAPIKeyRequest struct {
	APIKey string `json:"api_key"`
}

// Status serves GET /api/chat.
func (h *ChatHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	status, err := h.service.Status(r.Context(), SessionID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// Messages serves POST (send a turn) and DELETE (clear chat) on
// /api/chat/messages.
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.send(w, r)
	case http.MethodDelete:
		h.clear(w, r)
	default:
		methodNotAllowed(w, "POST, DELETE")
	}
}

func (h *ChatHandler) send(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sessionID := SessionID(r.Context())
	reply, err := h.service.SendMessage(r.Context(), sessionID, req.Prompt)
	if err != nil {
		if !errors.Is(err, service.ErrCompletionFailed) {
			logger.L.Info("chat turn rejected", "session", sessionID, "error", err)
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *ChatHandler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearHistory(r.Context(), SessionID(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// APIKey serves POST /api/chat/api-key.
func (h *ChatHandler) APIKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req setAPIKeyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.SetAPIKey(r.Context(), SessionID(r.Context()), req.APIKey); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
