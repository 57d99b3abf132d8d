package http

import (
	"net/http"
	"time"

	"finance-guide/logger"
)

type RouterDeps struct {
	Chat        *ChatHandler
	Calculators *CalculatorHandler
	UI          *UIHandler
	ChatLimiter *RateLimiter
	CookieName  string
	SessionTTL  time.Duration
}

// NewRouter wires every endpoint. Chat turns are rate limited per client
// because each one costs an upstream completion call.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", d.UI.Index)
	mux.HandleFunc("/healthz", Health)

	mux.HandleFunc("/api/chat", d.Chat.Status)
	// Only sending a turn spends a token; clearing the chat is free.
	mux.Handle(
		"POST /api/chat/messages",
		RateLimitMiddleware(
			d.ChatLimiter,
			http.HandlerFunc(d.Chat.Messages),
		),
	)
	mux.HandleFunc("/api/chat/messages", d.Chat.Messages)
	mux.HandleFunc("/api/chat/api-key", d.Chat.APIKey)

	mux.HandleFunc("/api/calculators/{kind}", d.Calculators.Calculate)
	mux.HandleFunc("/api/calculations/recent", d.Calculators.Recent)

	return accessLog(SessionMiddleware(d.CookieName, d.SessionTTL, mux))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.L.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
