package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpLayer "finance-guide/http"
	"finance-guide/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web UI and JSON API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	chatLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer chatLimiter.Stop()

	handler := httpLayer.NewRouter(httpLayer.RouterDeps{
		Chat:        httpLayer.NewChatHandler(a.chat),
		Calculators: httpLayer.NewCalculatorHandler(a.calculators),
		UI:          httpLayer.NewUIHandler(cfg.LLM.APIKey != "", cfg.LLM.Model),
		ChatLimiter: chatLimiter,
		CookieName:  cfg.Session.CookieName,
		SessionTTL:  cfg.Session.TTL,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.L.Info("starting server", "address", server.Addr, "model", cfg.LLM.Model)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		logger.L.Error("error starting server", "error", err)
		return err
	case <-ctx.Done():
		logger.L.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L.Error("error during server shutdown", "error", err)
		return err
	}

	logger.L.Info("server exited")
	return nil
}
