package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"finance-guide/cli"
	"finance-guide/service"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the finance guide one question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	out, err := a.chat.SendMessage(cmd.Context(), uuid.NewString(), strings.Join(args, " "))
	if errors.Is(err, service.ErrAPIKeyMissing) {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.RenderError("No API key: set GEMINI_API_KEY or llm.api_key in config.yaml"))
		return err
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.RenderError(err.Error()))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderReply(out.Reply))
	return nil
}
