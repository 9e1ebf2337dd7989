package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/yojana/internal/i18n"
	"github.com/ppiankov/yojana/internal/mode"
	"github.com/ppiankov/yojana/internal/model"
)

var chatTimeout time.Duration

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive conversation",
	Long: `Chat starts a multi-turn conversation. Recent turns are carried as
context for the advisor, and the session degrades to the bundled
database whenever the network or the advisor drops away.

Type 'exit' or press Ctrl-D to leave.

Example:
  yojana chat
  yojana chat --language Tamil`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().DurationVar(&chatTimeout, "timeout", 60*time.Second, "per-answer timeout")
	chatCmd.Flags().StringVar(&profilePath, "profile", "", "profile file (default: $HOME/.yojana/profile.yaml)")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	lang := resolveLanguage(cfg)

	ctrl, closeAll, err := newController(cfg)
	if err != nil {
		return err
	}
	defer closeAll()

	userCtx, err := loadProfileContext()
	if err != nil {
		return err
	}

	fmt.Println(i18n.T(lang, "chat.intro"))
	fmt.Println()

	var history []model.Message
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(i18n.T(lang, "chat.prompt"))
		if !scanner.Scan() {
			fmt.Println()
			break
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "exit" || query == "quit" {
			break
		}

		answer := askOnce(ctrl, query, history, userCtx, lang)

		fmt.Printf("%s%s\n", i18n.T(lang, "chat.answer"), answer.Text)
		printSources(answer, lang)
		fmt.Println()

		history = append(history,
			model.Message{Role: model.RoleUser, Content: query},
			model.Message{Role: model.RoleAssistant, Content: answer.Text},
		)
	}

	fmt.Println(i18n.T(lang, "chat.goodbye"))
	return scanner.Err()
}

func askOnce(ctrl *mode.Controller, query string, history []model.Message, userCtx map[string]string, lang string) *model.Answer {
	ctx, cancel := context.WithTimeout(context.Background(), chatTimeout)
	defer cancel()

	return ctrl.Answer(ctx, mode.Request{
		Query:    query,
		History:  history,
		Profile:  userCtx,
		Language: lang,
	})
}
