package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/yojana/internal/catalog"
	"github.com/ppiankov/yojana/internal/connectivity"
	"github.com/ppiankov/yojana/internal/i18n"
	"github.com/ppiankov/yojana/internal/mode"
	"github.com/ppiankov/yojana/internal/model"
	"github.com/ppiankov/yojana/internal/profile"
	"github.com/ppiankov/yojana/internal/search"
)

var (
	askTimeout  time.Duration
	profilePath string
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question about government schemes",
	Long: `Ask answers one question and exits. When online and configured with an
API key the answer comes from the live advisor with source citations;
otherwise it is built from the bundled scheme database.

Example:
  yojana ask "schemes for women farmers in Bihar"
  yojana ask --language Hindi "किसानों के लिए योजनाएं"
  yojana ask --offline "health insurance"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().DurationVar(&askTimeout, "timeout", 60*time.Second, "overall answer timeout")
	askCmd.Flags().StringVar(&profilePath, "profile", "", "profile file (default: $HOME/.yojana/profile.yaml)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

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

	answer := ctrl.Answer(ctx, mode.Request{
		Query:    query,
		Profile:  userCtx,
		Language: lang,
	})

	fmt.Println(answer.Text)
	printSources(answer, lang)
	return nil
}

// newController wires the catalog, matcher, advisor, and connectivity
// monitor into a mode controller. The returned closer shuts down the
// monitor and detaches the controller.
func newController(cfg *model.Config) (*mode.Controller, func(), error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load scheme catalog: %w", err)
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		return nil, nil, err
	}

	monitor := newMonitor(cfg)
	ctrl := mode.New(provider, search.NewMatcher(cat), monitor,
		mode.WithHistoryWindow(cfg.Advisor.HistoryWindow))

	closeAll := func() {
		ctrl.Close()
		if p, ok := monitor.(*connectivity.Probe); ok {
			p.Close()
		}
	}

	if verbose {
		state := ctrl.State()
		name := "none"
		if provider != nil {
			name = provider.Name()
		}
		fmt.Fprintf(os.Stderr, "Advisor: %s\n", name)
		fmt.Fprintf(os.Stderr, "Online: %v\n", state.Online)
		fmt.Fprintln(os.Stderr)
	}

	return ctrl, closeAll, nil
}

// loadProfileContext reads the optional user profile and flattens it
// for the advisor prompt
func loadProfileContext() (map[string]string, error) {
	path := profilePath
	if path == "" {
		var err error
		path, err = profile.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	p, err := profile.Load(path)
	if err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return nil, nil
	}
	return p.Context(), nil
}

// printSources lists citation links below an answer
func printSources(answer *model.Answer, lang string) {
	if len(answer.Links) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(i18n.T(lang, "chat.sources"))
	for _, link := range answer.Links {
		fmt.Printf("  - %s: %s\n", link.Title, link.URI)
	}
}
