package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/yojana/internal/catalog"
	"github.com/ppiankov/yojana/internal/verify"
)

var (
	verifyTimeout time.Duration
	verifyJSON    bool
)

// schemesCmd represents the schemes command
var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "Inspect the bundled scheme database",
}

var schemesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all bundled schemes",
	Long: `List prints every scheme in the bundled database with its identifier,
localized name, and category.

Example:
  yojana schemes list
  yojana schemes list --language Hindi`,
	Args: cobra.NoArgs,
	RunE: runSchemesList,
}

var schemesVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every apply link is reachable",
	Long: `Verify fetches each scheme's application link concurrently, honoring
robots.txt and a per-host rate limit, and reports dead links. This is a
catalog maintenance check; it needs network access.

Example:
  yojana schemes verify
  yojana schemes verify --json`,
	Args: cobra.NoArgs,
	RunE: runSchemesVerify,
}

func init() {
	rootCmd.AddCommand(schemesCmd)
	schemesCmd.AddCommand(schemesListCmd)
	schemesCmd.AddCommand(schemesVerifyCmd)

	schemesVerifyCmd.Flags().DurationVar(&verifyTimeout, "timeout", 2*time.Minute, "overall verification timeout")
	schemesVerifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "emit results as JSON")
}

func runSchemesList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	lang := resolveLanguage(cfg)

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load scheme catalog: %w", err)
	}

	for _, s := range cat.Schemes() {
		fmt.Printf("%-12s %s (%s)\n", s.ID, catalog.Name(&s, lang), s.Category)
	}
	return nil
}

func runSchemesVerify(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	cfg := loadConfig()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load scheme catalog: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Checking %d apply links (%d workers)\n\n", cat.Len(), cfg.Verify.Workers)
	}

	checker := verify.NewChecker(cfg.Verify)
	results := checker.CheckAll(ctx, cat.Schemes())

	if verifyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
	}

	var failed int
	for _, r := range results {
		switch {
		case r.Blocked:
			if !verifyJSON {
				fmt.Printf("⛔ %-12s robots.txt disallows %s\n", r.SchemeID, r.URL)
			}
		case r.Accessible:
			if !verifyJSON {
				fmt.Printf("✓  %-12s %d %s\n", r.SchemeID, r.StatusCode, r.URL)
			}
		default:
			failed++
			if !verifyJSON {
				detail := r.Error
				if detail == "" {
					detail = fmt.Sprintf("HTTP %d", r.StatusCode)
				}
				fmt.Printf("✗  %-12s %s (%s)\n", r.SchemeID, r.URL, detail)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d apply links unreachable", failed, len(results))
	}
	return nil
}
