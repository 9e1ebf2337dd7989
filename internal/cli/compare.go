package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/yojana/internal/i18n"
	"github.com/ppiankov/yojana/internal/model"
)

var compareTimeout time.Duration

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <scheme-a> <scheme-b>",
	Short: "Compare two schemes side by side",
	Long: `Compare produces a structured side-by-side comparison of two schemes.
The live advisor writes the analysis when available; otherwise the
comparison is rebuilt from the bundled database when both names match
known schemes.

Example:
  yojana compare "PM-Kisan" "MGNREGA"
  yojana compare --language Hindi "आयुष्मान भारत" "सुकन्या समृद्धि"`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().DurationVar(&compareTimeout, "timeout", 60*time.Second, "comparison timeout")
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), compareTimeout)
	defer cancel()

	cfg := loadConfig()
	lang := resolveLanguage(cfg)

	svc, err := newDiscovery(cfg, false)
	if err != nil {
		return err
	}

	result := svc.Compare(ctx, args[0], args[1], lang)

	if result.Comparison == nil {
		fmt.Println(result.Message)
		return nil
	}

	if result.Degraded {
		fmt.Print(i18n.T(lang, "banner.degraded"))
	}
	printDetail(&result.Comparison.SchemeA, lang)
	printDetail(&result.Comparison.SchemeB, lang)
	fmt.Println(result.Comparison.Summary)
	return nil
}

// printDetail renders one side of a comparison
func printDetail(d *model.SchemeDetail, lang string) {
	fmt.Printf("### %s\n", d.Name)
	if d.Provider != "" {
		fmt.Printf("**%s:** %s\n", i18n.T(lang, "search.category"), d.Provider)
	}
	fmt.Println(d.Description)
	if len(d.Eligibility) > 0 {
		fmt.Printf("📋 **%s:** %s\n", i18n.T(lang, "search.eligibility"), strings.Join(d.Eligibility, ", "))
	}
	if len(d.Benefits) > 0 {
		fmt.Printf("✅ **%s:** %s\n", i18n.T(lang, "search.benefits"), strings.Join(d.Benefits, ", "))
	}
	if len(d.Documents) > 0 {
		fmt.Printf("📄 **%s:** %s\n", i18n.T(lang, "search.documents"), strings.Join(d.Documents, ", "))
	}
	if d.ApplyLink != "" {
		fmt.Printf("🔗 [%s](%s)\n", i18n.T(lang, "search.apply"), d.ApplyLink)
	}
	fmt.Println()
	fmt.Println("---")
	fmt.Println()
}
