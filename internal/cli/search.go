package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/yojana/internal/catalog"
	"github.com/ppiankov/yojana/internal/search"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the bundled scheme database",
	Long: `Search looks up schemes in the bundled database without touching the
network. Every word of the query must match somewhere in a scheme's
names, descriptions, category, or provider.

Example:
  yojana search farmer income
  yojana search --language Hindi किसान`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	lang := resolveLanguage(cfg)

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load scheme catalog: %w", err)
	}

	fmt.Println(search.NewMatcher(cat).Search(strings.Join(args, " "), lang))
	return nil
}
