package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/yojana/internal/cache"
	"github.com/ppiankov/yojana/internal/catalog"
	"github.com/ppiankov/yojana/internal/discovery"
	"github.com/ppiankov/yojana/internal/i18n"
	"github.com/ppiankov/yojana/internal/model"
)

var (
	latestTimeout time.Duration
	latestNoCache bool
)

// latestCmd represents the latest command
var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show recently announced scheme updates",
	Long: `Latest fetches recently announced scheme initiatives from the live
advisor. Offline or unconfigured, it shows a selection from the bundled
database instead. Results are cached so repeat lookups stay fast.

Example:
  yojana latest
  yojana latest --language Marathi --no-cache`,
	Args: cobra.NoArgs,
	RunE: runLatest,
}

func init() {
	rootCmd.AddCommand(latestCmd)

	latestCmd.Flags().DurationVar(&latestTimeout, "timeout", 60*time.Second, "fetch timeout")
	latestCmd.Flags().BoolVar(&latestNoCache, "no-cache", false, "bypass the response cache")
}

func runLatest(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), latestTimeout)
	defer cancel()

	cfg := loadConfig()
	lang := resolveLanguage(cfg)

	svc, err := newDiscovery(cfg, latestNoCache)
	if err != nil {
		return err
	}

	result := svc.Latest(ctx, lang)

	if result.Degraded {
		fmt.Print(i18n.T(lang, "banner.degraded"))
	}
	fmt.Println(i18n.T(lang, "discovery.header"))
	fmt.Println()
	for _, s := range result.Schemes {
		printSummary(&s, lang)
	}
	return nil
}

// newDiscovery wires the discovery service: catalog, advisor, and the
// layered response cache. The --offline flag forces the local path by
// dropping the provider.
func newDiscovery(cfg *model.Config, noCache bool) (*discovery.Service, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load scheme catalog: %w", err)
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		return nil, err
	}
	if offline {
		provider = nil
	}

	var c cache.Cache
	if cfg.Cache.Enabled && !noCache {
		if dir := cacheDir(cfg); dir != "" {
			c = cache.NewLayered(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		} else {
			c = cache.NewMemory(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	return discovery.NewService(provider, cat, c, cfg.Cache.DiskTTL), nil
}

// printSummary renders one discovery entry as a markdown block
func printSummary(s *model.SchemeSummary, lang string) {
	fmt.Printf("### %s\n", s.Name)
	if s.Provider != "" {
		fmt.Printf("*%s*\n", s.Provider)
	}
	fmt.Println(s.Description)
	if len(s.Benefits) > 0 {
		fmt.Printf("✅ **%s:** %s\n", i18n.T(lang, "search.benefits"), strings.Join(s.Benefits, ", "))
	}
	if len(s.Documents) > 0 {
		fmt.Printf("📄 **%s:** %s\n", i18n.T(lang, "search.documents"), strings.Join(s.Documents, ", "))
	}
	if s.ApplyLink != "" {
		fmt.Printf("🔗 [%s](%s)\n", i18n.T(lang, "search.apply"), s.ApplyLink)
	}
	fmt.Println()
	fmt.Println("---")
	fmt.Println()
}
