package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/yojana/internal/advisor"
	"github.com/ppiankov/yojana/internal/connectivity"
	"github.com/ppiankov/yojana/internal/model"
)

var (
	cfgFile  string
	verbose  bool
	language string
	offline  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "yojana",
	Short: "Yojana - Government scheme assistant for Indian citizens",
	Long: `Yojana helps citizens discover and apply for Indian government welfare
schemes: subsidies, scholarships, pensions, insurance, and social
security benefits.

It works in two modes. When online and configured with an API key, a
generative advisor answers free-form questions with live, cited
information. When offline or unconfigured, answers come from a bundled
scheme database. The tool always answers; it never requires a network.

Answers can be produced in English, Hindi, Marathi, Tamil, Bengali,
Telugu, Kannada, Gujarati, Malayalam, Punjabi, and Urdu.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Yojana.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("yojana v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.yojana/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "", "answer language (English, Hindi, Bengali, ...)")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "force offline mode (answer from the bundled database only)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("language"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.yojana")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match YOJANA_*
	viper.SetEnvPrefix("YOJANA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: defaults overlaid with
// config-file and environment values read through viper.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("language"); v != "" {
		cfg.Language = v
	}
	if v := viper.GetString("advisor.provider"); v != "" {
		cfg.Advisor.Provider = v
	}
	if v := viper.GetString("advisor.model"); v != "" {
		cfg.Advisor.Model = v
	}
	if v := viper.GetString("advisor.base_url"); v != "" {
		cfg.Advisor.BaseURL = v
	}
	if v := viper.GetInt("advisor.timeout"); v > 0 {
		cfg.Advisor.Timeout = v
	}
	if v := viper.GetInt("advisor.max_tokens"); v > 0 {
		cfg.Advisor.MaxTokens = v
	}
	if v := viper.GetInt("advisor.history_window"); v > 0 {
		cfg.Advisor.HistoryWindow = v
	}
	if v := viper.GetString("connectivity.probe_url"); v != "" {
		cfg.Connectivity.ProbeURL = v
	}
	if v := viper.GetString("cache.dir"); v != "" {
		cfg.Cache.Dir = v
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	cfg.Output.Verbose = verbose

	return cfg
}

// resolveLanguage picks the answer language: flag, then config, then
// English. Unsupported values fall back to English with a warning.
func resolveLanguage(cfg *model.Config) string {
	lang := cfg.Language
	if language != "" {
		lang = language
	}
	if !model.IsLanguageSupported(lang) {
		fmt.Fprintf(os.Stderr, "Unsupported language %q, using %s\n", lang, model.LangEnglish)
		return model.LangEnglish
	}
	return lang
}

// buildProvider constructs the remote advisor from configuration and
// environment. A missing API key is not fatal: it returns a nil
// provider and the assistant runs degraded, answering locally.
func buildProvider(cfg *model.Config) (advisor.Provider, error) {
	ac := cfg.Advisor

	// Infer the provider from available credentials when unset
	if ac.Provider == "" {
		switch {
		case os.Getenv("GEMINI_API_KEY") != "":
			ac.Provider = "gemini"
		case os.Getenv("OPENAI_API_KEY") != "":
			ac.Provider = "openai"
		default:
			return nil, nil
		}
	}

	if ac.APIKey == "" {
		switch ac.Provider {
		case "gemini", "google":
			ac.APIKey = os.Getenv("GEMINI_API_KEY")
			if ac.APIKey == "" {
				ac.APIKey = os.Getenv("GOOGLE_API_KEY")
			}
		case "openai":
			ac.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if ac.APIKey == "" {
		if verbose {
			fmt.Fprintf(os.Stderr, "No API key for provider %q, answering from the bundled database\n", ac.Provider)
		}
		return nil, nil
	}

	return advisor.NewProvider(advisor.ConfigFromModel(ac))
}

// newMonitor builds the connectivity monitor. The --offline flag pins
// the assistant to the bundled database without probing the network.
func newMonitor(cfg *model.Config) connectivity.Monitor {
	if offline {
		return connectivity.NewStatic(false)
	}
	return connectivity.NewProbe(cfg.Connectivity.ProbeURL, cfg.Connectivity.Interval, cfg.Connectivity.Timeout)
}

// cacheDir resolves the on-disk cache location
func cacheDir(cfg *model.Config) string {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".yojana", "cache")
}
