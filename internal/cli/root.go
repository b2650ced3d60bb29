package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/legalens/legalens/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "legalens",
	Short: "LegaLens - Contract risk analysis for Indian SMEs",
	Long: `LegaLens analyzes legal contracts so small business owners can see
what they are signing before they sign it.

It segments a contract into clauses, classifies each clause, extracts
obligations and parties, flags risky language with a transparent rule
catalog, and scores the overall risk of the document.

An optional LLM collaborator adds contract classification, a plain-
language summary, and Indian-law compliance notes. The rule-based
analysis never depends on the LLM and works fully offline.

LegaLens is an assistant, not a lawyer.`,
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
	Long:  `Display the version number and build information for LegaLens.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("legalens v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.legalens/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

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
		viper.AddConfigPath(filepath.Join(home, ".legalens"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match LEGALENS_*
	viper.SetEnvPrefix("LEGALENS")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildConfig assembles the runtime configuration: defaults, then config
// file values, then command flags applied by the caller
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if viper.IsSet("llm.provider") {
		cfg.LLM.Provider = viper.GetString("llm.provider")
	}
	if viper.IsSet("llm.model") {
		cfg.LLM.Model = viper.GetString("llm.model")
	}
	if viper.IsSet("llm.base_url") {
		cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("cache.dir") {
		cfg.Cache.Dir = viper.GetString("cache.dir")
	}
	if viper.IsSet("audit.enabled") {
		cfg.Audit.Enabled = viper.GetBool("audit.enabled")
	}
	if viper.IsSet("audit.path") {
		cfg.Audit.Path = viper.GetString("audit.path")
	}
	if viper.IsSet("concurrency.batch_workers") {
		cfg.Concurrency.BatchWorkers = viper.GetInt("concurrency.batch_workers")
	}

	cfg.Output.Verbose = verbose

	resolveHomePaths(cfg)
	return cfg
}

// resolveHomePaths fills the cache and audit locations left empty by the
// defaults with paths under ~/.legalens
func resolveHomePaths(cfg *model.Config) {
	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory: leave paths empty and run without cache/audit
		return
	}
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = filepath.Join(home, ".legalens", "cache")
	}
	if cfg.Audit.Path == "" {
		cfg.Audit.Path = filepath.Join(home, ".legalens", "audit.db")
	}
}

// configureLLM applies the LLM flags and pulls the API key from the
// environment for the chosen provider
func configureLLM(cfg *model.Config, provider, modelName string) error {
	cfg.LLM.Provider = provider
	if modelName != "" {
		cfg.LLM.Model = modelName
	}

	switch provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	default:
		return fmt.Errorf("unknown LLM provider: %s (use openai, anthropic or ollama)", provider)
	}
	return nil
}
