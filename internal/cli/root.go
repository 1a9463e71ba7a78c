package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/forageapp/forage/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "forage",
	Short: "Forage - clip recipes from the web and scale them",
	Long: `Forage pulls structured recipes out of web pages and keeps them
in a clean, portable form.

It reads the Schema.org data sites already publish (JSON-LD blocks,
with microdata markup as fallback), normalizes it into a canonical
recipe, and can rescale any ingredient list with per-ingredient
scaling rules: salt doesn't double just because the batch did.`,
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
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("forage v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.forage/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.forage")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match FORAGE_*
	viper.SetEnvPrefix("FORAGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setViperDefaults()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setViperDefaults seeds every config key so viper.Unmarshal resolves
// file, environment, and default values for all of them, not just the
// keys a config file happens to mention.
func setViperDefaults() {
	defaults := model.DefaultConfig()

	viper.SetDefault("http.timeout", defaults.HTTP.Timeout)
	viper.SetDefault("http.user_agent", defaults.HTTP.UserAgent)
	viper.SetDefault("http.max_body_bytes", defaults.HTTP.MaxBodyBytes)
	viper.SetDefault("http.respect_robots", defaults.HTTP.RespectRobots)
	viper.SetDefault("cache.enabled", defaults.Cache.Enabled)
	viper.SetDefault("cache.dir", defaults.Cache.Dir)
	viper.SetDefault("cache.memory_ttl", defaults.Cache.MemoryTTL)
	viper.SetDefault("cache.disk_ttl", defaults.Cache.DiskTTL)
	viper.SetDefault("concurrency.import_workers", defaults.Concurrency.ImportWorkers)
	viper.SetDefault("concurrency.image_workers", defaults.Concurrency.ImageWorkers)
	viper.SetDefault("rate_limit.requests_per_second", defaults.RateLimit.RequestsPerSecond)
	viper.SetDefault("rate_limit.burst", defaults.RateLimit.Burst)
	viper.SetDefault("llm.provider", defaults.LLM.Provider)
	viper.SetDefault("llm.model", defaults.LLM.Model)
	viper.SetDefault("llm.api_key", defaults.LLM.APIKey)
	viper.SetDefault("llm.base_url", defaults.LLM.BaseURL)
	viper.SetDefault("llm.timeout_seconds", defaults.LLM.TimeoutSeconds)
	viper.SetDefault("llm.max_tokens", defaults.LLM.MaxTokens)
	viper.SetDefault("output.verbose", defaults.Output.Verbose)
	viper.SetDefault("output.include_source", defaults.Output.IncludeSource)
}
