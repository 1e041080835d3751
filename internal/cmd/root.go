package cmd

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/urlscout/urlscout-go/internal/common/logger"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "urlscout",
	Short: "Find URLs embedded in source code",
	Long: `urlscout scans a directory tree of source files and reports every
URL found in string literals, comments, and raw text, with precise
line/column positions and surrounding context.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

// Execute runs the root command.
func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default searches ./urlscout.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func initApp(cmd *cobra.Command, args []string) error {
	// Optional .env for CI and local overrides; absence is fine.
	_ = godotenv.Load()

	logger.Init(debug)

	viper.SetEnvPrefix("URLSCOUT")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		return nil
	}

	viper.SetConfigName("urlscout")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}
