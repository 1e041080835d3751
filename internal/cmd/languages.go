package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/urlscout/urlscout-go/internal/common/logger"
	"github.com/urlscout/urlscout-go/internal/language"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Long:  `List every language with grammar-driven extraction and its file extensions.`,
	Args:  cobra.NoArgs,
	RunE:  runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, args []string) error {
	registry := language.DefaultRegistry(logger.L())
	for _, name := range registry.SupportedLanguages() {
		cfg := registry.Lookup(name)
		patterns := append([]string{}, cfg.Extensions...)
		patterns = append(patterns, cfg.Filenames...)
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", cfg.Display(), strings.Join(patterns, " "))
	}
	return nil
}
