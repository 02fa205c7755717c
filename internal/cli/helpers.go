package cli

import (
	"strings"

	"github.com/ctxkit-labs/ctxkit/internal/config"
	"github.com/spf13/cobra"
)

func joinTypes(types []string) string {
	return strings.Join(types, "|")
}

// resolveType decides which template type a generator command should use:
// the interactive menu wins, then an explicitly passed --type flag, then a
// configured default, then the flag's built-in default. The returned key is
// not validated here; the registry lookup rejects unknown keys before any
// file is written.
func resolveType(cmd *cobra.Command, flagValue string, interactive bool,
	message string, options []string, configKey string,
	describe func(string) string) (string, error) {

	if interactive {
		return selectType(message, options, describe)
	}
	if !cmd.Flags().Changed("type") {
		config.Load()
		if v := config.Get(configKey); v != "" {
			return v, nil
		}
	}
	return flagValue, nil
}
