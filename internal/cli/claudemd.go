package cli

import (
	"fmt"

	"github.com/ctxkit-labs/ctxkit/internal/claudemd"
	"github.com/ctxkit-labs/ctxkit/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	claudeMDType        string
	claudeMDOutput      string
	claudeMDInteractive bool
)

func init() {
	claudeMDCmd.Flags().StringVar(&claudeMDType, "type", claudemd.DefaultType,
		"Project type template to use ("+joinTypes(claudemd.Types())+")")
	claudeMDCmd.Flags().StringVar(&claudeMDOutput, "output", claudemd.DefaultOutput,
		"Output path for the CLAUDE.md file")
	claudeMDCmd.Flags().BoolVar(&claudeMDInteractive, "interactive", false,
		"Pick the project type from a menu")
	rootCmd.AddCommand(claudeMDCmd)
}

var claudeMDCmd = &cobra.Command{
	Use:   "claude-md",
	Short: "Generate a CLAUDE.md instructions file from a built-in template",
	Long: `Generate a CLAUDE.md file for context-efficient Claude Code workflows.

The selected template is written verbatim; parent directories of the output
path are created as needed.

Examples:
  ctxkit claude-md
  ctxkit claude-md --type backend --output ./services/api/CLAUDE.md`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		typeKey, err := resolveType(cmd, claudeMDType, claudeMDInteractive,
			"Select project type:", claudemd.Types(), config.KeyProjectType,
			func(key string) string {
				t, err := claudemd.Lookup(key)
				if err != nil {
					return ""
				}
				return t.Description
			})
		if err != nil {
			return err
		}

		if err := claudemd.Generate(typeKey, claudeMDOutput); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s Generated CLAUDE.md at %s\n", color.GreenString("✅"), claudeMDOutput)
		fmt.Fprintf(out, "   Template: %s\n", typeKey)
		fmt.Fprintf(out, "\n📝 Next steps:\n")
		fmt.Fprintf(out, "   1. Review and customize the generated CLAUDE.md\n")
		fmt.Fprintf(out, "   2. Fill in project-specific details\n")
		fmt.Fprintf(out, "   3. Commit it to your repository\n")
		return nil
	},
}
