package cli

import (
	"fmt"

	"github.com/ctxkit-labs/ctxkit/internal/config"
	"github.com/ctxkit-labs/ctxkit/internal/subagent"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	subagentType        string
	subagentOutputDir   string
	subagentInteractive bool
)

func init() {
	subagentCmd.Flags().StringVar(&subagentType, "type", subagent.DefaultType,
		"Agent type to create ("+joinTypes(subagent.Types())+")")
	subagentCmd.Flags().StringVar(&subagentOutputDir, "output", ".",
		"Output directory (agents land in <output>/.claude/agents/)")
	subagentCmd.Flags().BoolVar(&subagentInteractive, "interactive", false,
		"Pick the agent type from a menu")
	rootCmd.AddCommand(subagentCmd)
}

var subagentCmd = &cobra.Command{
	Use:   "subagent <agent_name>",
	Short: "Create a subagent definition from a built-in template",
	Long: `Create a Claude Code subagent definition from a built-in template.

Writes two sibling files under <output>/.claude/agents/: a markdown
definition (<agent_name>.md) and its JSON form (<agent_name>.json). The
agent name is used verbatim as the file stem; supply one that is safe for
file paths.

Examples:
  ctxkit subagent doc-searcher
  ctxkit subagent test-runner --type tester --output ./my-project`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		agentName := args[0]

		typeKey, err := resolveType(cmd, subagentType, subagentInteractive,
			"Select agent type:", subagent.Types(), config.KeySubagentType,
			func(key string) string {
				t, err := subagent.Lookup(key)
				if err != nil {
					return ""
				}
				return t.Description
			})
		if err != nil {
			return err
		}

		result, err := subagent.Generate(agentName, typeKey, subagentOutputDir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s Created subagent: %s\n", color.GreenString("✅"), agentName)
		fmt.Fprintf(out, "   Type: %s\n", typeKey)
		fmt.Fprintf(out, "   Location: %s\n", result.MarkdownPath)

		for _, w := range result.Warnings {
			fmt.Fprintf(out, "%s %s\n", color.YellowString("⚠️"), w)
		}

		fmt.Fprintf(out, "\n📝 Next steps:\n")
		fmt.Fprintf(out, "   1. Review and customize %s\n", result.MarkdownPath)
		fmt.Fprintf(out, "   2. Use in Claude Code with: /agent %s\n", agentName)
		fmt.Fprintf(out, "   3. Commit to version control\n")
		fmt.Fprintf(out, "\n💡 Usage example:\n")
		fmt.Fprintf(out, "   /agent %s [your task description]\n", agentName)
		return nil
	},
}
