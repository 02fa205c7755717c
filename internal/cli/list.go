package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/ctxkit-labs/ctxkit/internal/claudemd"
	"github.com/ctxkit-labs/ctxkit/internal/subagent"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// agentEntry represents one subagent template for display.
type agentEntry struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Tools       []string `json:"tools"`
	Autonomy    string   `json:"autonomy"`
}

// projectEntry represents one CLAUDE.md template for display.
type projectEntry struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

var titleCaser = cases.Title(language.English)

// displayName turns a registry key into a display label, e.g.
// "deep_analyzer" → "Deep Analyzer".
func displayName(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Long:  `List the built-in subagent and CLAUDE.md template types.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var agents []agentEntry
		for _, key := range subagent.Types() {
			t, err := subagent.Lookup(key)
			if err != nil {
				return err
			}
			agents = append(agents, agentEntry{
				Type:        key,
				Description: t.Description,
				Tools:       t.Tools,
				Autonomy:    t.Autonomy,
			})
		}

		var projects []projectEntry
		for _, key := range claudemd.Types() {
			t, err := claudemd.Lookup(key)
			if err != nil {
				return err
			}
			projects = append(projects, projectEntry{
				Type:        key,
				Description: t.Description,
			})
		}

		out := cmd.OutOrStdout()

		if listJSON {
			payload := map[string]interface{}{
				"subagent_types": agents,
				"project_types":  projects,
			}
			data, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling template list: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SUBAGENT TYPE\tNAME\tAUTONOMY\tDESCRIPTION")
		for _, a := range agents {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Type, displayName(a.Type), a.Autonomy, a.Description)
		}
		fmt.Fprintln(w, "\t\t\t")
		fmt.Fprintln(w, "PROJECT TYPE\tNAME\t\tDESCRIPTION")
		for _, p := range projects {
			fmt.Fprintf(w, "%s\t%s\t\t%s\n", p.Type, displayName(p.Type), p.Description)
		}
		return w.Flush()
	},
}
