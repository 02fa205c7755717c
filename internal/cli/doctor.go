package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/ctxkit-labs/ctxkit/internal/manifest"
	"github.com/ctxkit-labs/ctxkit/internal/subagent"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var doctorDir string

func init() {
	doctorCmd.Flags().StringVar(&doctorDir, "dir", ".",
		"Project directory whose .claude/agents/ should be audited")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Audit generated agent definitions",
	Long: `Run diagnostic checks: verify the built-in registries are internally
consistent and validate any existing .claude/agents/*.json files against the
agent definition schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		checkBuildVersion(out)
		checkRegistries(out)
		return checkAgentsDir(out, doctorDir)
	},
}

// checkBuildVersion reports whether the binary carries a release version.
func checkBuildVersion(out io.Writer) {
	if v, err := semver.NewVersion(buildVersion); err == nil {
		fmt.Fprintf(out, "%s build version %s\n", color.GreenString("ok"), v)
	} else {
		fmt.Fprintf(out, "%s development build (%s)\n", color.YellowString("--"), buildVersion)
	}
}

// checkRegistries exercises every registry entry end to end: lookup, markdown
// render, JSON marshal, schema validation.
func checkRegistries(out io.Writer) {
	for _, key := range subagent.Types() {
		t, err := subagent.Lookup(key)
		if err != nil {
			fmt.Fprintf(out, "%s subagent template %q: %v\n", color.RedString("!!"), key, err)
			continue
		}
		if _, err := subagent.Render(t, "probe"); err != nil {
			fmt.Fprintf(out, "%s subagent template %q: %v\n", color.RedString("!!"), key, err)
			continue
		}
		def, err := subagent.MarshalDefinition(t, "probe")
		if err != nil {
			fmt.Fprintf(out, "%s subagent template %q: %v\n", color.RedString("!!"), key, err)
			continue
		}
		res, err := manifest.Validate(def)
		if err != nil || !res.Valid {
			fmt.Fprintf(out, "%s subagent template %q fails schema validation\n", color.RedString("!!"), key)
			continue
		}
		fmt.Fprintf(out, "%s subagent template %q\n", color.GreenString("ok"), key)
	}
}

// checkAgentsDir validates every agent JSON file under dir/.claude/agents/.
func checkAgentsDir(out io.Writer, dir string) error {
	pattern := filepath.Join(dir, ".claude", "agents", "*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", pattern, err)
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "%s no agent definitions under %s\n", color.YellowString("--"),
			filepath.Join(dir, ".claude", "agents"))
		return nil
	}

	for _, f := range files {
		res, err := manifest.ValidateFile(f)
		if err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", color.RedString("!!"), f, err)
			continue
		}
		if res.Valid {
			fmt.Fprintf(out, "%s %s\n", color.GreenString("ok"), f)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", color.RedString("!!"), f)
		for _, issue := range res.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Fprintf(out, "     %s\n", msg)
		}
	}
	return nil
}
