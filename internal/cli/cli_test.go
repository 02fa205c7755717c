package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ctxkit-labs/ctxkit/internal/claudemd"
	"github.com/ctxkit-labs/ctxkit/internal/subagent"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestSubagentCreatesDefinition(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	out := t.TempDir()

	stdout, err := execute(t, "subagent", "doc-searcher", "--output", out)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}

	if !strings.Contains(stdout, "Created subagent: doc-searcher") {
		t.Errorf("status output missing confirmation: %q", stdout)
	}

	md := readFile(t, filepath.Join(out, ".claude", "agents", "doc-searcher.md"))
	if !strings.Contains(md, "Research and documentation lookup agent with deep analysis") {
		t.Error("markdown definition missing researcher description")
	}

	j := readFile(t, filepath.Join(out, ".claude", "agents", "doc-searcher.json"))
	if !strings.Contains(j, `"autonomy": "medium"`) {
		t.Error("JSON definition missing medium autonomy")
	}
}

func TestSubagentUnknownTypeFailsFast(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	out := t.TempDir()

	_, err := execute(t, "subagent", "ghost", "--type", "nonexistent", "--output", out)
	if err == nil {
		t.Fatal("unknown type should fail")
	}
	for _, key := range subagent.Types() {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention valid type %q", err, key)
		}
	}

	if _, statErr := os.Stat(filepath.Join(out, ".claude")); !os.IsNotExist(statErr) {
		t.Error("files were written despite invalid type")
	}
}

func TestSubagentUsesConfiguredDefaultType(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "defaults:\n  subagent-type: tester\n")
	out := t.TempDir()

	if _, err := execute(t, "subagent", "runner", "--output", out); err != nil {
		t.Fatalf("execute error: %v", err)
	}

	md := readFile(t, filepath.Join(out, ".claude", "agents", "runner.md"))
	if !strings.Contains(md, "Testing and validation agent with analysis") {
		t.Error("configured default type was not applied")
	}
}

func TestSubagentExplicitTypeBeatsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "defaults:\n  subagent-type: tester\n")
	out := t.TempDir()

	if _, err := execute(t, "subagent", "b", "--type", "builder", "--output", out); err != nil {
		t.Fatalf("execute error: %v", err)
	}

	md := readFile(t, filepath.Join(out, ".claude", "agents", "b.md"))
	if !strings.Contains(md, "Build and deployment agent") {
		t.Error("explicit --type was overridden by config")
	}
}

func TestClaudeMDWritesDefaultTemplate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "CLAUDE.md")

	stdout, err := execute(t, "claude-md", "--output", path)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(stdout, "Generated CLAUDE.md at "+path) {
		t.Errorf("status output missing confirmation: %q", stdout)
	}

	content := readFile(t, path)
	if !strings.HasPrefix(content, "# Claude Code Configuration") {
		t.Error("output does not start with the template heading")
	}
}

func TestClaudeMDUnknownTypeFailsFast(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "CLAUDE.md")

	_, err := execute(t, "claude-md", "--type", "nonexistent", "--output", path)
	if err == nil {
		t.Fatal("unknown type should fail")
	}
	for _, key := range claudemd.Types() {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention valid type %q", err, key)
		}
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("file was written despite invalid type")
	}
}

func TestListShowsAllTypes(t *testing.T) {
	stdout, err := execute(t, "list")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	for _, key := range subagent.Types() {
		if !strings.Contains(stdout, key) {
			t.Errorf("list output missing subagent type %q", key)
		}
	}
	for _, key := range claudemd.Types() {
		if !strings.Contains(stdout, key) {
			t.Errorf("list output missing project type %q", key)
		}
	}
}

func TestDoctorValidatesGeneratedAgents(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	out := t.TempDir()

	if _, err := execute(t, "subagent", "probe", "--output", out); err != nil {
		t.Fatalf("execute error: %v", err)
	}

	stdout, err := execute(t, "doctor", "--dir", out)
	if err != nil {
		t.Fatalf("doctor error: %v", err)
	}
	if !strings.Contains(stdout, "probe.json") {
		t.Errorf("doctor did not report the generated agent: %q", stdout)
	}
	if strings.Contains(stdout, "!!") {
		t.Errorf("doctor flagged a freshly generated agent: %q", stdout)
	}
}

// ─── Helpers ───────────────────────────────────────────────────────

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores default flag values between executions; cobra keeps
// flag state on the shared command tree.
func resetFlags(t *testing.T) {
	t.Helper()
	for _, cmd := range []*cobra.Command{subagentCmd, claudeMDCmd, listCmd, doctorCmd, versionCmd} {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := f.Value.Set(f.DefValue); err != nil {
				t.Fatalf("resetting flag %s: %v", f.Name, err)
			}
			f.Changed = false
		})
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".ctxkit")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}
