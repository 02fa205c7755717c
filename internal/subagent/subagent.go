package subagent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/ctxkit-labs/ctxkit/internal/emit"
	"github.com/ctxkit-labs/ctxkit/internal/manifest"
)

// DefaultType is the registry key used when the caller does not pick one.
const DefaultType = "researcher"

// markdownLayout is the Claude Code agent definition layout. The JSON
// counterpart is produced from the Template struct directly.
const markdownLayout = `# {{.Name}}

{{.Description}}

## Instructions

{{.Instructions}}

## Allowed Tools

{{range .Tools}}- {{.}}
{{end}}
## Autonomy Level

{{.AutonomyDescription}}
`

var markdownTmpl = template.Must(template.New("agent").Parse(markdownLayout))

func init() {
	// The registry is a process-wide constant; a malformed entry is a
	// programming error, caught here rather than at render time.
	for key, t := range templates {
		if t.Description == "" {
			panic(fmt.Sprintf("subagent template %q has no description", key))
		}
		if len(t.Tools) == 0 {
			panic(fmt.Sprintf("subagent template %q has no tools", key))
		}
		if _, ok := autonomyDescriptions[t.Autonomy]; !ok {
			panic(fmt.Sprintf("subagent template %q has unknown autonomy level %q", key, t.Autonomy))
		}
	}
}

// Types returns all registry keys in sorted order.
func Types() []string {
	keys := make([]string, 0, len(templates))
	for k := range templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the template registered under typeKey. The error for an
// unknown key names every valid alternative.
func Lookup(typeKey string) (Template, error) {
	t, ok := templates[typeKey]
	if !ok {
		return Template{}, fmt.Errorf("unknown agent type %q: choose from %s",
			typeKey, strings.Join(Types(), ", "))
	}
	return t, nil
}

// AutonomyDescription resolves an autonomy level to its human-readable
// description. Registry init guarantees every template's level resolves.
func AutonomyDescription(level string) (string, error) {
	d, ok := autonomyDescriptions[level]
	if !ok {
		return "", fmt.Errorf("unknown autonomy level %q", level)
	}
	return d, nil
}

// Render produces the markdown agent definition for t with the caller's
// agent name substituted. Pure function of its inputs.
func Render(t Template, agentName string) (string, error) {
	autonomy, err := AutonomyDescription(t.Autonomy)
	if err != nil {
		return "", err
	}

	data := struct {
		Name                string
		Description         string
		Instructions        string
		Tools               []string
		AutonomyDescription string
	}{
		Name:                agentName,
		Description:         t.Description,
		Instructions:        t.Instructions,
		Tools:               t.Tools,
		AutonomyDescription: autonomy,
	}

	var buf bytes.Buffer
	if err := markdownTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering agent definition: %w", err)
	}
	return buf.String(), nil
}

// MarshalDefinition serializes t as the JSON agent definition with the name
// overridden to agentName. Field order follows the Template struct.
func MarshalDefinition(t Template, agentName string) ([]byte, error) {
	t.Name = agentName
	out, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling agent definition: %w", err)
	}
	return out, nil
}

// Result holds the outcome of a subagent generation.
type Result struct {
	AgentsDir    string
	MarkdownPath string
	JSONPath     string
	Warnings     []string
}

// Generate renders the template registered under typeKey for agentName and
// writes the markdown and JSON definitions under outputDir/.claude/agents/.
// The type is validated before any filesystem mutation.
func Generate(agentName, typeKey, outputDir string) (*Result, error) {
	t, err := Lookup(typeKey)
	if err != nil {
		return nil, err
	}

	md, err := Render(t, agentName)
	if err != nil {
		return nil, err
	}
	def, err := MarshalDefinition(t, agentName)
	if err != nil {
		return nil, err
	}

	agentsDir := filepath.Join(outputDir, ".claude", "agents")
	result := &Result{
		AgentsDir:    agentsDir,
		MarkdownPath: filepath.Join(agentsDir, agentName+".md"),
		JSONPath:     filepath.Join(agentsDir, agentName+".json"),
	}

	if err := emit.WriteFile(result.MarkdownPath, []byte(md)); err != nil {
		return nil, err
	}
	if err := emit.WriteFile(result.JSONPath, def); err != nil {
		return nil, err
	}

	// Sanity-check the emitted JSON against the agent definition schema.
	valResult, valErr := manifest.ValidateFile(result.JSONPath)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate agent definition: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, msg)
		}
	}

	return result, nil
}
