package claudemd

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/ctxkit-labs/ctxkit/internal/emit"
)

// DefaultType is the registry key used when the caller does not pick one.
const DefaultType = "general"

// DefaultOutput is the destination path used when the caller does not pick one.
const DefaultOutput = "./CLAUDE.md"

//go:embed templates/*.md
var templateFS embed.FS

// Template is one named CLAUDE.md template. The body is written to disk
// verbatim; unlike subagent templates it carries no placeholders.
type Template struct {
	Description string
	Body        string
}

// descriptions holds the one-line summary shown by "ctxkit list" for each
// project type. Keys double as the registry key set; every key must have a
// matching templates/<key>.md file or init panics.
var descriptions = map[string]string{
	"general":   "General-purpose project",
	"backend":   "Backend API/service project",
	"frontend":  "Frontend web application",
	"fullstack": "Full-stack application",
	"data":      "Data science/ML project",
	"library":   "Library/package project",
}

var templates map[string]Template

func init() {
	templates = make(map[string]Template, len(descriptions))
	for key, desc := range descriptions {
		body, err := templateFS.ReadFile("templates/" + key + ".md")
		if err != nil {
			panic(fmt.Sprintf("claudemd template %q has no embedded body: %v", key, err))
		}
		templates[key] = Template{Description: desc, Body: string(body)}
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
		return Template{}, fmt.Errorf("unknown project type %q: choose from %s",
			typeKey, strings.Join(Types(), ", "))
	}
	return t, nil
}

// Generate writes the template registered under typeKey to outputPath,
// creating parent directories as needed. The type is validated before any
// filesystem mutation.
func Generate(typeKey, outputPath string) error {
	t, err := Lookup(typeKey)
	if err != nil {
		return err
	}
	return emit.WriteFile(outputPath, []byte(t.Body))
}
