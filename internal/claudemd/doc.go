// Package claudemd holds the fixed registry of CLAUDE.md project templates
// and writes the selected one to disk. It powers the "ctxkit claude-md"
// command. Template bodies are embedded markdown files, copied verbatim.
package claudemd
