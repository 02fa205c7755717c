// Package cli defines the Cobra command tree for the ctxkit CLI. Each file
// holds one command: the two generators (subagent, claude-md) plus list,
// config, doctor, and version. Type validation happens before any filesystem
// mutation; an unknown type surfaces as an error naming every valid key.
package cli
