// Package manifest validates generated agent definition JSON files against
// the embedded agent schema. The subagent generator runs it as a post-write
// sanity check, and "ctxkit doctor" uses it to audit existing .claude/agents/
// directories.
package manifest
