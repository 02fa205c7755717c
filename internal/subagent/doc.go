// Package subagent holds the fixed registry of Claude Code subagent
// templates and renders them into agent definition files. It powers the
// "ctxkit subagent" command, producing a markdown definition for humans and
// a JSON definition for programmatic use, both under .claude/agents/.
package subagent
