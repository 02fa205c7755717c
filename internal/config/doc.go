// Package config manages user-level settings stored at ~/.ctxkit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default subagent and project template types.
package config
