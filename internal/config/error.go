package config

import (
	"fmt"
	"strings"
)

// ConfigError collects every problem found while loading a config file so
// they can be reported at once.
type ConfigError struct {
	Path    string
	Missing []string // unresolved ${VAR} references
	Errors  []string // validation failures, "field: reason"
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	lines := make([]string, 0, 2+len(e.Errors))
	if e.Path != "" {
		lines = append(lines, fmt.Sprintf("config %s:", e.Path))
	}
	if len(e.Missing) > 0 {
		lines = append(lines, "missing environment variables: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Errors) > 0 {
		lines = append(lines, "validation failed:")
		for _, msg := range e.Errors {
			lines = append(lines, "  - "+msg)
		}
	}
	return strings.Join(lines, "\n")
}

func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
