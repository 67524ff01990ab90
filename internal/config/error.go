package config

import (
	"fmt"
	"strings"
)

// Error reports why a config file cannot be used. Missing holds unresolved
// ${VAR} references, Errors the fields that failed validation.
type Error struct {
	Path    string
	Missing []string
	Errors  []string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("config")
	if e.Path != "" {
		b.WriteString(" " + e.Path)
	}
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, ": unset environment: %s", strings.Join(e.Missing, "; "))
	}
	if len(e.Errors) > 0 {
		fmt.Fprintf(&b, ": invalid: %s", strings.Join(e.Errors, "; "))
	}
	return b.String()
}
