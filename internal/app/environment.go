package app

import (
	"maps"
	"os"
	"strings"
)

// An immutable mapping from environment variable names to values.
type Environment struct {
	variables map[string]string
}

// Creates a new [Environment] from a copy of the given variables.
func NewEnvironment(variables map[string]string) *Environment {
	vars := make(map[string]string, len(variables))
	maps.Copy(vars, variables)
	return &Environment{variables: vars}
}

// Creates an [Environment] from the variables of the current process.
func FromOS() *Environment {
	vars := make(map[string]string)
	for _, entry := range os.Environ() {
		if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
			vars[k] = v
		}
	}
	return &Environment{variables: vars}
}

// Returns the value of the named variable, or "" if it is not set.
func (e *Environment) Get(name string) string {
	return e.variables[name]
}

// Returns a deep copy of the variables.
func (e *Environment) Variables() map[string]string {
	vars := make(map[string]string, len(e.variables))
	maps.Copy(vars, e.variables)
	return vars
}

// Returns a copy of the variables with overrides applied on top.
//
// On key collision the override value wins.
func (e *Environment) Merge(overrides map[string]string) map[string]string {
	merged := e.Variables()
	maps.Copy(merged, overrides)
	return merged
}
