package plan

import (
	"encoding/json"
	"os"
	"slices"

	"github.com/pkg/errors"
	"github.com/planpack/planpack/internal/paths"
)

// Version of the build plan schema.
const Version = "0.0.1"

// A normalized, serializable description of how to install, build, and start
// an application, plus its package closure and environment variables.
//
// A Plan is created by the planner (or loaded from a persisted document) and
// is read-only thereafter. Package order is significant and preserved by the
// renderers; variable iteration order is not, so renderers sort keys.
type Plan struct {
	Version        string            `json:"version"`
	NixpkgsArchive string            `json:"nixpkgs_archive,omitempty"`
	Pkgs           []Pkg             `json:"pkgs"`
	InstallCmd     string            `json:"install_cmd,omitempty"`
	StartCmd       string            `json:"start_cmd,omitempty"`
	BuildCmd       string            `json:"build_cmd,omitempty"`
	Variables      map[string]string `json:"variables"`
}

// Serializes the plan as an indented JSON document.
//
// Absent optional fields are omitted rather than emitted as null.
func (p *Plan) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "serializing build plan")
	}
	return data, nil
}

// Writes the plan as a JSON document to the given path.
//
// The file is created if absent and truncated if present.
func (p *Plan) WriteFile(path string) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, paths.DefaultFileMode); err != nil {
		return errors.Wrap(err, "writing build plan")
	}
	return nil
}

// Reads and deserializes a persisted plan from the given path.
func ReadFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading build plan")
	}

	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "deserializing build plan")
	}
	return &p, nil
}

// Returns the plan's variable names in sorted order.
func (p *Plan) SortedVariableKeys() []string {
	keys := make([]string, 0, len(p.Variables))
	for k := range p.Variables {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
