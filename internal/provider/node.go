package provider

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/planpack/planpack/internal/app"
)

// Variables shared by the Node.js package managers. Installs must include
// devDependencies, since the build step typically needs them.
func nodeVariables() map[string]string {
	return map[string]string{
		"NPM_CONFIG_PRODUCTION": "false",
	}
}

// The subset of package.json the Node.js providers care about.
type packageJSON struct {
	Name    string            `json:"name"`
	Main    string            `json:"main"`
	Scripts map[string]string `json:"scripts"`
}

// Reads and parses package.json from the app root.
//
// A missing file yields an empty manifest; a malformed one is an error.
func readPackageJSON(a *app.App) (*packageJSON, error) {
	if !a.IncludesFile("package.json") {
		return &packageJSON{}, nil
	}

	contents, err := a.ReadFile("package.json")
	if err != nil {
		return nil, err
	}

	var manifest packageJSON
	if err := json.Unmarshal([]byte(contents), &manifest); err != nil {
		return nil, errors.Wrap(err, "parsing package.json")
	}
	return &manifest, nil
}

// Returns a "node <entry>" start command from the manifest's main field, the
// conventional index.js, or "" when neither exists.
func nodeStartFallback(a *app.App, manifest *packageJSON) string {
	if manifest.Main != "" {
		return "node " + manifest.Main
	}
	if a.IncludesFile("index.js") {
		return "node index.js"
	}
	return ""
}
