package provider

import (
	"github.com/planpack/planpack/internal/app"
	"github.com/planpack/planpack/internal/plan"
)

// Detects Node.js applications managed with npm.
type Npm struct{}

func (p *Npm) Name() string {
	return "npm"
}

// An npm tree is any tree with a package.json at its root. Register this
// provider after more specific Node.js providers.
func (p *Npm) Detect(a *app.App, env *app.Environment) (bool, error) {
	return a.IncludesFile("package.json"), nil
}

func (p *Npm) Pkgs(a *app.App, env *app.Environment) ([]plan.Pkg, error) {
	return []plan.Pkg{plan.NewPkg("nodejs")}, nil
}

// Prefers the reproducible "npm ci" when a lockfile is committed.
func (p *Npm) InstallCmd(a *app.App, env *app.Environment) (string, error) {
	if a.IncludesFile("package-lock.json") {
		return "npm ci", nil
	}
	return "npm install", nil
}

func (p *Npm) SuggestedBuildCmd(a *app.App, env *app.Environment) (string, error) {
	manifest, err := readPackageJSON(a)
	if err != nil {
		return "", err
	}
	if _, ok := manifest.Scripts["build"]; ok {
		return "npm run build", nil
	}
	return "", nil
}

func (p *Npm) SuggestedStartCmd(a *app.App, env *app.Environment) (string, error) {
	manifest, err := readPackageJSON(a)
	if err != nil {
		return "", err
	}
	if _, ok := manifest.Scripts["start"]; ok {
		return "npm start", nil
	}
	return nodeStartFallback(a, manifest), nil
}

func (p *Npm) EnvironmentVariables(a *app.App, env *app.Environment) (map[string]string, error) {
	return nodeVariables(), nil
}
