package provider

import (
	"github.com/planpack/planpack/internal/app"
	"github.com/planpack/planpack/internal/plan"
)

// Detects Node.js applications managed with Yarn.
type Yarn struct{}

func (p *Yarn) Name() string {
	return "yarn"
}

// A yarn.lock marks the tree as Yarn-managed regardless of what other
// manifests are present.
func (p *Yarn) Detect(a *app.App, env *app.Environment) (bool, error) {
	return a.IncludesFile("yarn.lock"), nil
}

func (p *Yarn) Pkgs(a *app.App, env *app.Environment) ([]plan.Pkg, error) {
	return []plan.Pkg{
		plan.NewPkg("nodejs"),
		plan.NewPkg("yarn"),
	}, nil
}

func (p *Yarn) InstallCmd(a *app.App, env *app.Environment) (string, error) {
	return "yarn install", nil
}

func (p *Yarn) SuggestedBuildCmd(a *app.App, env *app.Environment) (string, error) {
	manifest, err := readPackageJSON(a)
	if err != nil {
		return "", err
	}
	if _, ok := manifest.Scripts["build"]; ok {
		return "yarn build", nil
	}
	return "", nil
}

func (p *Yarn) SuggestedStartCmd(a *app.App, env *app.Environment) (string, error) {
	manifest, err := readPackageJSON(a)
	if err != nil {
		return "", err
	}
	if _, ok := manifest.Scripts["start"]; ok {
		return "yarn start", nil
	}
	return nodeStartFallback(a, manifest), nil
}

func (p *Yarn) EnvironmentVariables(a *app.App, env *app.Environment) (map[string]string, error) {
	return nodeVariables(), nil
}
