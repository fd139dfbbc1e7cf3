package planner

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/planpack/planpack/internal/app"
	"github.com/planpack/planpack/internal/plan"
	"github.com/planpack/planpack/internal/provider"
)

// Commit of the nixpkgs catalog recorded when package pinning is requested.
// See https://status.nixos.org/
const NixpkgsArchive = "30d3d79b7d3607d56546dd2a6b49e156ba0ec634"

// User-supplied overrides applied while deriving a plan.
type Options struct {
	BuildCmd string     // Overrides the provider's suggested build command.
	StartCmd string     // Takes precedence over Procfile and provider.
	Pkgs     []plan.Pkg // Prepended to any provider-supplied packages.
	Pin      bool       // Records the pinned nixpkgs commit in the plan.
}

// Derives build plans for a single application.
//
// The planner holds shared, read-only views over the app, the environment,
// and the options; it never mutates them.
type Planner struct {
	app  *app.App
	env  *app.Environment
	opts Options
}

// Creates a new [Planner] for the given app and environment.
func New(a *app.App, env *app.Environment, opts Options) *Planner {
	return &Planner{app: a, env: env, opts: opts}
}

// Derives a build plan from the first matching provider and the options.
//
// Providers are consulted in the given order and the first whose Detect
// returns true supplies the defaults; no match is not an error, the plan is
// then driven by the options alone.
func (p *Planner) Plan(providers []provider.Provider) (*plan.Plan, error) {
	prov, err := p.detect(providers)
	if err != nil {
		return nil, errors.Wrap(err, "detecting provider")
	}

	pkgs, err := p.pkgs(prov)
	if err != nil {
		return nil, errors.Wrap(err, "getting packages")
	}

	installCmd, err := p.installCmd(prov)
	if err != nil {
		return nil, errors.Wrap(err, "generating install command")
	}

	buildCmd, err := p.buildCmd(prov)
	if err != nil {
		return nil, errors.Wrap(err, "generating build command")
	}

	startCmd, err := p.startCmd(prov)
	if err != nil {
		return nil, errors.Wrap(err, "generating start command")
	}

	variables, err := p.variables(prov)
	if err != nil {
		return nil, errors.Wrap(err, "getting plan variables")
	}

	archive := ""
	if p.opts.Pin {
		archive = NixpkgsArchive
	}

	return &plan.Plan{
		Version:        plan.Version,
		NixpkgsArchive: archive,
		Pkgs:           pkgs,
		InstallCmd:     installCmd,
		BuildCmd:       buildCmd,
		StartCmd:       startCmd,
		Variables:      variables,
	}, nil
}

// Returns the first provider claiming the app, or nil when none does.
func (p *Planner) detect(providers []provider.Provider) (provider.Provider, error) {
	for _, prov := range providers {
		matches, err := prov.Detect(p.app, p.env)
		if err != nil {
			return nil, err
		}
		if matches {
			slog.Debug("provider detected", "provider", prov.Name())
			return prov, nil
		}
	}
	return nil, nil
}

// Custom packages come first, then the provider's, order preserved.
func (p *Planner) pkgs(prov provider.Provider) ([]plan.Pkg, error) {
	pkgs := append([]plan.Pkg{}, p.opts.Pkgs...)

	if prov == nil {
		return pkgs, nil
	}

	providerPkgs, err := prov.Pkgs(p.app, p.env)
	if err != nil {
		return nil, err
	}
	return append(pkgs, providerPkgs...), nil
}

func (p *Planner) installCmd(prov provider.Provider) (string, error) {
	if prov == nil {
		return "", nil
	}
	return prov.InstallCmd(p.app, p.env)
}

func (p *Planner) buildCmd(prov provider.Provider) (string, error) {
	if p.opts.BuildCmd != "" {
		return p.opts.BuildCmd, nil
	}
	if prov == nil {
		return "", nil
	}
	return prov.SuggestedBuildCmd(p.app, p.env)
}

// Start command precedence: explicit option, then Procfile, then provider.
func (p *Planner) startCmd(prov provider.Provider) (string, error) {
	if p.opts.StartCmd != "" {
		return p.opts.StartCmd, nil
	}

	procfileCmd, err := parseProcfile(p.app)
	if err != nil {
		return "", err
	}
	if procfileCmd != "" {
		return procfileCmd, nil
	}

	if prov == nil {
		return "", nil
	}
	return prov.SuggestedStartCmd(p.app, p.env)
}

// Merges provider variables over the environment snapshot.
//
// The provider's value wins on collision: providers encode ecosystem-mandated
// settings that an ambient variable of the same name must not override.
func (p *Planner) variables(prov provider.Provider) (map[string]string, error) {
	if prov == nil {
		return p.env.Variables(), nil
	}

	providerVars, err := prov.EnvironmentVariables(p.app, p.env)
	if err != nil {
		return nil, err
	}
	return p.env.Merge(providerVars), nil
}
