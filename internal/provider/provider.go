package provider

import (
	"github.com/planpack/planpack/internal/app"
	"github.com/planpack/planpack/internal/plan"
)

// An ecosystem detector supplying build defaults for a matched source tree.
//
// All operations are pure functions of the app and environment; providers
// never inspect ambient state beyond the two arguments. Optional command
// results use "" to mean absent.
type Provider interface {

	// Returns the provider's stable identifier.
	Name() string

	// Returns true if this provider claims the source tree.
	Detect(a *app.App, env *app.Environment) (bool, error)

	// Returns the packages the application needs, in order.
	Pkgs(a *app.App, env *app.Environment) ([]plan.Pkg, error)

	// Returns the command that installs dependencies, or "".
	InstallCmd(a *app.App, env *app.Environment) (string, error)

	// Returns the suggested build command, or "".
	SuggestedBuildCmd(a *app.App, env *app.Environment) (string, error)

	// Returns the suggested start command, or "".
	SuggestedStartCmd(a *app.App, env *app.Environment) (string, error)

	// Returns ecosystem-mandated environment variables.
	EnvironmentVariables(a *app.App, env *app.Environment) (map[string]string, error)
}

// Returns the default providers in detection order.
//
// Order matters: the yarn provider must run before the npm provider, since a
// tree with a yarn.lock also has a package.json.
func Default() []Provider {
	return []Provider{
		&Yarn{},
		&Npm{},
	}
}
