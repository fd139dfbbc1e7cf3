package cli

import (
	"context"

	"github.com/planpack/planpack/internal/build"
	"github.com/planpack/planpack/internal/provider"
)

// Represents the 'planpack build' command.
type BuildCmd struct {
	Path     string   `arg:"" help:"App source directory." type:"existingdir"`
	BuildCmd string   `short:"b" name:"build-cmd" help:"Specify the build command to use." placeholder:"CMD"`
	StartCmd string   `short:"s" name:"start-cmd" help:"Specify the start command to use." placeholder:"CMD"`
	Pkgs     []string `help:"Additional Nix packages to include in the environment." placeholder:"PKG,..."`
	Pin      bool     `help:"Pin the nixpkgs catalog to a known commit."`
	Out      string   `short:"o" help:"Save the build directory here instead of building an image." placeholder:"DIR"`
	Plan     string   `help:"Build from an existing plan instead of planning." placeholder:"PATH" type:"existingfile"`
	SavePlan string   `name:"save-plan" help:"Also write the build plan to this path." placeholder:"PATH"`
	Name     string   `short:"n" help:"Tag for the built image; a fresh UUID when omitted."`
	Builder  string   `help:"Container builder binary." default:"docker"`
	EnvFile  string   `name:"env-file" help:"Load additional environment variables from a dotenv file." placeholder:"PATH" type:"existingfile"`
}

// Executes the build command.
//
// Derives (or loads) a build plan for the app source, writes the environment
// descriptor and container recipe next to a mirror of the source, and builds
// an image unless an output directory was requested.
func (c *BuildCmd) Run(ctx context.Context) error {
	a, env, err := appEnvironment(c.Path, c.EnvFile)
	if err != nil {
		return err
	}

	_, err = build.Run(ctx, build.Options{
		App:       a,
		Env:       env,
		Providers: provider.Default(),
		Plan:      planOptions(c.BuildCmd, c.StartCmd, c.Pkgs, c.Pin),
		PlanPath:  c.Plan,
		OutDir:    c.Out,
		SavePlan:  c.SavePlan,
		Name:      c.Name,
		Builder:   c.Builder,
	})
	return err
}
