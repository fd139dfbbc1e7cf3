package cli

import (
	"context"
	"fmt"

	"github.com/planpack/planpack/internal/planner"
	"github.com/planpack/planpack/internal/provider"
)

// Represents the 'planpack plan' command.
type PlanCmd struct {
	Path     string   `arg:"" help:"App source directory." type:"existingdir"`
	BuildCmd string   `short:"b" name:"build-cmd" help:"Specify the build command to use." placeholder:"CMD"`
	StartCmd string   `short:"s" name:"start-cmd" help:"Specify the start command to use." placeholder:"CMD"`
	Pkgs     []string `help:"Additional Nix packages to include in the environment." placeholder:"PKG,..."`
	Pin      bool     `help:"Pin the nixpkgs catalog to a known commit."`
	EnvFile  string   `name:"env-file" help:"Load additional environment variables from a dotenv file." placeholder:"PATH" type:"existingfile"`
}

// Executes the plan command.
//
// Derives a build plan for the app source and prints it to stdout as the
// persisted JSON document, suitable for later use with 'build --plan'.
func (c *PlanCmd) Run(ctx context.Context) error {
	a, env, err := appEnvironment(c.Path, c.EnvFile)
	if err != nil {
		return err
	}

	opts := planOptions(c.BuildCmd, c.StartCmd, c.Pkgs, c.Pin)
	p, err := planner.New(a, env, opts).Plan(provider.Default())
	if err != nil {
		return err
	}

	doc, err := p.Marshal()
	if err != nil {
		return err
	}

	fmt.Println(string(doc))
	return nil
}
