package cli

import (
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/planpack/planpack/internal/app"
	"github.com/planpack/planpack/internal/plan"
	"github.com/planpack/planpack/internal/planner"
)

// Builds the app handle and ambient environment shared by the subcommands.
//
// The environment is the process environment, with the dotenv file's entries
// winning on collision when one is given.
func appEnvironment(path, envFile string) (*app.App, *app.Environment, error) {
	a, err := app.New(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid app source directory")
	}

	env := app.FromOS()
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil {
			return nil, nil, errors.Wrap(err, "reading env file")
		}
		env = app.NewEnvironment(env.Merge(fileVars))
	}

	return a, env, nil
}

// Assembles planner options from the shared subcommand flags.
func planOptions(buildCmd, startCmd string, pkgs []string, pin bool) planner.Options {
	custom := make([]plan.Pkg, 0, len(pkgs))
	for _, name := range pkgs {
		custom = append(custom, plan.NewPkg(name))
	}

	return planner.Options{
		BuildCmd: buildCmd,
		StartCmd: startCmd,
		Pkgs:     custom,
		Pin:      pin,
	}
}
