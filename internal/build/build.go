package build

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/planpack/planpack/internal/app"
	"github.com/planpack/planpack/internal/paths"
	"github.com/planpack/planpack/internal/plan"
	"github.com/planpack/planpack/internal/planner"
	"github.com/planpack/planpack/internal/provider"
	"github.com/planpack/planpack/internal/render"
	"github.com/planpack/planpack/internal/runtime"
)

// Controls a single build.
type Options struct {
	App       *app.App            // Application source tree.
	Env       *app.Environment    // Ambient environment variables.
	Providers []provider.Provider // Providers consulted during planning, in order.
	Plan      planner.Options     // Overrides applied while deriving the plan.
	PlanPath  string              // Path to a persisted plan; bypasses planning when set.
	OutDir    string              // Destination directory; suppresses the image build when set.
	SavePlan  string              // Path to additionally write the derived plan to.
	Name      string              // Image tag; a fresh UUID when empty.
	Builder   string              // Container builder binary, e.g. "docker".
}

// Returned after a successful build.
type Result struct {
	Dir string // Destination directory holding the artifacts.
	Tag string // Image tag, set when an image was built.
}

// Runs the build pipeline end-to-end.
//
// Acquires a plan (from a persisted document or by planning), mirrors the
// application source into the destination, writes the environment descriptor
// and the container recipe, then either invokes the container builder or, when
// an output directory was configured, stops after writing the artifacts.
//
// Side effects are strictly ordered: source copy, descriptor write, recipe
// write, container build. Partial artifacts are not cleaned up on failure;
// only the scoped temp directory (when no output directory is set) is removed
// on all paths.
func Run(ctx context.Context, opts Options) (*Result, error) {
	section("Building")

	p, err := acquirePlan(opts)
	if err != nil {
		return nil, err
	}

	dir, cleanup, err := destination(opts.OutDir)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	step("Copying app source")
	if err := runtime.CopySource(ctx, opts.App.Source(), dir); err != nil {
		return nil, errors.Wrap(err, "copying app source to build directory")
	}

	step("Writing build artifacts")
	if err := writeArtifacts(p, dir, opts.SavePlan); err != nil {
		return nil, err
	}

	if opts.OutDir != "" {
		hint("Saved output to", dir)
		return &Result{Dir: dir}, nil
	}

	tag := opts.Name
	if tag == "" {
		tag = uuid.NewString()
	}

	step("Building image")
	slog.Info("building image", "builder", opts.Builder, "tag", tag)
	if err := runtime.BuildImage(ctx, opts.Builder, dir, tag); err != nil {
		return nil, errors.Wrap(err, "building image")
	}

	section("Successfully Built!")
	hint("Run", "docker run -it "+tag)

	return &Result{Dir: dir, Tag: tag}, nil
}

// Loads the persisted plan when a path is configured, otherwise derives one.
func acquirePlan(opts Options) (*plan.Plan, error) {
	if opts.PlanPath != "" {
		step("Building from existing plan")
		return plan.ReadFile(opts.PlanPath)
	}

	step("Generated new build plan")
	p, err := planner.New(opts.App, opts.Env, opts.Plan).Plan(opts.Providers)
	if err != nil {
		return nil, errors.Wrap(err, "creating build plan")
	}
	return p, nil
}

// Resolves the destination directory for the build.
//
// A configured output directory is created if needed and survives the build.
// Otherwise a scoped temporary directory is used; the returned cleanup
// removes it on every exit path.
func destination(outDir string) (dir string, cleanup func(), err error) {
	if outDir != "" {
		if err := os.MkdirAll(outDir, paths.DefaultDirMode); err != nil {
			return "", nil, errors.Wrap(err, "creating output directory")
		}
		return outDir, func() {}, nil
	}

	dir, err = os.MkdirTemp("", "planpack-")
	if err != nil {
		return "", nil, errors.Wrap(err, "creating a temp directory")
	}
	return dir, func() { _ = os.RemoveAll(dir) }, nil
}

// Writes the environment descriptor and the container recipe, and optionally
// the plan document, into dir.
func writeArtifacts(p *plan.Plan, dir, savePlan string) error {
	nixPath := filepath.Join(dir, "environment.nix")
	if err := os.WriteFile(nixPath, []byte(render.Nix(p)), paths.DefaultFileMode); err != nil {
		return errors.Wrap(err, "writing Nix environment file")
	}

	dockerfilePath := filepath.Join(dir, "Dockerfile")
	if err := os.WriteFile(dockerfilePath, []byte(render.Dockerfile(p)), paths.DefaultFileMode); err != nil {
		return errors.Wrap(err, "writing Dockerfile")
	}

	if savePlan != "" {
		if err := p.WriteFile(savePlan); err != nil {
			return err
		}
	}

	return nil
}
