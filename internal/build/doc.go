// Orchestrates the build pipeline from plan acquisition to image build.
//
// A build acquires a plan (loading a persisted document or running the
// planner), mirrors the application source into a destination directory,
// renders the environment descriptor and container recipe beside it, and
// optionally invokes the external container builder on the result. When an
// output directory is configured the image build is skipped and the artifacts
// are left for inspection.
//
// Example usage:
//
//	result, err := build.Run(ctx, build.Options{
//	    App:       a,
//	    Env:       env,
//	    Providers: provider.Default(),
//	    Builder:   "docker",
//	})
//	if err != nil {
//	    return err
//	}
package build
