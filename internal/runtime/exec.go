package runtime

import (
	"context"
	"log/slog"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// Mirrors the contents of the source directory into dest.
//
// Attributes are preserved. The trailing "/." makes cp copy the directory's
// contents rather than the directory itself.
func CopySource(ctx context.Context, source, dest string) error {
	return run(ctx, "cp", "-a", source+"/.", dest)
}

// Builds a container image from dir, tagged with tag.
//
// The builder binary is expected to accept the Docker CLI's build surface.
func BuildImage(ctx context.Context, builder, dir, tag string) error {
	return run(ctx, builder, "build", dir, "-t", tag)
}

// Runs a host binary to completion, streaming its output.
//
// The subprocess inherits stdout and stderr. Returns [ErrSpawn] if the binary
// cannot be started and [ErrCommandFailed] if it exits non-zero.
func run(ctx context.Context, name string, args ...string) error {
	slog.Debug("exec", "name", name, "args", args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return errors.Wrapf(ErrCommandFailed, "%s exited with code %d", name, exitErr.ExitCode())
	}
	return errors.Wrapf(ErrSpawn, "%s: %v", name, err)
}
