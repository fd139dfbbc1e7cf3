package app

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// A read-only handle to an application source directory.
//
// The source path is canonicalized at construction time and is guaranteed to
// refer to an existing directory. An App never writes to the tree it wraps.
type App struct {
	source string
}

// Creates a new [App] bound to the given directory.
//
// The path is made absolute and symlinks are resolved. Returns an error if
// the path does not exist or does not refer to a directory.
func New(path string) (*App, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolving app source directory")
	}

	source, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, errors.Wrap(err, "resolving app source directory")
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, errors.Wrap(err, "reading app source directory")
	}
	if !info.IsDir() {
		return nil, errors.Errorf("app source %s is not a directory", source)
	}

	return &App{source: source}, nil
}

// Returns the canonicalized absolute path of the source directory.
func (a *App) Source() string {
	return a.source
}

// Returns true if the named file exists at the root of the source tree.
func (a *App) IncludesFile(name string) bool {
	_, err := os.Stat(filepath.Join(a.source, name))
	return err == nil
}

// Reads the named file from the root of the source tree as a UTF-8 string.
func (a *App) ReadFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(a.source, name))
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", name)
	}
	return string(data), nil
}
