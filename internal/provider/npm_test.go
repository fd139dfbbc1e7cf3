package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/planpack/planpack/internal/app"
)

// Creates an app fixture whose root contains the given files.
func fixtureApp(t *testing.T, files map[string]string) *app.App {
	t.Helper()

	dir := t.TempDir()
	for name, contents := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
	}

	a, err := app.New(dir)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func emptyEnv() *app.Environment {
	return app.NewEnvironment(nil)
}

func TestNpmDetect(t *testing.T) {
	p := &Npm{}
	env := emptyEnv()

	a := fixtureApp(t, map[string]string{"package.json": "{}"})
	if got, _ := p.Detect(a, env); !got {
		t.Error("Detect = false with package.json present, want true")
	}

	a = fixtureApp(t, nil)
	if got, _ := p.Detect(a, env); got {
		t.Error("Detect = true for empty tree, want false")
	}
}

func TestNpmInstallCmd(t *testing.T) {
	p := &Npm{}
	env := emptyEnv()

	a := fixtureApp(t, map[string]string{"package.json": "{}"})
	if got, _ := p.InstallCmd(a, env); got != "npm install" {
		t.Errorf("InstallCmd = %q, want %q", got, "npm install")
	}

	a = fixtureApp(t, map[string]string{
		"package.json":      "{}",
		"package-lock.json": "{}",
	})
	if got, _ := p.InstallCmd(a, env); got != "npm ci" {
		t.Errorf("InstallCmd = %q, want %q", got, "npm ci")
	}
}

func TestNpmSuggestedBuildCmd(t *testing.T) {
	p := &Npm{}
	env := emptyEnv()

	a := fixtureApp(t, map[string]string{
		"package.json": `{"scripts": {"build": "tsc"}}`,
	})
	if got, _ := p.SuggestedBuildCmd(a, env); got != "npm run build" {
		t.Errorf("SuggestedBuildCmd = %q, want %q", got, "npm run build")
	}

	a = fixtureApp(t, map[string]string{"package.json": "{}"})
	if got, _ := p.SuggestedBuildCmd(a, env); got != "" {
		t.Errorf("SuggestedBuildCmd = %q, want absent", got)
	}
}

func TestNpmSuggestedStartCmd(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{
			name: "start script",
			files: map[string]string{
				"package.json": `{"scripts": {"start": "node server.js"}}`,
			},
			want: "npm start",
		},
		{
			name: "main field",
			files: map[string]string{
				"package.json": `{"main": "server.js"}`,
			},
			want: "node server.js",
		},
		{
			name: "index.js fallback",
			files: map[string]string{
				"package.json": "{}",
				"index.js":     "",
			},
			want: "node index.js",
		},
		{
			name:  "nothing to start",
			files: map[string]string{"package.json": "{}"},
			want:  "",
		},
	}

	p := &Npm{}
	env := emptyEnv()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := fixtureApp(t, tt.files)
			got, err := p.SuggestedStartCmd(a, env)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SuggestedStartCmd = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNpmMalformedManifest(t *testing.T) {
	p := &Npm{}
	a := fixtureApp(t, map[string]string{"package.json": "{not json"})

	if _, err := p.SuggestedStartCmd(a, emptyEnv()); err == nil {
		t.Fatal("expected error for malformed package.json, got nil")
	}
}

func TestNpmEnvironmentVariables(t *testing.T) {
	p := &Npm{}
	a := fixtureApp(t, map[string]string{"package.json": "{}"})

	vars, err := p.EnvironmentVariables(a, emptyEnv())
	if err != nil {
		t.Fatal(err)
	}
	if vars["NPM_CONFIG_PRODUCTION"] != "false" {
		t.Errorf("NPM_CONFIG_PRODUCTION = %q, want %q", vars["NPM_CONFIG_PRODUCTION"], "false")
	}
}
