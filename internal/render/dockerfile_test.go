package render

import (
	"strings"
	"testing"

	"github.com/planpack/planpack/internal/plan"
)

func TestDockerfileEmptyPlan(t *testing.T) {
	p := &plan.Plan{Version: plan.Version}

	recipe := Dockerfile(p)

	want := `FROM nixos/nix

RUN nix-channel --update

RUN mkdir /app
COPY environment.nix /app
WORKDIR /app

# Load Nix environment
RUN nix-env -if environment.nix

# Load environment variables


COPY . /app

# Install


# Build


# Start

`
	if recipe != want {
		t.Errorf("recipe mismatch:\n got:\n%s\nwant:\n%s", recipe, want)
	}
}

func TestDockerfileCommands(t *testing.T) {
	p := &plan.Plan{
		InstallCmd: "yarn install",
		BuildCmd:   "yarn build",
		StartCmd:   "yarn start",
	}

	recipe := Dockerfile(p)
	for _, line := range []string{"RUN yarn install", "RUN yarn build", "CMD yarn start"} {
		if !strings.Contains(recipe, line) {
			t.Errorf("recipe missing %q:\n%s", line, recipe)
		}
	}
}

func TestDockerfileVariablesSorted(t *testing.T) {
	p := &plan.Plan{
		Variables: map[string]string{
			"ZED":  "z",
			"ALFA": "a",
			"MID":  "m",
		},
	}

	recipe := Dockerfile(p)
	want := "ENV ALFA='a'\nENV MID='m'\nENV ZED='z'"
	if !strings.Contains(recipe, want) {
		t.Errorf("ENV lines not sorted:\n%s", recipe)
	}
}

func TestDockerfileQuotesValuesLiterally(t *testing.T) {
	// Single quotes in values are not escaped; the limitation is part of the
	// recipe contract.
	p := &plan.Plan{Variables: map[string]string{"MOTD": "it's fine"}}

	recipe := Dockerfile(p)
	if !strings.Contains(recipe, "ENV MOTD='it's fine'") {
		t.Errorf("value not emitted verbatim:\n%s", recipe)
	}
}

func TestDockerfileDeterminism(t *testing.T) {
	p := &plan.Plan{
		InstallCmd: "npm ci",
		Variables:  map[string]string{"B": "2", "A": "1", "C": "3"},
	}

	if Dockerfile(p) != Dockerfile(p) {
		t.Error("equal plans produced different recipes")
	}
}
