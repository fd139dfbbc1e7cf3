package render

import (
	"fmt"
	"strings"

	"github.com/planpack/planpack/internal/plan"
)

// Template for the container recipe. The ENV block and the install, build,
// and start lines are substituted in; absent commands leave their line blank.
const dockerfileTemplate = `FROM nixos/nix

RUN nix-channel --update

RUN mkdir /app
COPY environment.nix /app
WORKDIR /app

# Load Nix environment
RUN nix-env -if environment.nix

# Load environment variables
%s

COPY . /app

# Install
%s

# Build
%s

# Start
%s
`

// Renders the plan as a container build recipe.
//
// Variables are emitted as ENV lines in sorted key order for deterministic
// output. Values are single-quoted literally; embedded single quotes are not
// escaped.
func Dockerfile(p *plan.Plan) string {
	envLines := make([]string, 0, len(p.Variables))
	for _, key := range p.SortedVariableKeys() {
		envLines = append(envLines, fmt.Sprintf("ENV %s='%s'", key, p.Variables[key]))
	}

	return fmt.Sprintf(dockerfileTemplate,
		strings.Join(envLines, "\n"),
		prefixed("RUN", p.InstallCmd),
		prefixed("RUN", p.BuildCmd),
		prefixed("CMD", p.StartCmd),
	)
}

// Returns "<verb> <cmd>", or "" when the command is absent.
func prefixed(verb, cmd string) string {
	if cmd == "" {
		return ""
	}
	return verb + " " + cmd
}
