package planner

import (
	"strings"

	"github.com/planpack/planpack/internal/app"
)

// Prefix marking the web process on the first Procfile line.
const webPrefix = "web: "

// Extracts the web start command from the app's Procfile.
//
// Only the first line is considered, and only when it begins with the literal
// "web: " prefix; the remainder of that line is returned with surrounding
// whitespace trimmed. Other process types are ignored. Returns "" when the
// file is absent or carries no web directive.
func parseProcfile(a *app.App) (string, error) {
	if !a.IncludesFile("Procfile") {
		return "", nil
	}

	contents, err := a.ReadFile("Procfile")
	if err != nil {
		return "", err
	}

	line, _, _ := strings.Cut(contents, "\n")
	rest, ok := strings.CutPrefix(line, webPrefix)
	if !ok {
		return "", nil
	}

	return strings.TrimSpace(rest), nil
}
