package render

import (
	"fmt"
	"strings"

	"github.com/planpack/planpack/internal/plan"
)

// Template for the environment descriptor. The package import and the
// space-separated package list are substituted in.
const nixTemplate = `{ }:
let
    pkgs = %s { };
in with pkgs;
buildEnv {
    name = "env";
    paths = [
        %s
    ];
}
`

// Renders the plan as a Nix expression describing its package closure.
//
// When the plan pins a nixpkgs commit the catalog is imported via
// fetchTarball; otherwise the ambient <nixpkgs> channel is used. Packages are
// rendered in plan order. The function is pure: equal plans yield equal
// strings.
func Nix(p *plan.Plan) string {
	exprs := make([]string, 0, len(p.Pkgs))
	for _, pkg := range p.Pkgs {
		exprs = append(exprs, pkg.NixExpression())
	}

	pkgImport := "import <nixpkgs>"
	if p.NixpkgsArchive != "" {
		pkgImport = fmt.Sprintf(
			"import (fetchTarball \"https://github.com/NixOS/nixpkgs/archive/%s.tar.gz\")",
			p.NixpkgsArchive,
		)
	}

	return fmt.Sprintf(nixTemplate, pkgImport, strings.Join(exprs, " "))
}
