package render

import (
	"strings"
	"testing"

	"github.com/planpack/planpack/internal/plan"
)

func TestNixUnpinned(t *testing.T) {
	p := &plan.Plan{Pkgs: []plan.Pkg{plan.NewPkg("nodejs")}}

	expr := Nix(p)
	if !strings.Contains(expr, "import <nixpkgs> { }") {
		t.Errorf("expression missing ambient catalog import:\n%s", expr)
	}
	if strings.Contains(expr, "fetchTarball") {
		t.Errorf("unpinned expression contains fetchTarball:\n%s", expr)
	}
}

func TestNixPinned(t *testing.T) {
	p := &plan.Plan{
		NixpkgsArchive: "30d3d79b7d3607d56546dd2a6b49e156ba0ec634",
		Pkgs:           []plan.Pkg{plan.NewPkg("nodejs")},
	}

	expr := Nix(p)
	want := `import (fetchTarball "https://github.com/NixOS/nixpkgs/archive/30d3d79b7d3607d56546dd2a6b49e156ba0ec634.tar.gz")`
	if !strings.Contains(expr, want) {
		t.Errorf("expression missing pinned import:\n%s", expr)
	}
}

func TestNixPackageOrder(t *testing.T) {
	p := &plan.Plan{
		Pkgs: []plan.Pkg{
			plan.NewPkg("nodejs"),
			plan.NewPkgWithOverride("yarn", "nodejs = nodejs-16_x"),
		},
	}

	expr := Nix(p)
	if !strings.Contains(expr, "nodejs (yarn.override { nodejs = nodejs-16_x })") {
		t.Errorf("packages not rendered in plan order:\n%s", expr)
	}
}

func TestNixDeterminism(t *testing.T) {
	p := &plan.Plan{
		Pkgs:      []plan.Pkg{plan.NewPkg("nodejs"), plan.NewPkg("yarn")},
		Variables: map[string]string{"A": "1", "B": "2"},
	}

	if Nix(p) != Nix(p) {
		t.Error("equal plans produced different expressions")
	}
}

func TestNixShape(t *testing.T) {
	p := &plan.Plan{Pkgs: []plan.Pkg{plan.NewPkg("nodejs")}}

	expr := Nix(p)
	for _, fragment := range []string{"{ }:", "in with pkgs;", "buildEnv {", `name = "env";`, "paths = ["} {
		if !strings.Contains(expr, fragment) {
			t.Errorf("expression missing %q:\n%s", fragment, expr)
		}
	}
}
