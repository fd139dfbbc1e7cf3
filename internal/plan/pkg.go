package plan

import "fmt"

// A reference to a single package in the Nix package catalog.
//
// Pkgs are value objects; two Pkgs are equal iff their fields are equal.
type Pkg struct {
	Name     string `json:"name"`
	Override string `json:"override,omitempty"`
}

// Creates a [Pkg] referencing the named catalog attribute.
func NewPkg(name string) Pkg {
	return Pkg{Name: name}
}

// Creates a [Pkg] with a catalog-specific override expression.
//
// The override is emitted verbatim inside the braces of a Nix override call.
func NewPkgWithOverride(name, override string) Pkg {
	return Pkg{Name: name, Override: override}
}

// Renders the package as a Nix expression.
//
// A bare name renders as "name"; a name with an override renders as
// "(name.override { ... })".
func (p Pkg) NixExpression() string {
	if p.Override == "" {
		return p.Name
	}
	return fmt.Sprintf("(%s.override { %s })", p.Name, p.Override)
}
