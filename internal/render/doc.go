// Renders build plans into the two on-disk artifacts.
//
// Nix produces the environment descriptor declaring the plan's package
// closure; Dockerfile produces the container recipe that realizes the
// descriptor, loads the plan's variables, and runs its install, build, and
// start commands. Both renderers are pure functions of the plan.
package render
