// Derives normalized build plans from application source trees.
//
// The planner runs provider detection in registration order, then combines
// user overrides, the Procfile web directive, and the active provider's
// suggestions into a plan. Precedence for the start command is option, then
// Procfile, then provider; the build command is option then provider; plan
// variables are the ambient environment with provider values winning on
// collision.
package planner
