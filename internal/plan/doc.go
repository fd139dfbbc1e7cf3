// Defines the build plan data model and its persisted JSON form.
//
// A plan holds the package closure, the install, build, and start commands,
// and the environment variables for one application, pinned to a schema
// version. The JSON document produced by Marshal is both the output of plan
// export and the accepted input when building from an existing plan.
package plan
