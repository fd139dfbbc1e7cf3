// Provides read-only views over application source trees and ambient
// environment variables.
//
// An App is a canonicalized handle to a source directory, offering existence
// checks and textual reads for files at its root. An Environment is an
// immutable variable mapping with snapshot and override-wins merge helpers.
// Both are shared, never mutated, by the planner and the build orchestrator.
package app
