// Parses flags and configures logging for the planpack CLI.
//
// The CLI exposes three subcommands:
//
//	build     Create a container-buildable directory from app source.
//	plan      Print the build plan for app source as JSON.
//	version   Show version information.
//
// Global flags (-q, -v, -d) override build-time defaults set via linker
// flags; flag defaults may also be supplied by an optional JSON config file
// in the XDG config directory. After parsing, the global logger is
// reconfigured to reflect the final level before the subcommand runs.
package cli
