// Implements ecosystem detection for application source trees.
//
// A provider inspects characteristic files at the root of an app (manifests,
// lockfiles) and, when it claims the tree, supplies the default package set,
// install, build, and start commands, and ecosystem-mandated environment
// variables. Providers are consulted in registration order and the first
// match wins; see Default for the standard ordering.
package provider
