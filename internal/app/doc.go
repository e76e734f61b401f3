// Package app wires application dependencies for the CLI.
//
// It loads Config (defaults, then an optional YAML file, then environment
// overrides), builds the zap logger, and constructs the input source and
// catalog service, exposing them via the Wire struct for commands to use.
package app
