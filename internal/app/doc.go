// Package app wires application dependencies for the CLI.
//
// It loads Config from defaults, an optional config file, KEYSIGNER_*
// environment variables and bound flags, then builds the keypair store and
// service and exposes them via the Wire struct for commands to use.
package app
