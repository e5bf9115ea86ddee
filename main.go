// Package main is the entry point for the depcheck CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The depcheck tool walks a manifest of
// third-party dependencies, verifies installed versions against the
// manifest's constraints, and suggests platform-specific install commands.
package main

import "github.com/ajxudir/depcheck/cmd"

// main initializes and runs the depcheck CLI application.
//
// It delegates all command parsing and execution to the cmd package,
// which handles subcommands like check, requires, and install.
func main() {
	cmd.Execute()
}
