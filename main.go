package main

import "github.com/xll-gen/rectviz/cmd"

// main is the entry point of the rectviz CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
