// Package main is the entry point for the workspaces CLI application.
package main

import "github.com/ajxudir/workspaces/cmd"

func main() {
	cmd.Execute()
}
