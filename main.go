// Package main is the entry point for the weave CLI.
package main

import "weave.dev/pkg/weave/cmd"

func main() {
	cmd.Execute()
}
