// Package main is the entry point for the layoutfix CLI.
package main

import "layoutfix.dev/pkg/layoutfix/cmd"

func main() {
	cmd.Execute()
}
