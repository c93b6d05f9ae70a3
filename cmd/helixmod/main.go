// Package main is the entry point for the helixmod CLI client.
package main

import (
	"github.com/streamforge/helixmod/cmd/helixmod/cmd"
)

func main() {
	cmd.Execute()
}
