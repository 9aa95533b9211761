// main holds the entry logic for the combine CLI.
package main

import (
	"github.com/hoopsdata/combine/cmd"
	"github.com/hoopsdata/combine/internal/contract"
)

// main is the entry point for the combine CLI.
func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Error starting CLI", err)
	}
}
