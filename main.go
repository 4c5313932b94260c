// The main package for the portalgen executable.
package main

import (
	"github.com/jacortez/portalgen/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
