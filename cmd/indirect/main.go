// Indirect CLI - demo driver for the mem, functab, and scenario packages.
package main

import (
	"github.com/mahithakrar/indirect/cmd/indirect/cmd"
)

func main() {
	cmd.Execute()
}
