// Package main is the entry point for the casegen CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/casegen/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
