package main

import (
	"os"

	"bluechips/cmd/bluechips/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
