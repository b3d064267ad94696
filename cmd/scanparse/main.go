package main

import (
	"os"

	"github.com/msto63/scanparse/cmd/scanparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
