package main

import (
	"os"

	"github.com/msto63/dsh/cmd/dsh/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
