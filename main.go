package main

import (
	"os"

	"github.com/abhisek/mathblitz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
