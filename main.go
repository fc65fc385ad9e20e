package main

import (
	"os"

	"github.com/sherine-k/npsched/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
