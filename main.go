package main

import (
	"fmt"
	"os"

	"github.com/abhisek/gramly/cmd"
	"github.com/abhisek/gramly/internal/bank"
)

func main() {
	// A broken question bank is a build defect; refuse to start on one.
	if err := bank.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid question bank:", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
