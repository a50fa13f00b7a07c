package main

import (
	"os"

	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
