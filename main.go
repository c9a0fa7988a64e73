package main

import (
	"os"

	"github.com/beastwood12/nuskin-insurance-calc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
