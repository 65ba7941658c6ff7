package main

import (
	"os"

	"github.com/creditwise/creditwise-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
