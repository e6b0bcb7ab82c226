package main

import (
	"os"

	"github.com/lidra0530/petskills/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
