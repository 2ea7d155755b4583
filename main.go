package main

import (
	"os"

	"github.com/minhtran/vocamaster/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
