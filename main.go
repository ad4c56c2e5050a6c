package main

import (
	"os"

	"github.com/riftlens/winreport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
