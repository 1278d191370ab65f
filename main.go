package main

import (
	"os"

	"github.com/alyonafuria/ditherthat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
