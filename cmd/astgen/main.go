package main

import (
	"os"

	"github.com/Backseating-Committee-2k/ast-node-generator-for-seatbelt2/cmd/astgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
