package main

import (
	"os"

	"roomkey/cmd/roomkey/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
