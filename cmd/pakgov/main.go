// ABOUTME: Entry point for the pakgov command-line client
// ABOUTME: Prints briefings to the terminal without starting the server

package main

import (
	"fmt"
	"os"

	"pakgov-intel/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
