package main

import (
	"fmt"
	"os"

	// Register built-in plugins
	_ "github.com/pakt-build/pakt/pkg/plugins"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
