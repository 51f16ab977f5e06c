// cmd/libracat/main.go
package main

import (
	"fmt"
	"os"

	"libracat/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
