package main

import (
	"fmt"
	"os"

	"session-analytics/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "sessionize: %v\n", err)
		os.Exit(1)
	}
}
