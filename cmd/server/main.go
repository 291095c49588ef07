package main

import (
	"fmt"
	"os"

	"session-analytics/internal/cli"
)

func main() {
	if err := cli.RunServer(nil); err != nil {
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		os.Exit(1)
	}
}
