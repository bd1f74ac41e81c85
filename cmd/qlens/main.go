package main

import (
	"fmt"
	"os"

	"github.com/qlens/qlens/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "qlens: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
