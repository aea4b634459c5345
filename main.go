package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Version is reported by --version and overridden at build time via -ldflags.
var Version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintln(os.Stderr, "go-mdmerge:", err)
		os.Exit(1)
	}
}
