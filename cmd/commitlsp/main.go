// Package main provides the commit-lsp command-line interface.
package main

import (
	"fmt"
	"os"

	clierrors "github.com/randalmurphal/commitlsp/errors"
)

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, clierrors.Diagnose(err))
		os.Exit(1)
	}
}
