//go:build debug

package main

import "os"

// demoFolder returns the fixture directory that forces the demo tracker.
func demoFolder() string {
	return os.Getenv("COMMIT_LSP_DEMO_FOLDER")
}
