//go:build !debug

package main

// demoFolder always returns "" in release builds.
func demoFolder() string {
	return ""
}
