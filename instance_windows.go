//go:build windows

package main

import "os"

// processAlive reports whether a pid refers to a running process.
// Signals are not usable here; FindProcess fails for a pid that no
// longer exists.
func processAlive(pid int) bool {
	_, err := os.FindProcess(pid)
	return err == nil
}
