package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// instanceMarker is a per-process marker file that lets viewer
// instances see each other, so only the last one to exit persists its
// settings.
type instanceMarker struct {
	dir  string
	path string
}

// acquireInstanceMarker registers this process in the shared marker
// directory.
func acquireInstanceMarker() (*instanceMarker, error) {
	dir := filepath.Join(os.TempDir(), "vix-instances")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating instance dir: %w", err)
	}
	path := filepath.Join(dir, strconv.Itoa(os.Getpid()))
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return nil, fmt.Errorf("writing instance marker: %w", err)
	}
	return &instanceMarker{dir: dir, path: path}, nil
}

// OthersRunning reports whether another live instance holds a marker.
// Markers whose process is gone are cleaned up as they are found.
func (m *instanceMarker) OthersRunning() bool {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return false
	}
	others := false
	for _, e := range entries {
		full := filepath.Join(m.dir, e.Name())
		if full == m.path {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil || !processAlive(pid) {
			// Stale marker from a crashed instance.
			os.Remove(full)
			continue
		}
		others = true
	}
	return others
}

// Release removes this process's marker.
func (m *instanceMarker) Release() {
	os.Remove(m.path)
}
