package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var (
	// ErrNoDirectory means the folder that should contain the images
	// could not be read.
	ErrNoDirectory = errors.New("no such directory")
	// ErrNoImages means the folder exists but holds nothing the
	// viewer can open.
	ErrNoImages = errors.New("no supported images found")
)

// canonicalPath makes a target absolute with symlinks resolved, so
// every spelling of the same file keys the reuse check, the cache,
// and the window title identically. A path that does not exist stays
// absolute but unresolved.
func canonicalPath(target string) string {
	if abs, err := filepath.Abs(target); err == nil {
		target = abs
	}
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}
	return filepath.Clean(target)
}

// Load points the gallery at target, which may be an image file, a
// directory, or an archive. Opening a file whose folder is already
// loaded repositions the gallery without rescanning, so stepping
// through files of one directory costs a single scan.
func (g *Gallery) Load(target string) error {
	target = canonicalPath(target)
	info, statErr := os.Stat(target)

	switch {
	case statErr == nil && info.IsDir():
		return g.loadDir(target, "")
	case isArchiveExt(target):
		if g.folder == target && len(g.paths) > 0 {
			return nil
		}
		return g.loadArchive(target)
	default:
		dir := filepath.Dir(target)
		if g.folder == dir && len(g.paths) > 0 {
			g.jumpToPath(target)
			return nil
		}
		return g.loadDir(dir, target)
	}
}

// LoadLocked pins the gallery to exactly one file. The containing
// directory is never scanned, so the gallery has a single entry and
// navigation has nowhere to go.
func (g *Gallery) LoadLocked(target string) error {
	target = canonicalPath(target)
	info, err := os.Stat(target)
	if err != nil || info.IsDir() || !isSupportedExt(target) {
		return fmt.Errorf("%w: %s", ErrNoImages, target)
	}
	g.setPaths(filepath.Dir(target), []ImagePath{{Path: target}})
	g.notify()
	return nil
}

// loadDir scans dir for supported images and positions the gallery at
// target when one is given. Entries that cannot be stat'd are logged
// and skipped rather than failing the whole scan.
func (g *Gallery) loadDir(dir, target string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNoDirectory, dir)
	}
	g.scans++

	var paths []ImagePath
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := e.Info(); err != nil {
			log.Printf("Warning: skipping %s: %v", filepath.Join(dir, e.Name()), err)
			continue
		}
		if isSupportedExt(e.Name()) {
			paths = append(paths, ImagePath{Path: filepath.Join(dir, e.Name())})
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: %s", ErrNoImages, dir)
	}

	g.setPaths(dir, g.strategy.Sort(paths))
	if target != "" {
		g.jumpToPath(target)
	} else {
		g.notify()
	}
	return nil
}

// loadArchive lists an archive's image entries and opens them as a
// gallery.
func (g *Gallery) loadArchive(path string) error {
	paths, err := listArchive(path)
	if err != nil {
		return fmt.Errorf("reading archive %s: %w", path, err)
	}
	g.scans++
	if len(paths) == 0 {
		return fmt.Errorf("%w: %s", ErrNoImages, path)
	}
	g.setPaths(path, g.strategy.Sort(paths))
	g.notify()
	return nil
}
