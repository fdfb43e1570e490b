package main

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode"
)

// readImageData returns the raw bytes of a gallery entry, reading
// from disk or extracting from the containing archive.
func readImageData(p ImagePath) ([]byte, error) {
	if p.ArchivePath == "" {
		return os.ReadFile(p.Path)
	}
	switch strings.ToLower(filepath.Ext(p.ArchivePath)) {
	case ".zip":
		return readZipEntry(p.ArchivePath, p.EntryPath)
	case ".rar":
		return readRarEntry(p.ArchivePath, p.EntryPath)
	case ".7z":
		return read7zEntry(p.ArchivePath, p.EntryPath)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", p.ArchivePath)
	}
}

// listArchive returns the archive's image entries in container order.
func listArchive(path string) ([]ImagePath, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return listZip(path)
	case ".rar":
		return listRar(path)
	case ".7z":
		return list7z(path)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", path)
	}
}

func archiveEntry(archivePath, entryName string) ImagePath {
	return ImagePath{
		Path:        archivePath + ":" + entryName,
		ArchivePath: archivePath,
		EntryPath:   entryName,
	}
}

func listZip(path string) ([]ImagePath, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var paths []ImagePath
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && isSupportedExt(f.Name) {
			paths = append(paths, archiveEntry(path, f.Name))
		}
	}
	return paths, nil
}

func readZipEntry(path, entry string) ([]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != entry {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("entry %s not found in %s", entry, path)
}

func listRar(path string) ([]ImagePath, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	var paths []ImagePath
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !header.IsDir && isSupportedExt(header.Name) {
			paths = append(paths, archiveEntry(path, header.Name))
		}
	}
	return paths, nil
}

func readRarEntry(path, entry string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header.Name == entry {
			return io.ReadAll(r)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entry, path)
}

func list7z(path string) ([]ImagePath, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var paths []ImagePath
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && isSupportedExt(f.Name) {
			paths = append(paths, archiveEntry(path, f.Name))
		}
	}
	return paths, nil
}

func read7zEntry(path, entry string) ([]byte, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != entry {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("entry %s not found in %s", entry, path)
}
