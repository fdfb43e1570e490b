package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the concrete container format of an image file,
// independent of its extension.
type Format int

const (
	FormatUnknown Format = iota
	FormatGeneric        // any static raster handled by image.Decode
	FormatPNG            // PNG or APNG
	FormatWebP
	FormatGIF
)

func (f Format) String() string {
	switch f {
	case FormatGeneric:
		return "static"
	case FormatPNG:
		return "png"
	case FormatWebP:
		return "webp"
	case FormatGIF:
		return "gif"
	default:
		return "unknown"
	}
}

// FormatError is returned by a loader that could not handle its input.
// When the bytes were recognized as a different concrete format,
// Detected carries that format so the dispatcher can retry with the
// right loader.
type FormatError struct {
	Format   Format // the loader that failed
	Detected Format // the format the bytes actually are, if recognized
	Reason   string
}

func (e *FormatError) Error() string {
	if e.Detected != FormatUnknown && e.Detected != e.Format {
		return fmt.Sprintf("%s decoder: %s (data looks like %s)", e.Format, e.Reason, e.Detected)
	}
	return fmt.Sprintf("%s decoder: %s", e.Format, e.Reason)
}

// UnsupportedColorError reports a pixel layout the renderer cannot
// represent, such as 16-bit grayscale or exotic custom color models.
type UnsupportedColorError struct {
	ColorKind string
}

func (e *UnsupportedColorError) Error() string {
	return fmt.Sprintf("unsupported color format: %s", e.ColorKind)
}

// staticExts are extensions handled by the generic image.Decode path.
// JPEG aliases mirror the set of extensions the viewer historically
// accepted.
var staticExts = map[string]bool{
	".bmp": true, ".jpg": true, ".jpeg": true, ".jpe": true,
	".jif": true, ".jfif": true, ".jfi": true, ".ico": true,
	".tiff": true, ".tif": true, ".pgm": true, ".pbm": true,
	".ppm": true, ".pnm": true,
}

// classifyExt maps a file path's lowercase extension to the format
// whose loader should try the file first. FormatUnknown means the file
// is not an image the viewer opens.
func classifyExt(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".png" || ext == ".apng":
		return FormatPNG
	case ext == ".webp":
		return FormatWebP
	case ext == ".gif":
		return FormatGIF
	case staticExts[ext]:
		return FormatGeneric
	default:
		return FormatUnknown
	}
}

func isSupportedExt(path string) bool {
	return classifyExt(path) != FormatUnknown
}

func isArchiveExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".rar", ".7z":
		return true
	default:
		return false
	}
}

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	gifMagic  = []byte("GIF8")
	riffMagic = []byte("RIFF")
	webpMagic = []byte("WEBP")
)

// detectFormat sniffs the leading bytes of a file to find its concrete
// format, used to recover from misnamed files (e.g. a JPEG saved with
// a .png extension). Non-image data returns FormatUnknown.
func detectFormat(data []byte) Format {
	switch {
	case len(data) >= 8 && bytes.Equal(data[:8], pngMagic):
		return FormatPNG
	case len(data) >= 6 && bytes.Equal(data[:4], gifMagic):
		return FormatGIF
	case len(data) >= 12 && bytes.Equal(data[:4], riffMagic) && bytes.Equal(data[8:12], webpMagic):
		return FormatWebP
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8: // JPEG SOI
		return FormatGeneric
	case len(data) >= 2 && data[0] == 'B' && data[1] == 'M': // BMP
		return FormatGeneric
	case len(data) >= 4 && data[0] == 0 && data[1] == 0 && data[2] == 1 && data[3] == 0: // ICO
		return FormatGeneric
	case len(data) >= 4 && (bytes.Equal(data[:4], []byte{'I', 'I', 42, 0}) ||
		bytes.Equal(data[:4], []byte{'M', 'M', 0, 42})): // TIFF
		return FormatGeneric
	case len(data) >= 2 && data[0] == 'P' && data[1] >= '1' && data[1] <= '6': // PNM family
		return FormatGeneric
	default:
		return FormatUnknown
	}
}
