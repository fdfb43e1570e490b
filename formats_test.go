package main

import "testing"

func TestClassifyExt(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"photo.png", FormatPNG},
		{"PHOTO.PNG", FormatPNG},
		{"anim.apng", FormatPNG},
		{"sticker.webp", FormatWebP},
		{"loop.gif", FormatGIF},
		{"pic.jpg", FormatGeneric},
		{"pic.jpeg", FormatGeneric},
		{"pic.jfif", FormatGeneric},
		{"scan.tiff", FormatGeneric},
		{"icon.ico", FormatGeneric},
		{"gradient.pgm", FormatGeneric},
		{"notes.txt", FormatUnknown},
		{"archive.zip", FormatUnknown},
		{"noext", FormatUnknown},
		{"dir/sub/pic.BMP", FormatGeneric},
	}

	for _, tt := range tests {
		if got := classifyExt(tt.path); got != tt.want {
			t.Errorf("classifyExt(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIsArchiveExt(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"bundle.zip", true},
		{"bundle.ZIP", true},
		{"bundle.rar", true},
		{"bundle.7z", true},
		{"bundle.tar", false},
		{"photo.png", false},
	}

	for _, tt := range tests {
		if got := isArchiveExt(tt.path); got != tt.want {
			t.Errorf("isArchiveExt(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0}, FormatPNG},
		{"gif87a", []byte("GIF87a"), FormatGIF},
		{"gif89a", []byte("GIF89a"), FormatGIF},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), FormatWebP},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, FormatGeneric},
		{"bmp", []byte("BM\x00\x00"), FormatGeneric},
		{"ico", []byte{0, 0, 1, 0, 1, 0}, FormatGeneric},
		{"tiff little endian", []byte{'I', 'I', 42, 0}, FormatGeneric},
		{"tiff big endian", []byte{'M', 'M', 0, 42}, FormatGeneric},
		{"pnm", []byte("P6\n2 2\n255\n"), FormatGeneric},
		{"riff but not webp", []byte("RIFF\x00\x00\x00\x00WAVEfmt "), FormatUnknown},
		{"text", []byte("hello world"), FormatUnknown},
		{"empty", nil, FormatUnknown},
		{"truncated png", []byte{0x89, 'P', 'N'}, FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectFormat(tt.data); got != tt.want {
				t.Errorf("detectFormat = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatErrorMessage(t *testing.T) {
	err := &FormatError{Format: FormatPNG, Detected: FormatGIF, Reason: "bad signature"}
	want := "png decoder: bad signature (data looks like gif)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	plain := &FormatError{Format: FormatGIF, Reason: "truncated"}
	if plain.Error() != "gif decoder: truncated" {
		t.Errorf("Error() = %q", plain.Error())
	}
}
