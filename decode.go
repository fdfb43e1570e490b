package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodedImage is the output of every loader: either a single static
// buffer or an animation, never both.
type DecodedImage struct {
	Static *PixelBuffer
	Anim   *AnimatedSequence
}

type decodeFunc func(data []byte) (*DecodedImage, error)

// loaderFor selects the loader a format's files are tried with first.
// bg is the canvas color animated WebP flattens onto.
func loaderFor(f Format, bg color.NRGBA) decodeFunc {
	switch f {
	case FormatPNG:
		return decodePNG
	case FormatGIF:
		return decodeGIF
	case FormatWebP:
		return func(data []byte) (*DecodedImage, error) { return decodeWebP(data, bg) }
	default:
		return decodeGeneric
	}
}

// decodeImage decodes data with the loader matching hint. When that
// loader rejects the bytes but recognizes them as another format, the
// decode is retried once with the recognized format's loader. A single
// redirect bounds the recovery so two loaders can never ping-pong.
func decodeImage(data []byte, hint Format, bg color.NRGBA) (*DecodedImage, error) {
	dec, err := loaderFor(hint, bg)(data)
	if err == nil {
		return dec, nil
	}
	var fe *FormatError
	if errors.As(err, &fe) && fe.Detected != FormatUnknown && fe.Detected != fe.Format {
		debugLog("decode: %v, retrying as %s", err, fe.Detected)
		return loaderFor(fe.Detected, bg)(data)
	}
	return nil, err
}

// decodeGeneric handles every static raster format registered with
// image.Decode. Bytes that belong to a dedicated loader are handed
// back with a redirect instead of being decoded here, so animation
// data is never flattened by the generic path.
func decodeGeneric(data []byte) (*DecodedImage, error) {
	switch det := detectFormat(data); det {
	case FormatPNG, FormatGIF, FormatWebP:
		return nil, &FormatError{Format: FormatGeneric, Detected: det, Reason: "data has a dedicated decoder"}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	buf, err := toRenderable(img)
	if err != nil {
		return nil, err
	}
	return &DecodedImage{Static: buf}, nil
}
