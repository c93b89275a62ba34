package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	_ "image/jpeg"

	xdraw "golang.org/x/image/draw"
)

// uploadMaxDim caps the longer side of a photo sent for extraction.
// Larger inputs are downscaled first to keep uploads small.
const uploadMaxDim = 1024

// loadPhoto decodes a PNG or JPEG file, downscales it to uploadMaxDim if
// needed, and returns both the decoded image and its PNG encoding.
func loadPhoto(path string) (image.Image, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	img = downscale(img, uploadMaxDim)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, nil, fmt.Errorf("encode %s: %w", path, err)
	}
	return img, buf.Bytes(), nil
}

// downscale shrinks img so that neither dimension exceeds maxDim,
// preserving the aspect ratio. Images already within the limit are
// returned unchanged.
func downscale(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}
	if w >= h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
