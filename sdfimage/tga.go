package sdfimage

import (
	"image"
	"io"
)

// encodeTGA writes img (assumed single-channel, image.Gray) as an
// uncompressed 8-bit grayscale TGA. No library in the retrieval pack
// wraps TGA encoding (see DESIGN.md); the format's fixed 18-byte header
// and row-major uncompressed body make a hand-rolled writer the same kind
// of trivial, dependency-free choice the original C tool made by linking
// stb_image_write's equally small internal TGA writer, and the same shape
// as other_examples/Hugi-R-2d-sdf__main.go's hand-rolled BMP header.
func encodeTGA(w io.Writer, img *image.Gray) error {
	rect := img.Bounds()
	width, height := rect.Dx(), rect.Dy()

	header := [18]byte{}
	// header[0] = ID length, header[1] = color map type: both 0.
	header[2] = 3 // uncompressed, black-and-white (grayscale) image
	// header[3:8] = color map spec: unused, left 0.
	// header[8:12] = x/y origin: 0.
	header[12] = byte(width)
	header[13] = byte(width >> 8)
	header[14] = byte(height)
	header[15] = byte(height >> 8)
	header[16] = 8    // bits per pixel
	header[17] = 0x20 // top-left origin, no alpha bits

	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width]
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
