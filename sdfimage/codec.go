package sdfimage

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Format identifies an output container format (spec.md §6).
type Format int

const (
	FormatPNG Format = iota
	FormatBMP
	FormatJPEG
	FormatTGA
)

// ParseFormat maps a case-insensitive extension or tag ("png", ".png",
// "jpg", "jpeg", "bmp", "tga") to a Format. It returns false for anything
// else, leaving argument validation to the caller (spec.md §7:
// InvalidArguments covers "unknown format tag").
func ParseFormat(tag string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(tag, ".")) {
	case "png":
		return FormatPNG, true
	case "bmp":
		return FormatBMP, true
	case "jpg", "jpeg":
		return FormatJPEG, true
	case "tga":
		return FormatTGA, true
	default:
		return 0, false
	}
}

// FormatFromExtension infers a Format from an output path's extension,
// defaulting to PNG when the extension is absent or unrecognized (spec.md
// §6: "default: inferred from output extension... else PNG").
func FormatFromExtension(path string) Format {
	if f, ok := ParseFormat(filepath.Ext(path)); ok {
		return f
	}
	return FormatPNG
}

// errUnsupportedFormat mirrors the teacher's internal/image/io.go
// ErrUnsupportedFormat, scoped to this package's decode path.
var errUnsupportedFormat = errors.New("sdfimage: unsupported source format")

func init() {
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
}

// Decode reads an arbitrary PNG/JPEG/BMP image from r and normalizes it to
// a 2-channel Raster.
//
// Channel ordering (spec.md §9's open question, resolved here and
// documented per the spec's instruction): channel 0 is always luminance,
// computed from the source's own non-premultiplied RGB when it has color
// channels (so a semi-transparent pixel's luminance byte does not darken
// in proportion to its alpha), or copied directly when the source is
// already grayscale. Channel 1 is always alpha: copied from the source's
// own alpha channel when present, or synthesized to 0xFF (fully opaque)
// when the source format has none — matching the original C tool's
// stbi_load(..., channels=2) behavior (original_source/sdfgen.c), which
// always produces a gray+alpha pair regardless of the source's actual
// channel layout, with luminance computed from unweighted source RGB
// independent of alpha.
func Decode(r io.Reader) (*Raster, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("sdfimage: decode: %w", err)
	}
	return fromStdImage(img), nil
}

// DecodeFile opens path and decodes it via Decode.
func DecodeFile(path string) (*Raster, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("sdfimage: open file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// fromStdImage builds a 2-channel Raster from an arbitrary image.Image,
// following the teacher's internal/image/io.go FromStdImage fast-path
// pattern: use the concrete type's own channel layout when possible, fall
// back to At()/RGBA() otherwise.
func fromStdImage(img image.Image) *Raster {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	raster := NewRaster(w, h)

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < h; y++ {
			srcRow := gray.Pix[y*gray.Stride : y*gray.Stride+w]
			for x := 0; x < w; x++ {
				i := 2 * (y*w + x)
				raster.Pix[i] = srcRow[x]
				raster.Pix[i+1] = 0xFF
			}
		}
		return raster
	}

	// Un-premultiply via x/image/draw into an NRGBA buffer first: drawing
	// straight to an *image.Gray would derive luminance from RGBA()'s
	// alpha-premultiplied components (image/color's documented contract),
	// which darkens the luminance byte in proportion to alpha and couples
	// it to the Alpha channel. NRGBA's color model divides back out by
	// alpha on conversion, recovering the source's true, alpha-independent
	// RGB — matching the original tool's stbi_load(channels=2), which
	// derives gray from unweighted source RGB regardless of alpha.
	nrgbaImg := image.NewNRGBA(bounds)
	draw.Draw(nrgbaImg, bounds, img, bounds.Min, draw.Src)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := 2 * (y*w + x)
			c := nrgbaImg.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)

			// Same BT.601 luma weights color.Gray's own RGBA()->Y
			// conversion uses, applied to unpremultiplied 8-bit components
			// widened to 16-bit range so the rounding matches stdlib scale.
			r16, g16, b16 := uint32(c.R)*0x101, uint32(c.G)*0x101, uint32(c.B)*0x101
			y16 := (19595*r16 + 38470*g16 + 7471*b16 + 1<<15) >> 24
			raster.Pix[i] = byte(y16)
			// NRGBA stores alpha unpremultiplied already; images with no
			// alpha channel report it fully opaque, covering the
			// "synthesize to 0xFF" case for alpha-less formats like JPEG.
			raster.Pix[i+1] = c.A
		}
	}
	return raster
}

// Encode writes plane (a single-channel byte raster, spec.md's Out8) to w
// in the given format. quality is used only for FormatJPEG and must
// already be validated to 1..100 by the caller.
func Encode(w io.Writer, format Format, width, height int, plane []byte, quality int) error {
	img := &image.Gray{
		Pix:    plane,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}

	switch format {
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("sdfimage: encode PNG: %w", err)
		}
	case FormatJPEG:
		if quality < 1 {
			quality = 1
		}
		if quality > 100 {
			quality = 100
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("sdfimage: encode JPEG: %w", err)
		}
	case FormatBMP:
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("sdfimage: encode BMP: %w", err)
		}
	case FormatTGA:
		if err := encodeTGA(w, img); err != nil {
			return fmt.Errorf("sdfimage: encode TGA: %w", err)
		}
	default:
		return fmt.Errorf("sdfimage: encode: %w", errUnsupportedFormat)
	}
	return nil
}

// EncodeFile creates path and encodes plane to it via Encode.
func EncodeFile(path string, format Format, width, height int, plane []byte, quality int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("sdfimage: create file: %w", err)
	}
	if err := Encode(f, format, width, height, plane, quality); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
