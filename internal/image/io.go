package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "github.com/xfmoulet/qoi"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Load decodes the image file at path, auto-detecting the format.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP, QOI.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// DecodeBytes decodes an image from a byte slice, auto-detecting the format.
// Empty data fails with ErrEmptyData.
func DecodeBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting the format. Data in no
// registered format fails with ErrUnsupportedFormat.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if errors.Is(err, image.ErrFormat) {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return img, nil
}

// SavePNG encodes the image as PNG and writes it to path.
// Encoding happens in memory first so that a failed encode never leaves a
// partial file behind.
func (b *ImageBuf) SavePNG(path string) error {
	data, err := b.EncodeToBytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return fmt.Errorf("image: write file: %w", err)
	}
	return nil
}

// EncodePNG encodes the image as PNG to the given writer.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeToBytes encodes the image to PNG format and returns the bytes.
func (b *ImageBuf) EncodeToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromStdImage converts a standard library image into an RGBA8 ImageBuf
// anchored at the origin. Non-NRGBA inputs are converted with x/image/draw,
// which un-premultiplies alpha. An empty image fails with
// ErrInvalidDimensions.
func FromStdImage(img image.Image) (*ImageBuf, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	buf, err := NewImageBuf(width, height)
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			start := y * nrgba.Stride
			copy(buf.RowBytes(y), nrgba.Pix[start:start+width*BytesPerPixel])
		}
		return buf, nil
	}

	dst := &image.NRGBA{Pix: buf.data, Stride: buf.stride(), Rect: buf.Bounds()}
	xdraw.Draw(dst, dst.Rect, img, bounds.Min, xdraw.Src)
	return buf, nil
}

// ToStdImage copies the buffer into a new *image.NRGBA.
func (b *ImageBuf) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(b.Bounds())
	copy(nrgba.Pix, b.data)
	return nrgba
}
