package image

import (
	"image"

	"github.com/disintegration/imaging"
)

// CropToGrid trims img to the largest size divisible by xSplit and ySplit,
// keeping the center. Images that already divide are returned unchanged.
// Non-positive splits, or splits larger than the image, also return img
// unchanged; geometry validation reports those.
func CropToGrid(img image.Image, xSplit, ySplit int) image.Image {
	if xSplit <= 0 || ySplit <= 0 {
		return img
	}

	b := img.Bounds()
	w := b.Dx() - b.Dx()%xSplit
	h := b.Dy() - b.Dy()%ySplit
	if w == 0 || h == 0 || (w == b.Dx() && h == b.Dy()) {
		return img
	}

	return imaging.CropAnchor(img, w, h, imaging.Center)
}
