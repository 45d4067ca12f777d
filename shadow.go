package main

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Canvas-style shadow blur is twice the Gaussian sigma.
const shadowSigma = shadowBlur / 2.0

// castShadow builds the drop shadow of src's painted pixels: a translucent
// black silhouette, blurred, to be drawn at the returned offset. It reports
// false when src is fully transparent.
func castShadow(src *image.RGBA) (*image.NRGBA, image.Point, bool) {
	bounds, ok := opaqueBounds(src)
	if !ok {
		return nil, image.Point{}, false
	}
	pad := int(math.Ceil(3 * shadowSigma))
	area := bounds.Inset(-pad).Intersect(src.Bounds())

	silhouette := imaging.AdjustFunc(imaging.Crop(src, area), func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{A: uint8(float64(c.A)*shadowAlpha + 0.5)}
	})
	blurred := imaging.Blur(silhouette, shadowSigma)
	return blurred, area.Min.Add(image.Pt(shadowOffsetX, shadowOffsetY)), true
}

// opaqueBounds returns the smallest rectangle holding every pixel of im with
// non-zero alpha.
func opaqueBounds(im *image.RGBA) (image.Rectangle, bool) {
	b := im.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := im.Pix[(y-b.Min.Y)*im.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[(x-b.Min.X)*4+3] == 0 {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
