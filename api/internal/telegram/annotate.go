package telegram

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	_ "image/png"
	"math"

	"thermal-sense/api/internal/detect"
	"thermal-sense/api/internal/vision"
)

const boxStroke = 3

var (
	hotColor  = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	coolColor = color.RGBA{R: 59, G: 130, B: 246, A: 255}
)

// boxRect maps an item from the 1000x1000 prompt space onto bounds,
// clamped so a sloppy model box never leaves the picture.
func boxRect(it detect.Item, bounds image.Rectangle) image.Rectangle {
	sx := float64(bounds.Dx()) / vision.CoordScale
	sy := float64(bounds.Dy()) / vision.CoordScale
	x0 := bounds.Min.X + int(math.Round(it.X*sx))
	y0 := bounds.Min.Y + int(math.Round(it.Y*sy))
	x1 := bounds.Min.X + int(math.Round((it.X+it.W)*sx))
	y1 := bounds.Min.Y + int(math.Round((it.Y+it.H)*sy))
	return image.Rect(x0, y0, x1, y1).Intersect(bounds)
}

// Annotate draws the boxes on a JPEG/PNG and returns a JPEG.
func Annotate(img []byte, items []detect.Item, threshold float64) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(img))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)

	for _, it := range items {
		c := coolColor
		if isHot(it, threshold) {
			c = hotColor
		}
		strokeRect(dst, boxRect(it, dst.Bounds()), c)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func strokeRect(dst draw.Image, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	u := &image.Uniform{C: c}
	t := boxStroke
	if r.Dx() < 2*t || r.Dy() < 2*t {
		draw.Draw(dst, r, u, image.Point{}, draw.Src)
		return
	}
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+t, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-t, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}
