package telegram

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"thermal-sense/api/internal/detect"
)

func TestBoxRect(t *testing.T) {
	bounds := image.Rect(0, 0, 640, 480)
	cases := []struct {
		name string
		it   detect.Item
		want image.Rectangle
	}{
		{"scaled", detect.Item{X: 100, Y: 250, W: 500, H: 500}, image.Rect(64, 120, 384, 360)},
		{"full frame", detect.Item{X: 0, Y: 0, W: 1000, H: 1000}, bounds},
		{"clamped", detect.Item{X: 900, Y: 900, W: 500, H: 500}, image.Rect(576, 432, 640, 480)},
		{"outside", detect.Item{X: 2000, Y: 2000, W: 10, H: 10}, image.Rectangle{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := boxRect(tc.it, bounds); got != tc.want {
				t.Errorf("boxRect = %v, want %v", got, tc.want)
			}
		})
	}
}

func solidPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func near(c color.Color, want color.RGBA) bool {
	r, g, b, _ := c.RGBA()
	d := func(a uint32, b uint8) bool {
		v := int(a>>8) - int(b)
		return v > -60 && v < 60
	}
	return d(r, want.R) && d(g, want.G) && d(b, want.B)
}

func TestAnnotateColoursByTemperature(t *testing.T) {
	src := solidPNG(t, 200, 200)
	items := []detect.Item{
		{Label: "hot", X: 0, Y: 0, W: 500, H: 500, Temp: 60},
		{Label: "cold", X: 500, Y: 500, W: 500, H: 500, Temp: 5},
	}
	out, err := Annotate(src, items, 40)
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a JPEG: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 200, 200) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	// середина верхней грани каждой рамки
	if c := img.At(50, 1); !near(c, hotColor) {
		t.Errorf("hot edge = %v", c)
	}
	if c := img.At(150, 101); !near(c, coolColor) {
		t.Errorf("cool edge = %v", c)
	}
	if c := img.At(50, 50); !near(c, color.RGBA{R: 255, G: 255, B: 255}) {
		t.Errorf("inside of a box must stay untouched, got %v", c)
	}
}

func TestAnnotateRejectsGarbage(t *testing.T) {
	if _, err := Annotate([]byte("not an image"), nil, 40); err == nil {
		t.Fatal("expected decode error")
	}
}
