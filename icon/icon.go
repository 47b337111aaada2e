// Package icon renders the app icon and favicon as PNG.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

var (
	navy = mustHex("#0b0f1e")
	blue = mustHex("#22a2ff")
)

// Spec describes one square icon: a solid background with a filled
// ellipse inscribed in Circle. Circle corners are inclusive pixels.
type Spec struct {
	Name       string
	Size       int
	Background color.RGBA
	Fill       color.RGBA
	Circle     image.Rectangle
}

var (
	AppIcon = Spec{
		Name:       "icon.png",
		Size:       1024,
		Background: navy,
		Fill:       blue,
		Circle:     image.Rect(312, 312, 712, 712),
	}
	Favicon = Spec{
		Name:       "favicon.png",
		Size:       48,
		Background: navy,
		Fill:       blue,
		Circle:     image.Rect(12, 12, 36, 36),
	}
)

// All returns the icons in the order they are written.
func All() []Spec {
	return []Spec{AppIcon, Favicon}
}

// Render draws s onto a new canvas. No anti-aliasing: a pixel takes the
// fill color when its center falls inside the ellipse.
func Render(s Spec) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Size, s.Size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: s.Background}, image.Point{}, draw.Src)

	box := s.Circle.Canon()
	// Inclusive corners, so the ellipse covers [Min, Max+1) in pixel space.
	cx := float64(box.Min.X+box.Max.X+1) / 2
	cy := float64(box.Min.Y+box.Max.Y+1) / 2
	rx := float64(box.Dx()+1) / 2
	ry := float64(box.Dy()+1) / 2

	area := image.Rect(box.Min.X, box.Min.Y, box.Max.X+1, box.Max.Y+1).Intersect(img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, s.Fill)
			}
		}
	}
	return img
}

// Encode writes s as PNG. Output is deterministic for a given Spec.
func Encode(w io.Writer, s Spec) error {
	if err := png.Encode(w, Render(s)); err != nil {
		return fmt.Errorf("encode %s: %w", s.Name, err)
	}
	return nil
}

// WriteFile encodes s into dir, replacing any existing file of the same
// name. The target is only touched once the full image is on disk.
func WriteFile(dir string, s Spec) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return "", err
	}

	path := filepath.Join(dir, s.Name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("write %s: %w", s.Name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("rename %s: %w", s.Name, err)
	}
	return path, nil
}

// mustHex parses a #rrggbb literal.
func mustHex(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		panic("icon: bad color " + strconv.Quote(s))
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		panic("icon: bad color " + strconv.Quote(s))
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}
