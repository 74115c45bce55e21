package devtools

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"

	"stonecrawl/pkg/engine/surface"
)

// ScreenshotScale enlarges saved frames so they are readable.
const ScreenshotScale = 4

// SaveScreenshot writes frame as a PNG named after the current time into
// dir and returns its path.
func SaveScreenshot(dir string, frame *surface.Bitmap, now time.Time) (string, error) {
	filename := fmt.Sprintf("screenshot-%s.png", now.Format("20060102-150405.000"))
	path, err := filepath.Abs(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, Scale(frame, ScreenshotScale)); err != nil {
		return path, fmt.Errorf("encode %s: %w", filename, err)
	}
	return path, nil
}

// Scale returns the frame enlarged by an integer factor with hard pixel
// edges.
func Scale(frame *surface.Bitmap, factor int) image.Image {
	src := frame.Image()
	b := src.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor), src.Palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
