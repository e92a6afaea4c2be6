package artifacts

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"countryfx/internal/domain"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	imgWidth   = 640
	lineHeight = 22
	marginX    = 24
	marginY    = 40
)

// PNGSummaryRenderer writes the refresh summary (total count, top GDP
// countries, timestamp) as a PNG next to the service. Regenerated after every
// successful refresh; best effort, callers log and move on when it fails.
type PNGSummaryRenderer struct {
	path string
}

func NewPNGSummaryRenderer(path string) *PNGSummaryRenderer {
	return &PNGSummaryRenderer{path: path}
}

func (r *PNGSummaryRenderer) Render(_ context.Context, s domain.Summary) error {
	lines := summaryLines(s)

	height := marginY + lineHeight*(len(lines)+1)
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(marginX, marginY+i*lineHeight)
		drawer.DrawString(line)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create summary dir: %w", err)
	}
	out, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer out.Close()

	if err = png.Encode(out, img); err != nil {
		return fmt.Errorf("failed to encode summary image: %w", err)
	}
	return nil
}

// Path returns where the last rendered summary lives.
func (r *PNGSummaryRenderer) Path() string { return r.path }

func summaryLines(s domain.Summary) []string {
	lines := []string{
		fmt.Sprintf("Total countries: %d", s.TotalCountries),
		fmt.Sprintf("Last refreshed: %s", s.RefreshedAt.Format("2006-01-02 15:04:05 UTC")),
		"",
		"Top countries by estimated GDP:",
	}
	for i, c := range s.TopByGDP {
		gdp := 0.0
		if c.EstimatedGDP != nil {
			gdp = *c.EstimatedGDP
		}
		lines = append(lines, fmt.Sprintf("%d. %s - %.2f", i+1, c.Name, gdp))
	}
	if len(s.TopByGDP) == 0 {
		lines = append(lines, "(no GDP estimates yet)")
	}
	return lines
}
