package artifacts

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"countryfx/internal/domain"

	"github.com/stretchr/testify/require"
)

func gdpPtr(v float64) *float64 { return &v }

func TestPNGSummaryRenderer_WritesDecodablePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "summary.png")
	r := NewPNGSummaryRenderer(path)

	s := domain.Summary{
		TotalCountries: 250,
		TopByGDP: []domain.Country{
			{Name: "Nigeria", EstimatedGDP: gdpPtr(2e11)},
			{Name: "Ghana", EstimatedGDP: gdpPtr(5e10)},
		},
		RefreshedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, r.Render(context.Background(), s))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Positive(t, img.Bounds().Dx())
	require.Positive(t, img.Bounds().Dy())
}

func TestPNGSummaryRenderer_EmptyTopList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.png")
	r := NewPNGSummaryRenderer(path)

	s := domain.Summary{TotalCountries: 0, RefreshedAt: time.Now().UTC()}

	require.NoError(t, r.Render(context.Background(), s))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestPNGSummaryRenderer_OverwritesPreviousImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.png")
	r := NewPNGSummaryRenderer(path)

	first := domain.Summary{TotalCountries: 1, RefreshedAt: time.Now().UTC()}
	require.NoError(t, r.Render(context.Background(), first))
	firstInfo, err := os.Stat(path)
	require.NoError(t, err)

	second := domain.Summary{
		TotalCountries: 2,
		TopByGDP: []domain.Country{
			{Name: "Nigeria", EstimatedGDP: gdpPtr(1e9)},
			{Name: "Ghana", EstimatedGDP: gdpPtr(1e8)},
		},
		RefreshedAt: time.Now().UTC(),
	}
	require.NoError(t, r.Render(context.Background(), second))
	secondInfo, err := os.Stat(path)
	require.NoError(t, err)

	// taller image: one more line than before
	require.NotEqual(t, firstInfo.Size(), secondInfo.Size())
}
