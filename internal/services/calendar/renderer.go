package calendar

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MyelinBots/checkinbot-go/internal/db/repositories/checkin"
	"github.com/MyelinBots/checkinbot-go/internal/services/clock"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

const (
	cellSize    = 120
	titleHeight = 90
	markerInset = 8
)

// Interfaces
type Renderer interface {
	RenderMonth(ctx context.Context, userID, groupID string) (string, error)
}

// FontLoader returns a face at the requested point size. Production loads
// a CJK-capable TTF from disk; tests inject a fixed face.
type FontLoader func(points float64) (font.Face, error)

// Implementation
type RendererImpl struct {
	repo       checkin.CheckinRepository
	clk        clock.Clock
	imagesDir  string
	markerPath string
	loadFont   FontLoader
}

// Constructor
func NewRenderer(repo checkin.CheckinRepository, clk clock.Clock, imagesDir, markerPath string, loadFont FontLoader) Renderer {
	return &RendererImpl{
		repo:       repo,
		clk:        clk,
		imagesDir:  imagesDir,
		markerPath: markerPath,
		loadFont:   loadFont,
	}
}

// FileFontLoader loads faces from a TTF/OTF on disk.
func FileFontLoader(path string) FontLoader {
	return func(points float64) (font.Face, error) {
		return gg.LoadFontFace(path, points)
	}
}

// RenderMonth draws the current month's check-in calendar for one user in
// one group and writes it under the images dir. The caller owns the file
// and removes it after sending.
func (r *RendererImpl) RenderMonth(ctx context.Context, userID, groupID string) (string, error) {
	now := r.clk.Now()
	year, month := now.Year(), now.Month()
	weeks := MonthGrid(year, month)

	counts, err := r.repo.MonthlyCounts(ctx, userID, groupID, year, month)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.imagesDir, 0o755); err != nil {
		return "", err
	}

	marker, err := gg.LoadImage(r.markerPath)
	if err != nil {
		return "", fmt.Errorf("load marker image: %w", err)
	}

	width := 7 * cellSize
	height := titleHeight + len(weeks)*cellSize
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	titleFace, err := r.loadFont(40)
	if err != nil {
		return "", fmt.Errorf("load title font: %w", err)
	}
	dc.SetFontFace(titleFace)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(fmt.Sprintf("%d年 %s", year, MonthName(month)), float64(width)/2, float64(titleHeight)/2, 0.5, 0.5)

	cellFace, err := r.loadFont(48)
	if err != nil {
		return "", fmt.Errorf("load cell font: %w", err)
	}

	markerBounds := marker.Bounds()
	fit := float64(cellSize - 2*markerInset)
	scale := fit / float64(markerBounds.Dx())
	if s := fit / float64(markerBounds.Dy()); s < scale {
		scale = s
	}

	for i, week := range weeks {
		for j, day := range week {
			if day == 0 {
				continue // outside the month
			}

			cx := float64(j*cellSize) + cellSize/2
			cy := float64(titleHeight+i*cellSize) + cellSize/2

			dateStr := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
			count := counts[dateStr]

			if count == 0 {
				dc.SetFontFace(cellFace)
				dc.SetRGB(0, 0, 0)
				dc.DrawStringAnchored(fmt.Sprintf("%d", day), cx, cy, 0.5, 0.5)
				continue
			}

			dc.Push()
			dc.Translate(cx, cy)
			dc.Scale(scale, scale)
			dc.DrawImageAnchored(marker, 0, 0, 0.5, 0.5)
			dc.Pop()

			if count > 1 {
				dc.SetFontFace(cellFace)
				dc.SetRGB(1, 0, 0)
				dc.DrawStringAnchored(fmt.Sprintf("X%d", count), cx, cy, 0.5, 0.5)
			}
		}
	}

	// bordered table: rows+1 horizontal lines, 8 vertical
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	for i := 0; i <= len(weeks); i++ {
		y := float64(titleHeight + i*cellSize)
		dc.DrawLine(0, y, float64(width), y)
	}
	for j := 0; j <= 7; j++ {
		x := float64(j * cellSize)
		dc.DrawLine(x, float64(titleHeight), x, float64(height))
	}
	dc.Stroke()

	imagePath := filepath.Join(r.imagesDir, fmt.Sprintf("checkin_table_%s_%s.png", userID, groupID))
	if err := dc.SavePNG(imagePath); err != nil {
		return "", err
	}
	return imagePath, nil
}
