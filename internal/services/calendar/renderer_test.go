package calendar

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MyelinBots/checkinbot-go/internal/db/repositories/checkin"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// fixedClock pins "now" for rendering
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// fakeRepo serves canned monthly counts
type fakeRepo struct {
	counts map[string]int
	err    error
}

func (f *fakeRepo) RecordCheckin(ctx context.Context, userID, groupID, date string) error {
	return nil
}

func (f *fakeRepo) MonthlyCounts(ctx context.Context, userID, groupID string, year int, month time.Month) (map[string]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.counts, nil
}

func (f *fakeRepo) Leaderboard(ctx context.Context, groupID string) ([]*checkin.CheckinCount, error) {
	return nil, nil
}

func (f *fakeRepo) PruneBefore(ctx context.Context, cutoffDate string) error {
	return nil
}

func testFontLoader(points float64) (font.Face, error) {
	return basicfont.Face7x13, nil
}

func writeMarker(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for x := 0; x < 40; x++ {
		for y := 0; y < 40; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 60, A: 255})
		}
	}
	path := filepath.Join(dir, "marker.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create marker: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode marker: %v", err)
	}
	return path
}

func TestRenderMonth_WritesDeterministicPath(t *testing.T) {
	dir := t.TempDir()
	marker := writeMarker(t, dir)
	repo := &fakeRepo{counts: map[string]int{
		"2024-03-01": 1,
		"2024-03-02": 3,
	}}

	r := newTestRenderer(repo, dir, marker)
	path, err := r.RenderMonth(context.Background(), "U1", "G1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := filepath.Join(dir, "images", "checkin_table_U1_G1.png")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}

	// March 2024 is five weeks: 7 cells wide, title band on top.
	if img.Bounds().Dx() != 7*cellSize {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), 7*cellSize)
	}
	if img.Bounds().Dy() != titleHeight+5*cellSize {
		t.Errorf("height = %d, want %d", img.Bounds().Dy(), titleHeight+5*cellSize)
	}
}

func TestRenderMonth_NoCheckins(t *testing.T) {
	dir := t.TempDir()
	marker := writeMarker(t, dir)
	repo := &fakeRepo{counts: map[string]int{}}

	r := newTestRenderer(repo, dir, marker)
	path, err := r.RenderMonth(context.Background(), "U1", "G1")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestRenderMonth_MissingMarker(t *testing.T) {
	dir := t.TempDir()
	repo := &fakeRepo{counts: map[string]int{}}

	r := newTestRenderer(repo, dir, filepath.Join(dir, "nope.png"))
	if _, err := r.RenderMonth(context.Background(), "U1", "G1"); err == nil {
		t.Error("expected error for missing marker image")
	}
}

func TestRenderMonth_RepoError(t *testing.T) {
	dir := t.TempDir()
	marker := writeMarker(t, dir)
	repo := &fakeRepo{err: errors.New("disk on fire")}

	r := newTestRenderer(repo, dir, marker)
	if _, err := r.RenderMonth(context.Background(), "U1", "G1"); err == nil {
		t.Error("expected store error to propagate")
	}
}

func newTestRenderer(repo *fakeRepo, dir, marker string) Renderer {
	clk := fixedClock{t: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	return &RendererImpl{
		repo:       repo,
		clk:        clk,
		imagesDir:  filepath.Join(dir, "images"),
		markerPath: marker,
		loadFont:   testFontLoader,
	}
}
