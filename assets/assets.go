package assets

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/automoto/spritewalk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed images/walker.png
var walkerSheet []byte

// ErrSheetTooSmall is returned when a sheet cannot hold every cell of the
// configured grid.
var ErrSheetTooSmall = errors.New("sprite sheet smaller than the configured grid")

// CheckSheetSize verifies that bounds hold MaxFrames columns and Rows rows of
// cells.
func CheckSheetSize(bounds image.Rectangle, c config.Config) error {
	w, h := c.SheetSize()
	if bounds.Dx() < w || bounds.Dy() < h {
		return fmt.Errorf("%w: got %dx%d, need %dx%d", ErrSheetTooSmall, bounds.Dx(), bounds.Dy(), w, h)
	}
	return nil
}

// DecodeSheet decodes a sprite sheet into an ebiten image and checks its size.
func DecodeSheet(r io.Reader, c config.Config) (*ebiten.Image, error) {
	img, src, err := ebitenutil.NewImageFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("decode sprite sheet: %w", err)
	}
	if err := CheckSheetSize(src.Bounds(), c); err != nil {
		img.Deallocate()
		return nil, err
	}
	return img, nil
}

// DecodeDefaultSheet decodes the embedded sheet.
func DecodeDefaultSheet(c config.Config) (*ebiten.Image, error) {
	return DecodeSheet(bytes.NewReader(walkerSheet), c)
}

// DecodeSheetFile decodes the sheet at path.
func DecodeSheetFile(path string, c config.Config) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite sheet: %w", err)
	}
	defer f.Close()

	img, err := DecodeSheet(f, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// LoadSheet loads the sheet at path, or the embedded one when path is empty.
func LoadSheet(path string, c config.Config) (*ebiten.Image, error) {
	if path == "" {
		return DecodeDefaultSheet(c)
	}
	return DecodeSheetFile(path, c)
}

// Sheet is a loaded sprite sheet with a cache of its cells.
// This prevents creating a new *ebiten.Image struct for the same cell every frame.
type Sheet struct {
	image  *ebiten.Image
	frames map[image.Rectangle]*ebiten.Image
}

func NewSheet(img *ebiten.Image) *Sheet {
	return &Sheet{
		image:  img,
		frames: make(map[image.Rectangle]*ebiten.Image),
	}
}

// Image returns the full sheet.
func (s *Sheet) Image() *ebiten.Image {
	return s.image
}

// Frame returns the cached sub-image for a cell of the sheet.
func (s *Sheet) Frame(srcRect image.Rectangle) *ebiten.Image {
	if img, ok := s.frames[srcRect]; ok {
		return img
	}
	frame := s.image.SubImage(srcRect).(*ebiten.Image)
	s.frames[srcRect] = frame
	return frame
}

// Replace swaps in a new sheet image and drops the cached cells.
func (s *Sheet) Replace(img *ebiten.Image) {
	s.image = img
	clear(s.frames)
}
