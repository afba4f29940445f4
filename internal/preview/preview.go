package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/five82/morty/internal/rickmorty"
)

// ImageFetcher downloads raw image bytes. *rickmorty.Client implements it.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// Default thumbnail size in terminal cells. Each cell carries two vertical
// pixels, so 24x12 cells show a square 24x24 image.
const (
	DefaultCols = 24
	DefaultRows = 12
)

const halfBlock = "▀"

// ErrNoImage is returned for items without an image URI.
var ErrNoImage = errors.New("no image")

// Thumbnail is a rendered image preview.
type Thumbnail struct {
	URL   string
	Lines []string
}

// String joins the rendered rows.
func (t Thumbnail) String() string {
	return strings.Join(t.Lines, "\n")
}

// Loader fetches and renders previews.
type Loader struct {
	fetcher ImageFetcher
	cols    int
	rows    int
	logger  log.FieldLogger
}

// Option configures a Loader.
type Option func(*Loader)

// WithSize overrides the thumbnail size in cells.
func WithSize(cols, rows int) Option {
	return func(l *Loader) {
		if cols > 0 && rows > 0 {
			l.cols, l.rows = cols, rows
		}
	}
}

// WithLogger routes preview logging to logger.
func WithLogger(logger log.FieldLogger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader returns a Loader backed by fetcher.
func NewLoader(fetcher ImageFetcher, opts ...Option) *Loader {
	l := &Loader{
		fetcher: fetcher,
		cols:    DefaultCols,
		rows:    DefaultRows,
		logger:  log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches url and renders it. Failures are logged at debug level only;
// callers are expected to fall back to showing the URI.
func (l *Loader) Load(ctx context.Context, url string) (Thumbnail, error) {
	if strings.TrimSpace(url) == "" {
		return Thumbnail{}, ErrNoImage
	}
	data, err := l.fetcher.FetchImage(ctx, url)
	if err != nil {
		l.logger.WithError(err).WithFields(log.Fields{
			"url":    url,
			"reason": rickmorty.Describe(err),
		}).Debug("preview fetch failed")
		return Thumbnail{}, fmt.Errorf("fetch preview: %w", err)
	}
	img, err := Decode(data)
	if err != nil {
		l.logger.WithField("url", url).Debugf("preview decode failed: %v", err)
		return Thumbnail{}, err
	}
	return Thumbnail{URL: url, Lines: Render(img, l.cols, l.rows)}, nil
}

// Decode parses JPEG, PNG, GIF, BMP or WebP data.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode preview: %w", err)
	}
	return img, nil
}

// Render scales img to fit cols x rows cells, keeping its aspect ratio, and
// draws it with half-block characters: the foreground colours the upper
// pixel and the background the lower one.
func Render(img image.Image, cols, rows int) []string {
	src := img.Bounds()
	if src.Empty() || cols <= 0 || rows <= 0 {
		return nil
	}

	w, h := fit(src.Dx(), src.Dy(), cols, rows*2)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)

	lines := make([]string, 0, (h+1)/2)
	for y := 0; y < h; y += 2 {
		var b strings.Builder
		for x := 0; x < w; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(dst, x, y))
			if y+1 < h {
				style = style.Background(hexColor(dst, x, y+1))
			}
			b.WriteString(style.Render(halfBlock))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func fit(srcW, srcH, maxW, maxH int) (int, int) {
	w, h := maxW, srcH*maxW/srcW
	if h > maxH {
		w, h = srcW*maxH/srcH, maxH
	}
	return max(w, 1), max(h, 1)
}

func hexColor(img *image.RGBA, x, y int) lipgloss.Color {
	c := img.RGBAAt(x, y)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
