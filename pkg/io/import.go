package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/figure"
)

// ReadJSON decodes a JSON figure from r.
//
// ReadJSON returns an error if the JSON is malformed or the figure has no
// axes. Missing handles are minted. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*figure.Figure, error) {
	var f figure.Figure
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return finish(&f)
}

// ReadTOML decodes a TOML figure from r.
func ReadTOML(r io.Reader) (*figure.Figure, error) {
	var doc tomlFigure
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return finish(doc.figure())
}

// ImportFigure reads the figure file at path, choosing the decoder from the
// extension.
func ImportFigure(path string) (*figure.Figure, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ImportJSON(path)
	case ".toml":
		return ImportTOML(path)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown figure format: %s (want .json or .toml)", path)
	}
}

// ImportJSON reads a JSON figure file.
func ImportJSON(path string) (*figure.Figure, error) {
	return importWith(path, ReadJSON)
}

// ImportTOML reads a TOML figure file.
func ImportTOML(path string) (*figure.Figure, error) {
	return importWith(path, ReadTOML)
}

func importWith(path string, read func(io.Reader) (*figure.Figure, error)) (*figure.Figure, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	fig, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fig, nil
}

func finish(f *figure.Figure) (*figure.Figure, error) {
	if len(f.Axes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "figure has no axes")
	}
	for i, ax := range f.Axes {
		for j, l := range ax.Lines {
			if len(l.X) != len(l.Y) {
				return nil, errors.New(errors.ErrCodeInvalidInput, "axis %d line %d: %d x values but %d y values", i+1, j+1, len(l.X), len(l.Y))
			}
		}
	}
	f.EnsureHandles()
	return f, nil
}

// tomlFigure mirrors figure.Figure with optional flags, so that omitted keys
// keep their defaults.
type tomlFigure struct {
	Handle            string         `toml:"handle"`
	PaperSize         *figure.Size   `toml:"paper_size"`
	Axes              []tomlAxis     `toml:"axes"`
	Texts             []*figure.Text `toml:"texts"`
	BackgroundVisible *bool          `toml:"background_visible"`
	BackgroundColor   string         `toml:"background_color"`
}

type tomlAxis struct {
	Handle     string         `toml:"handle"`
	Position   *figure.Rect   `toml:"position"`
	XLim       figure.Range   `toml:"xlim"`
	YLim       figure.Range   `toml:"ylim"`
	XGrid      bool           `toml:"xgrid"`
	YGrid      bool           `toml:"ygrid"`
	Title      string         `toml:"title"`
	XLabel     string         `toml:"xlabel"`
	YLabel     string         `toml:"ylabel"`
	Lines      []*figure.Line `toml:"lines"`
	Texts      []*figure.Text `toml:"texts"`
	FontSize   float64        `toml:"font_size"`
	LooseInset figure.Insets  `toml:"loose_inset"`

	Visible           *bool `toml:"visible"`
	ShowTicks         *bool `toml:"show_ticks"`
	BackgroundVisible *bool `toml:"background_visible"`
}

func (d tomlFigure) figure() *figure.Figure {
	f := figure.New()
	f.Handle = figure.Handle(d.Handle)
	if d.PaperSize != nil {
		f.PaperSize = *d.PaperSize
	}
	f.Texts = d.Texts
	f.BackgroundVisible = boolOr(d.BackgroundVisible, f.BackgroundVisible)
	f.BackgroundColor = d.BackgroundColor

	for _, a := range d.Axes {
		ax := figure.NewAxis()
		ax.Handle = figure.Handle(a.Handle)
		if a.Position != nil {
			ax.Position = *a.Position
		}
		ax.XLim, ax.YLim = a.XLim, a.YLim
		ax.XGrid, ax.YGrid = a.XGrid, a.YGrid
		ax.Title, ax.XLabel, ax.YLabel = a.Title, a.XLabel, a.YLabel
		ax.Lines, ax.Texts = a.Lines, a.Texts
		ax.FontSize = a.FontSize
		ax.LooseInset = a.LooseInset
		ax.Visible = boolOr(a.Visible, ax.Visible)
		ax.ShowTicks = boolOr(a.ShowTicks, ax.ShowTicks)
		ax.BackgroundVisible = boolOr(a.BackgroundVisible, ax.BackgroundVisible)
		f.Axes = append(f.Axes, ax)
	}
	return f
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
