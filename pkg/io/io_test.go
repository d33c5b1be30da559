package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/figure"
)

const sampleTOML = `
[paper_size]
width = 10
height = 8

[[axes]]
title = "Response"
xlabel = "t"
xgrid = true
show_ticks = false
xlim = { min = -10, max = 10 }
ylim = { min = 0, max = 100 }

[[axes.lines]]
x = [-10.0, 0.0, 10.0]
y = [0.0, 50.0, 100.0]
width = 1.5
`

func TestReadTOML(t *testing.T) {
	f, err := ReadTOML(strings.NewReader(sampleTOML))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}
	if f.PaperSize != (figure.Size{Width: 10, Height: 8}) {
		t.Errorf("PaperSize = %v", f.PaperSize)
	}
	if len(f.Axes) != 1 {
		t.Fatalf("got %d axes, want 1", len(f.Axes))
	}
	ax := f.Axes[0]
	if ax.Title != "Response" || ax.XLabel != "t" || !ax.XGrid || ax.YGrid {
		t.Errorf("axis fields not decoded: %+v", ax)
	}
	if ax.ShowTicks {
		t.Error("show_ticks = false was ignored")
	}
	if !ax.Visible || ax.Position != figure.FullRect {
		t.Error("omitted axis fields should keep defaults")
	}
	if ax.XLim != (figure.Range{Min: -10, Max: 10}) || ax.YLim != (figure.Range{Min: 0, Max: 100}) {
		t.Errorf("limits = %v %v", ax.XLim, ax.YLim)
	}
	if len(ax.Lines) != 1 || ax.Lines[0].Width != 1.5 {
		t.Errorf("lines not decoded: %+v", ax.Lines)
	}
	if f.Handle == "" || ax.Handle == "" || ax.Lines[0].Handle == "" {
		t.Error("handles should be minted on import")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	f := figure.New()
	ax := f.AddAxis()
	ax.XLim = figure.Range{Min: 0, Max: 1}
	ax.AddLine([]float64{0, 1}, []float64{1, 0}).Color = "#ff0000"
	f.AddText(0.1, 0.9, "a")

	var buf bytes.Buffer
	if err := WriteJSON(f, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if diff := cmp.Diff(f, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"no axes", `{"axes": []}`, errors.ErrCodeInvalidInput},
		{"mismatched data", `{"axes": [{"lines": [{"x": [1, 2], "y": [1]}]}]}`, errors.ErrCodeInvalidInput},
		{"malformed", `{"axes": [`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.data))
			if err == nil {
				t.Fatal("ReadJSON() should fail")
			}
			if tt.code != "" && !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestImportFigure(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "fig.toml")
	if err := os.WriteFile(tomlPath, []byte(sampleTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportFigure(tomlPath); err != nil {
		t.Errorf("ImportFigure(toml) error: %v", err)
	}

	f := figure.New()
	f.AddAxis()
	jsonPath := filepath.Join(dir, "fig.json")
	if err := ExportJSON(f, jsonPath); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	got, err := ImportFigure(jsonPath)
	if err != nil {
		t.Fatalf("ImportFigure(json) error: %v", err)
	}
	if got.Handle != f.Handle {
		t.Errorf("Handle = %s, want %s", got.Handle, f.Handle)
	}

	if _, err := ImportFigure(filepath.Join(dir, "fig.yaml")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("unknown extension: error = %v, want INVALID_FORMAT", err)
	}
	if _, err := ImportFigure(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: error = %v, want FILE_NOT_FOUND", err)
	}
}
