package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/figure"
	"github.com/matzehuels/plotsplit/pkg/io"
)

func writeFigure(t *testing.T, dir string, axes int) (string, *figure.Figure) {
	t.Helper()
	f := figure.New()
	for i := 0; i < axes; i++ {
		ax := f.AddAxis()
		ax.Position = figure.Rect{X: float64(i) / float64(axes), Y: 0, W: 1 / float64(axes), H: 1}
		ax.Title = "panel"
		ax.XGrid = true
		ax.AddLine([]float64{0, 1, 2}, []float64{1, 3, 2})
	}
	path := filepath.Join(dir, "fig.json")
	if err := io.ExportJSON(f, path); err != nil {
		t.Fatal(err)
	}
	return path, f
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := New(&out, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	cfg := filepath.Join(t.TempDir(), "none.toml")
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestExportCommandSplit(t *testing.T) {
	dir := t.TempDir()
	path, _ := writeFigure(t, dir, 2)
	base := filepath.Join(dir, "out")

	out, err := execute(t, "export", path, "-o", base, "--size", "16,6", "--line-width", "1.5")
	if err != nil {
		t.Fatalf("export: %v\n%s", err, out)
	}
	for _, name := range []string{"out-1.pdf", "out-1.tikz", "out-2.pdf", "out-2.tikz"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s", name)
		}
	}
	if n := strings.Count(out, "each axis is exported as its own file pair"); n != 1 {
		t.Errorf("multi-axis warning shown %d times, want once:\n%s", n, out)
	}

	markup, err := os.ReadFile(filepath.Join(dir, "out-2.tikz"))
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"xmajorgrids,", "width=8cm,", "height=6cm,", "title={panel},", "{out-2.pdf};"} {
		if !strings.Contains(string(markup), s) {
			t.Errorf("markup misses %q:\n%s", s, markup)
		}
	}
}

func TestExportCommandSingleAxis(t *testing.T) {
	dir := t.TempDir()
	path, _ := writeFigure(t, dir, 3)

	out, err := execute(t, "export", path, "--axis", "2", "--ext", ".tex", "--verify")
	if err != nil {
		t.Fatalf("export: %v\n%s", err, out)
	}
	for _, name := range []string{"fig.pdf", "fig.tex"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s", name)
		}
	}
}

func TestExportCommandDirect(t *testing.T) {
	dir := t.TempDir()
	path, _ := writeFigure(t, dir, 1)
	target := filepath.Join(dir, "preview.svg")

	if out, err := execute(t, "export", path, "--direct", "-o", target); err != nil {
		t.Fatalf("export: %v\n%s", err, out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("direct export did not write SVG")
	}

	if _, err := execute(t, "export", path, "--direct", "-o", filepath.Join(dir, "x.gif")); !errors.Is(err, errors.ErrCodeUnsupportedOutput) {
		t.Errorf("expected UNSUPPORTED_OUTPUT, got %v", err)
	}
}

func TestExportCommandErrors(t *testing.T) {
	dir := t.TempDir()
	path, _ := writeFigure(t, dir, 2)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"export", filepath.Join(dir, "nope.json")}, errors.ErrCodeFileNotFound},
		{"axis index", []string{"export", path, "--axis", "3"}, errors.ErrCodeInvalidTarget},
		{"axis handle", []string{"export", path, "--axis", "not-a-handle"}, errors.ErrCodeInvalidTarget},
		{"size", []string{"export", path, "--size", "10"}, errors.ErrCodeInvalidInput},
		{"policy", []string{"export", path, "--policy", "merge"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); !errors.Is(err, tt.code) {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestResolveTarget(t *testing.T) {
	f := figure.New()
	a := f.AddAxis()
	b := f.AddAxis()

	tests := []struct {
		sel  string
		want *figure.Axis
	}{
		{"", nil},
		{string(f.Handle), nil},
		{"1", a},
		{"2", b},
		{string(b.Handle), b},
	}
	for _, tt := range tests {
		got, err := resolveTarget(f, tt.sel)
		if err != nil {
			t.Fatalf("%q: %v", tt.sel, err)
		}
		if got.Axis() != tt.want {
			t.Errorf("%q: got axis %v, want %v", tt.sel, got.Axis(), tt.want)
		}
	}
	for _, bad := range []string{"0", "3", "-1", "x"} {
		if _, err := resolveTarget(f, bad); !errors.Is(err, errors.ErrCodeInvalidTarget) {
			t.Errorf("%q: expected INVALID_TARGET, got %v", bad, err)
		}
	}
}
