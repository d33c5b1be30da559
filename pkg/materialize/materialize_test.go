package materialize

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/figure"
	"github.com/matzehuels/plotsplit/pkg/geometry"
)

func twoAxisFigure() *figure.Figure {
	f := figure.New()
	f.PaperSize = figure.Size{Width: 20, Height: 10}
	left := f.AddAxis()
	left.Position = figure.Rect{X: 0.1, Y: 0.1, W: 0.4, H: 0.8}
	left.XGrid = true
	left.Title = "left"
	left.AddLine([]float64{0, 1, 2}, []float64{5, 6, 7})
	right := f.AddAxis()
	right.Position = figure.Rect{X: 0.6, Y: 0.1, W: 0.3, H: 0.8}
	right.XLim = figure.Range{Min: -1, Max: 1}
	right.YLim = figure.Range{Min: 0, Max: 10}
	right.AddLine([]float64{0}, []float64{1})
	return f
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestMaterializeFigure(t *testing.T) {
	f := twoAxisFigure()
	before := Live()

	w, err := Materialize(figure.FigureTarget(f))
	if err != nil {
		t.Fatal(err)
	}
	if Live() != before+1 {
		t.Errorf("Live() = %d, want %d", Live(), before+1)
	}
	if diff := cmp.Diff(f, w.Figure()); diff != "" {
		t.Errorf("copy differs (-want +got):\n%s", diff)
	}

	w.Figure().Axes[0].Title = "changed"
	w.Figure().Axes[0].Lines[0].X[0] = 99
	if f.Axes[0].Title != "left" || f.Axes[0].Lines[0].X[0] != 0 {
		t.Error("working copy shares state with the source")
	}

	w.Close()
	w.Close()
	if Live() != before {
		t.Errorf("Live() after double close = %d, want %d", Live(), before)
	}
	if !w.Closed() || w.Figure() != nil {
		t.Error("closed working figure still holds its figure")
	}
}

func TestMaterializeAxis(t *testing.T) {
	f := twoAxisFigure()
	ax := f.Axes[0]
	ax.LooseInset = figure.Insets{Left: 1, Bottom: 0.5, Right: 0.25, Top: 0.75}

	w, err := Materialize(figure.AxisTarget(f, ax))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	got := w.Figure()
	if len(got.Axes) != 1 || got.Axes[0].Handle != ax.Handle {
		t.Fatalf("expected the single target axis, got %d axes", len(got.Axes))
	}
	// box is 8 x 8 cm.
	if !near(got.PaperSize.Width, 9.25) || !near(got.PaperSize.Height, 9.25) {
		t.Errorf("paper = %+v, want 9.25 x 9.25", got.PaperSize)
	}
	box := geometry.ToCentimeters(got.Axes[0].Position, got.PaperSize)
	if !near(box.X, 1) || !near(box.Y, 0.5) || !near(box.W, 8) || !near(box.H, 8) {
		t.Errorf("axis box = %+v", box)
	}
	if len(got.Texts) != 0 {
		t.Error("figure texts should not follow an axis target")
	}
}

func TestMaterializeInvalidTarget(t *testing.T) {
	f := twoAxisFigure()
	stray := figure.NewAxis()

	tests := []struct {
		name   string
		target figure.Target
	}{
		{"zero", figure.Target{}},
		{"nil figure", figure.FigureTarget(nil)},
		{"foreign axis", figure.AxisTarget(f, stray)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := Live()
			_, err := Materialize(tt.target)
			if !errors.Is(err, errors.ErrCodeInvalidTarget) {
				t.Fatalf("expected INVALID_TARGET, got %v", err)
			}
			if Live() != before {
				t.Error("failed materialize leaked a working figure")
			}
		})
	}
}

func TestIsolate(t *testing.T) {
	f := twoAxisFigure()
	geom := geometry.AxisGeometry{X: 2, Y: 1, Width: 8, Height: 8}

	w, err := Isolate(f, 0, geom)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	got := w.Figure()
	if got.PaperSize != (figure.Size{Width: 8, Height: 8}) {
		t.Errorf("paper = %+v", got.PaperSize)
	}
	if got.BackgroundVisible {
		t.Error("figure background should be hidden")
	}
	ax := got.Axes[0]
	if ax.Position != figure.FullRect {
		t.Errorf("position = %+v", ax.Position)
	}
	if ax.Visible || ax.ShowTicks || ax.BackgroundVisible || ax.XGrid || ax.YGrid {
		t.Errorf("decorations left on: %+v", ax)
	}
	if !ax.LooseInset.IsZero() {
		t.Errorf("loose inset = %+v", ax.LooseInset)
	}
	if ax.XLim != (figure.Range{Min: 0, Max: 2}) || ax.YLim != (figure.Range{Min: 5, Max: 7}) {
		t.Errorf("limits not frozen: %+v %+v", ax.XLim, ax.YLim)
	}
	if !f.Axes[0].XGrid || !f.Axes[0].XLim.IsAuto() {
		t.Error("source axis was modified")
	}
}

func TestIsolateRejects(t *testing.T) {
	f := twoAxisFigure()
	if _, err := Isolate(f, 2, geometry.AxisGeometry{Width: 1, Height: 1}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("index: expected INVALID_INPUT, got %v", err)
	}
	if _, err := Isolate(f, 0, geometry.AxisGeometry{Width: 0, Height: 1}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("size: expected INVALID_INPUT, got %v", err)
	}
}

func TestScopeClosesEverything(t *testing.T) {
	f := twoAxisFigure()
	before := Live()

	var s Scope
	whole, err := s.Materialize(figure.FigureTarget(f))
	if err != nil {
		t.Fatal(err)
	}
	iso, err := s.Isolate(whole.Figure(), 1, geometry.AxisGeometry{Width: 3, Height: 4})
	if err != nil {
		t.Fatal(err)
	}
	iso.Close()
	if _, err := s.Isolate(whole.Figure(), 5, geometry.AxisGeometry{Width: 3, Height: 4}); err == nil {
		t.Fatal("expected error")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	s.Close()
	if Live() != before {
		t.Errorf("Live() = %d, want %d", Live(), before)
	}
	if !whole.Closed() {
		t.Error("scope did not close the figure copy")
	}
}
