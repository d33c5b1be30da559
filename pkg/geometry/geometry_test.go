package geometry

import (
	"math"
	"testing"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/figure"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

type fixedMeasurer struct {
	inset      figure.Insets
	gotW, gotH float64
	calls      int
}

func (m *fixedMeasurer) TightInset(_ *figure.Axis, w, h float64) (figure.Insets, error) {
	m.calls++
	m.gotW, m.gotH = w, h
	return m.inset, nil
}

func TestUnitConversion(t *testing.T) {
	if !near(CmToPoints(2.54), 72) {
		t.Errorf("CmToPoints(2.54) = %v, want 72", CmToPoints(2.54))
	}
	if !near(PointsToCm(72), 2.54) {
		t.Errorf("PointsToCm(72) = %v, want 2.54", PointsToCm(72))
	}
	for _, v := range []float64{0, 1, 10.5, 29.7} {
		if !near(PointsToCm(CmToPoints(v)), v) {
			t.Errorf("round trip of %v = %v", v, PointsToCm(CmToPoints(v)))
		}
	}
}

func TestNormalizedRoundTrip(t *testing.T) {
	paper := figure.Size{Width: 20, Height: 10}
	r := figure.Rect{X: 0.1, Y: 0.2, W: 0.5, H: 0.25}
	cm := ToCentimeters(r, paper)
	if !near(cm.X, 2) || !near(cm.Y, 2) || !near(cm.W, 10) || !near(cm.H, 2.5) {
		t.Errorf("ToCentimeters() = %+v", cm)
	}
	back := ToNormalized(cm, paper)
	if !near(back.X, r.X) || !near(back.Y, r.Y) || !near(back.W, r.W) || !near(back.H, r.H) {
		t.Errorf("ToNormalized() = %+v, want %+v", back, r)
	}
}

func TestResolvePaperSize(t *testing.T) {
	f := figure.New()
	f.PaperSize = figure.Size{Width: 14, Height: 9}

	tests := []struct {
		name      string
		requested []float64
		want      figure.Size
		wantErr   bool
	}{
		{"no request uses figure paper", nil, figure.Size{Width: 14, Height: 9}, false},
		{"empty request uses figure paper", []float64{}, figure.Size{Width: 14, Height: 9}, false},
		{"explicit request", []float64{10, 8}, figure.Size{Width: 10, Height: 8}, false},
		{"one value", []float64{10}, figure.Size{}, true},
		{"three values", []float64{10, 8, 1}, figure.Size{}, true},
		{"zero width", []float64{0, 8}, figure.Size{}, true},
		{"negative height", []float64{10, -1}, figure.Size{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePaperSize(f, tt.requested)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolvePaperSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ResolvePaperSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolvePaperSizeRejectsBrokenFigure(t *testing.T) {
	f := figure.New()
	f.PaperSize = figure.Size{}
	if _, err := ResolvePaperSize(f, nil); err == nil {
		t.Error("zero figure paper size should be rejected")
	}
}

func TestResolveAxisGeometry(t *testing.T) {
	ax := figure.NewAxis()
	ax.Position = figure.Rect{X: 0.5, Y: 0, W: 0.5, H: 1}
	m := &fixedMeasurer{inset: figure.Insets{Left: 1, Bottom: 0.75, Right: 0.25, Top: 0.5}}

	g, err := ResolveAxisGeometry(ax, figure.Size{Width: 20, Height: 8}, m)
	if err != nil {
		t.Fatalf("ResolveAxisGeometry() error: %v", err)
	}

	if !near(g.X, 10) || !near(g.Y, 0) || !near(g.Width, 10) || !near(g.Height, 8) {
		t.Errorf("geometry = %+v", g)
	}
	if m.calls != 1 || !near(m.gotW, 10) || !near(m.gotH, 8) {
		t.Errorf("measurer called %d times with %vx%v", m.calls, m.gotW, m.gotH)
	}

	want := m.inset.Pad(InsetPadding)
	if g.Inset != want {
		t.Errorf("Inset = %+v, want %+v", g.Inset, want)
	}
	if ax.LooseInset != want {
		t.Errorf("LooseInset = %+v, want padded inset %+v", ax.LooseInset, want)
	}
	if !near(g.OuterWidth(), 10+1.25+0.02) || !near(g.OuterHeight(), 8+1.25+0.02) {
		t.Errorf("outer = %vx%v", g.OuterWidth(), g.OuterHeight())
	}
}

func TestResolveAxisGeometryRejectsEmptyBox(t *testing.T) {
	ax := figure.NewAxis()
	ax.Position = figure.Rect{W: 0, H: 1}
	if _, err := ResolveAxisGeometry(ax, figure.Size{Width: 10, Height: 10}, &fixedMeasurer{}); err == nil {
		t.Error("zero-width axis should be rejected")
	}
}
