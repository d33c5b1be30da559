package export

import (
	"math"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/geometry"
)

// VerifyTolerance is the largest page size difference, in cm, Verify accepts.
const VerifyTolerance = 0.01

// PageSize returns the width and height, in cm, of the first page of the
// PDF at path.
func PageSize(path string) (width, height float64, err error) {
	r, err := pdf.Open(path, nil)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeVerifyFailed, err, "open %s", path)
	}
	defer r.Close()

	_, page, err := pagetree.GetPage(r, 0)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeVerifyFailed, err, "read first page of %s", path)
	}
	box, err := pdf.GetRectangle(r, page["MediaBox"])
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeVerifyFailed, err, "read media box of %s", path)
	}
	if box == nil {
		return 0, 0, errors.New(errors.ErrCodeVerifyFailed, "%s has no media box", path)
	}
	return geometry.PointsToCm(box.URx - box.LLx), geometry.PointsToCm(box.URy - box.LLy), nil
}

// Verify checks that the PDF of p has the page size its markup declares.
func Verify(p Pair) error {
	w, h, err := PageSize(p.Graphics)
	if err != nil {
		return err
	}
	if math.Abs(w-p.Meta.Width) > VerifyTolerance || math.Abs(h-p.Meta.Height) > VerifyTolerance {
		return errors.New(errors.ErrCodeVerifyFailed,
			"%s is %.3fx%.3f cm but its markup declares %gx%g cm",
			p.Graphics, w, h, p.Meta.Width, p.Meta.Height)
	}
	return nil
}
