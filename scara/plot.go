package scara

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"go.viam.com/scarakin/spatialmath"
)

// View selects the projection used by PlotLinkFrames.
type View string

const (
	// TopView projects onto the base xy plane.
	TopView View = "top"
	// SideView projects onto the base xz plane.
	SideView View = "side"
)

// PlotLinkFrames draws the origins of the given frames, joined in order, and saves the figure to path. The image
// format is taken from the file extension.
func PlotLinkFrames(frames []spatialmath.Transform, names []string, view View, path string) error {
	if len(frames) == 0 {
		return errors.New("no frames to plot")
	}
	if len(names) != len(frames) {
		return errors.Errorf("got %d frame names for %d frames", len(names), len(frames))
	}

	p := plot.New()
	p.Add(plotter.NewGrid())
	p.X.Label.Text = "x (m)"

	xys := make(plotter.XYs, len(frames))
	for i, f := range frames {
		pt := f.Point()
		switch view {
		case TopView:
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		case SideView:
			xys[i] = plotter.XY{X: pt.X, Y: pt.Z}
		default:
			return errors.Errorf("unknown view %q", view)
		}
	}
	switch view {
	case TopView:
		p.Title.Text = "arm, top view"
		p.Y.Label.Text = "y (m)"
	case SideView:
		p.Title.Text = "arm, side view"
		p.Y.Label.Text = "z (m)"
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.Width = vg.Points(2)
	points.Radius = vg.Points(3)
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return err
	}
	p.Add(line, points, labels)
	p.Legend.Add("links", line, points)
	p.Legend.Top = true

	return p.Save(5*vg.Inch, 5*vg.Inch, path)
}
