package polysect

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// How many points the polynomial gets sampled at for rendering
const plotSamples = 500

// WritePlot renders the polynomial over the solve interval and writes the
// resulting PNG to w. The sampled range is [a, b] padded on both sides by
// half the interval width. If root is not nil, the root gets marked and
// annotated, otherwise only the curve and the axes are drawn.
func WritePlot(w io.Writer, poly Polynomial, a, b float64, root *float64) error {
	margin := 0.5 * math.Abs(b-a)
	lo, hi := a-margin, b+margin

	points := make(plotter.XYs, plotSamples)
	step := (hi - lo) / float64(plotSamples-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := range points {
		x := lo + step*float64(i)
		y := poly.Eval(x)
		points[i].X, points[i].Y = x, y
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	p := plot.New()
	p.Title.Text = "Polynomial Visualization & Bisection Root"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Add(plotter.NewGrid())

	// Reference lines through the origin
	xAxis, err := plotter.NewLine(plotter.XYs{{X: lo, Y: 0}, {X: hi, Y: 0}})
	if err != nil {
		return err
	}
	xAxis.Color = color.Black
	yAxis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: minY}, {X: 0, Y: maxY}})
	if err != nil {
		return err
	}
	yAxis.Color = color.Black
	p.Add(xAxis, yAxis)

	curve, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	curve.Color = color.RGBA{B: 255, A: 255}
	p.Add(curve)
	p.Legend.Add(fmt.Sprintf("f(x) = %s", poly), curve)

	if root != nil {
		marker, err := plotter.NewScatter(plotter.XYs{{X: *root, Y: 0}})
		if err != nil {
			return err
		}
		marker.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		marker.GlyphStyle.Radius = vg.Points(4)
		p.Add(marker)
		p.Legend.Add(fmt.Sprintf("Root ~ %.4f", *root), marker)

		annotation, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: *root, Y: 0}},
			Labels: []string{fmt.Sprintf("Root: %.4f", *root)},
		})
		if err != nil {
			return err
		}
		p.Add(annotation)
	}

	writer, err := p.WriterTo(10*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return errors.Join(fmt.Errorf("failed to render plot"), err)
	}
	_, err = writer.WriteTo(w)
	return err
}
