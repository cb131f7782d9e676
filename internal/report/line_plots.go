package report

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/user/ion_beam_go/internal/analysis"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// OutputFile is the name of the rendered beam characteristics figure.
const OutputFile = "ion_beam_characteristics.png"

const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 6 * vg.Inch
)

var legendLabels = map[string]string{
	analysis.SeriesCurrent:  "Normalized Beam Current",
	analysis.SeriesMassFlow: "Normalized Mass Flow Rate",
	analysis.SeriesThrust:   "Normalized Thrust",
}

var plotColors = []color.Color{
	color.RGBA{R: 31, G: 119, B: 180, A: 255}, // Blue
	color.RGBA{R: 255, G: 127, B: 14, A: 255}, // Orange
	color.RGBA{R: 44, G: 160, B: 44, A: 255},  // Green
}

// CreateBeamPlot draws the normalized current, mass flow and thrust against
// the doubly-charged fraction and returns the figure as PNG bytes.
func CreateBeamPlot(n *analysis.Normalized) ([]byte, error) {
	if n == nil || len(n.Fractions) == 0 {
		return nil, fmt.Errorf("no normalized data to plot")
	}

	p := plot.New()
	p.Title.Text = "Effect of Multiply Charged Ions on Beam Characteristics"
	p.X.Label.Text = "Fraction of Xe²⁺ in Beam"
	p.Y.Label.Text = "Normalized Value"
	p.X.Min = 0
	p.X.Max = 1

	p.Add(plotter.NewGrid())

	for i, s := range n.Series() {
		if len(s.Values) != len(n.Fractions) {
			return nil, fmt.Errorf("%s has %d values for %d fractions", s.Name, len(s.Values), len(n.Fractions))
		}
		pts := make(plotter.XYs, len(s.Values))
		for j, v := range s.Values {
			pts[j].X = n.Fractions[j]
			pts[j].Y = v
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create line for %s: %w", s.Name, err)
		}
		line.Color = plotColors[i%len(plotColors)]
		line.LineStyle.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(legendLabels[s.Name], line)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = vg.Points(10)

	writer, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// SavePlot writes a rendered figure to path.
func SavePlot(path string, img []byte) error {
	if len(img) == 0 {
		return fmt.Errorf("no image data to save to %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot file: %w", err)
	}
	if _, err := f.Write(img); err != nil {
		f.Close()
		return fmt.Errorf("failed to write plot file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close plot file %s: %w", path, err)
	}
	return nil
}
