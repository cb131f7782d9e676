package main

import (
	"fmt"
	"os"

	kitlog "github.com/go-kit/kit/log"

	"github.com/user/ion_beam_go/internal/analysis"
	"github.com/user/ion_beam_go/internal/beam"
	"github.com/user/ion_beam_go/internal/report"
)

func main() {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "component", "ion_beam")

	if err := run(logger, report.OutputFile); err != nil {
		logger.Log("level", "error", "err", err)
		os.Exit(1)
	}
}

// run sweeps the xenon beam model, normalizes the results and writes the
// figure to outPath.
func run(logger kitlog.Logger, outPath string) error {
	consts := beam.Xenon()
	logger.Log("stage", "constants", "charge", consts.Charge, "ion_mass", consts.IonMass, "voltage", consts.Voltage)

	grid, err := beam.FractionGrid(beam.DefaultSamples)
	if err != nil {
		return err
	}
	sweep, err := beam.Run(consts, grid)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}
	logger.Log("stage", "sweep", "samples", sweep.Len(),
		"v1", beam.Velocity(consts, 1), "v2", beam.Velocity(consts, 2))

	norm, err := analysis.Normalize(sweep)
	if err != nil {
		return fmt.Errorf("normalization failed: %w", err)
	}
	for _, s := range norm.Summaries {
		logger.Log("stage", "normalize", "series", s.Name, "max", s.Max,
			"min_norm", s.MinNorm, "peak_fraction", s.PeakFraction)
	}

	img, err := report.CreateBeamPlot(norm)
	if err != nil {
		return fmt.Errorf("plot failed: %w", err)
	}
	if err := report.SavePlot(outPath, img); err != nil {
		return err
	}
	logger.Log("stage", "render", "file", outPath, "bytes", len(img))
	return nil
}
