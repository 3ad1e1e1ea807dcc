package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tcxfix/internal/gpx"
	"tcxfix/internal/heartrate"
	"tcxfix/internal/tcx"
	"tcxfix/internal/track"
)

// Fixed file names, resolved against the working directory.
const (
	gpsFile    = "GPS.gpx"
	hrFile     = "HR.gpx"
	outputFile = "output_fixed.tcx"
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tcxfix <distance-km>",
		Short: "Merge a GPS track with heart-rate data and rescale its distance",
		Long: `tcxfix reads GPS.gpx and HR.gpx from the working directory, attaches
the closest heart-rate sample to every GPS point, rescales the
accumulated distance so the total matches the given reference distance
in kilometers, and writes the result as output_fixed.tcx.

The distance accepts both "." and "," as decimal separator. HR.gpx is
optional; without it the output simply carries no heart-rate values.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(distanceArg string) error {
	targetKm, err := strconv.ParseFloat(strings.ReplaceAll(distanceArg, ",", "."), 64)
	if err != nil {
		return fmt.Errorf("%q is not a valid distance in kilometers", distanceArg)
	}

	fmt.Printf("--- Target Distance: %g km ---\n", targetKm)

	samples, err := heartrate.Load(hrFile)
	if err != nil {
		return fmt.Errorf("load heart rate data: %w", err)
	}
	fmt.Printf("Loaded %d heart rate points.\n", len(samples))

	doc, err := gpx.Parse(gpsFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("missing input file %s: %w", gpsFile, err)
		}
		return fmt.Errorf("parse %s: %w", gpsFile, err)
	}

	points, err := track.Build(doc.FlattenPoints(), samples)
	if err != nil {
		return fmt.Errorf("%s: %w", gpsFile, err)
	}

	rawTotal := points[len(points)-1].RawDistance
	fmt.Printf("Original GPS Distance: %.3f km\n", rawTotal/1000)

	targetMeters := targetKm * 1000
	ratio := track.Rescale(points, targetMeters)
	fmt.Printf("Correction Factor: %.4f\n", ratio)

	start := points[0].Time
	duration := points[len(points)-1].Time.Sub(start).Seconds()

	if err := tcx.Build(points, start, duration, targetMeters).Write(outputFile); err != nil {
		return fmt.Errorf("write %s: %w", outputFile, err)
	}

	fmt.Printf("Success! Created file: %s\n", outputFile)
	return nil
}
