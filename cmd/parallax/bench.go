package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thurmanmarka/parallax"
)

var (
	benchRA     float64
	benchDec    float64
	benchTime   string
	benchDist   float64
	benchSite   string
	benchLat    float64
	benchLon    float64
	benchHeight float64
	benchIters  int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "time the reference and approximate methods",
	Long: `bench runs both correction methods repeatedly on the same inputs and
reports per-call wall-clock averages and the speed ratio between them.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().Float64Var(&benchRA, "ra", 88.74513571, "observed right ascension, degrees")
	benchCmd.Flags().Float64Var(&benchDec, "dec", 23.43426475, "observed declination, degrees")
	benchCmd.Flags().StringVar(&benchTime, "time", "2023-03-20T16:00:00Z", "observation time, UTC")
	benchCmd.Flags().Float64Var(&benchDist, "distance", 50.0, "assumed heliocentric distance, AU")
	benchCmd.Flags().StringVar(&benchSite, "site", "ctio", "observer site id")
	benchCmd.Flags().Float64Var(&benchLat, "lat", 0, "observer latitude, degrees (ignored with --site)")
	benchCmd.Flags().Float64Var(&benchLon, "lon", 0, "observer longitude, degrees (ignored with --site)")
	benchCmd.Flags().Float64Var(&benchHeight, "height", 0, "observer height above the ellipsoid, meters")
	benchCmd.Flags().IntVar(&benchIters, "iterations", 2000, "iterations per method")
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchIters < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", benchIters)
	}

	obsTime, err := parseObsTime(benchTime)
	if err != nil {
		return err
	}

	site, err := resolveSite(benchSite, benchLat, benchLon, benchHeight)
	if err != nil {
		return err
	}

	corrector, err := parallax.NewCorrector(ephemModel)
	if err != nil {
		return err
	}

	observed := parallax.SkyCoord{RA: benchRA, Dec: benchDec}

	refCoord, refDist := corrector.Correct(observed, obsTime, site, benchDist)
	if refDist == parallax.NoSolution {
		log.Warn().Float64("distance_au", benchDist).
			Msg("no physical solution for these inputs; timing the failure path")
	}

	refAvg := timeMethod(benchIters, func() {
		corrector.Correct(observed, obsTime, site, benchDist)
	})
	apxAvg := timeMethod(benchIters, func() {
		corrector.CorrectApprox(observed, obsTime, site, benchDist)
	})

	fmt.Printf("=== parallax bench ===\n")
	fmt.Printf("Ephemeris: %s\n", corrector.EphemerisName())
	fmt.Printf("Inputs: RA=%.6f° Dec=%.6f° t=%s d=%.2f AU\n",
		benchRA, benchDec, obsTime.Format(time.RFC3339), benchDist)
	if refDist != parallax.NoSolution {
		fmt.Printf("Corrected (reference): RA=%.6f° Dec=%.6f° geo=%.4f AU\n",
			refCoord.RA, refCoord.Dec, refDist)
	}
	fmt.Printf("Iterations per method: %d\n\n", benchIters)

	fmt.Printf("reference: %12s per call\n", refAvg)
	fmt.Printf("approx:    %12s per call\n", apxAvg)
	if apxAvg > 0 {
		fmt.Printf("speedup:   %.1fx\n", float64(refAvg)/float64(apxAvg))
	}
	return nil
}

func timeMethod(iters int, f func()) time.Duration {
	// One warm-up call keeps one-time costs out of the average.
	f()

	start := time.Now()
	for i := 0; i < iters; i++ {
		f()
	}
	return time.Since(start) / time.Duration(iters)
}
