package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/thurmanmarka/parallax"
)

var (
	correctRA     float64
	correctDec    float64
	correctTime   string
	correctDist   float64
	correctSite   string
	correctLat    float64
	correctLon    float64
	correctHeight float64
	correctMethod string
	correctJSON   bool
)

var correctCmd = &cobra.Command{
	Use:   "correct",
	Short: "run parallax correction on one coordinate",
	Long: `correct runs the requested correction method(s) on a single observed
coordinate and prints the corrected barycentric RA/Dec plus the solved
observer-to-object distance.`,
	RunE: runCorrect,
}

func init() {
	rootCmd.AddCommand(correctCmd)

	correctCmd.Flags().Float64Var(&correctRA, "ra", 0, "observed right ascension, degrees")
	correctCmd.Flags().Float64Var(&correctDec, "dec", 0, "observed declination, degrees")
	correctCmd.Flags().StringVar(&correctTime, "time", "", "observation time, UTC (RFC3339 or YYYY-MM-DDTHH:MM; default now)")
	correctCmd.Flags().Float64Var(&correctDist, "distance", 0, "assumed heliocentric distance, AU")
	correctCmd.Flags().StringVar(&correctSite, "site", "", "observer site id (see the sites subcommand)")
	correctCmd.Flags().Float64Var(&correctLat, "lat", 0, "observer latitude, degrees (ignored with --site)")
	correctCmd.Flags().Float64Var(&correctLon, "lon", 0, "observer longitude, degrees (ignored with --site)")
	correctCmd.Flags().Float64Var(&correctHeight, "height", 0, "observer height above the ellipsoid, meters")
	correctCmd.Flags().StringVar(&correctMethod, "method", "both", "correction method: reference, approx, or both")
	correctCmd.Flags().BoolVar(&correctJSON, "json", false, "output result as JSON")

	_ = correctCmd.MarkFlagRequired("distance")
}

type methodResult struct {
	Method   string             `json:"method"`
	Coord    *parallax.SkyCoord `json:"coord,omitempty"`
	Distance float64            `json:"geocentric_distance_au"`
	Solved   bool               `json:"solved"`
}

type correctOutput struct {
	Ephemeris string            `json:"ephemeris"`
	Time      time.Time         `json:"time"`
	Site      parallax.Site     `json:"site"`
	Observed  parallax.SkyCoord `json:"observed"`
	AssumedAU float64           `json:"assumed_heliocentric_au"`
	Results   []methodResult    `json:"results"`
}

func runCorrect(cmd *cobra.Command, args []string) error {
	methods, err := methodsFor(correctMethod)
	if err != nil {
		return err
	}

	obsTime, err := parseObsTime(correctTime)
	if err != nil {
		return err
	}

	site, err := resolveSite(correctSite, correctLat, correctLon, correctHeight)
	if err != nil {
		return err
	}

	corrector, err := parallax.NewCorrector(ephemModel)
	if err != nil {
		return err
	}

	observed := parallax.SkyCoord{RA: correctRA, Dec: correctDec}

	out := correctOutput{
		Ephemeris: corrector.EphemerisName(),
		Time:      obsTime,
		Site:      site,
		Observed:  observed,
		AssumedAU: correctDist,
	}
	for _, m := range methods {
		coord, dist := corrector.CorrectFor(m, observed, obsTime, site, correctDist)

		res := methodResult{
			Method:   m.String(),
			Distance: dist,
			Solved:   dist != parallax.NoSolution,
		}
		if res.Solved {
			c := coord
			res.Coord = &c
		}
		out.Results = append(out.Results, res)
	}

	if correctJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printCorrect(out)
	return nil
}

func methodsFor(name string) ([]parallax.Method, error) {
	switch name {
	case "reference":
		return []parallax.Method{parallax.Reference}, nil
	case "approx":
		return []parallax.Method{parallax.Approximate}, nil
	case "both":
		return []parallax.Method{parallax.Reference, parallax.Approximate}, nil
	default:
		return nil, fmt.Errorf("unknown method %q (use reference, approx, or both)", name)
	}
}

func printCorrect(out correctOutput) {
	fmt.Printf("Parallax correction at %s (ephemeris %s)\n",
		out.Time.Format(time.RFC3339), out.Ephemeris)
	siteName := out.Site.Name
	if siteName == "" {
		siteName = "custom"
	}
	fmt.Printf("Site: %s (lat=%.6f lon=%.6f h=%.0fm)\n",
		siteName, out.Site.Lat, out.Site.Lon, out.Site.Height)
	fmt.Printf("Observed: RA=%.8f° Dec=%.8f°\n", out.Observed.RA, out.Observed.Dec)
	fmt.Printf("Assumed heliocentric distance: %.4f AU\n", out.AssumedAU)

	for _, res := range out.Results {
		fmt.Printf("\n%s:\n", res.Method)
		if !res.Solved {
			fmt.Printf("  no physical solution (line of sight misses the %.4f AU sphere)\n", out.AssumedAU)
			continue
		}
		fmt.Printf("  RA        : %.8f°\n", res.Coord.RA)
		fmt.Printf("  Dec       : %.8f°\n", res.Coord.Dec)
		fmt.Printf("  Barycentric distance : %.6f AU\n", res.Coord.Dist)
		fmt.Printf("  Geocentric distance  : %.6f AU\n", res.Distance)
	}
}
