package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	ephemModel string
	sitesPath  string
)

var rootCmd = &cobra.Command{
	Use:   "parallax",
	Short: "parallax correction of observed sky coordinates",
	Long: `parallax corrects an observed RA/Dec for the displacement caused by
observing from the Earth's surface instead of the solar system
barycenter, given an assumed heliocentric distance.

Two implementations are available: the iterative reference method and a
closed-form approximation that is well over an order of magnitude
faster. The bench subcommand times them against each other.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ephemModel, "ephem", "meeus", "ephemeris model: meeus or usno")
	rootCmd.PersistentFlags().StringVar(&sitesPath, "sites-file", "", "optional TOML file with extra observer sites")
}

func main() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Str("app", "parallax").Logger()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
