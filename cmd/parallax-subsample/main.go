// Command parallax-subsample cuts a per-object sample out of a set of
// survey CSV tables. It reads the first `num` unique object IDs from
// <prefix>_eph.csv (first column, header skipped) and copies the
// matching rows of the ephemeris, orbit, and physical tables to
// <prefix>_<num>_*.csv, headers included.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var tableSuffixes = []string{"eph", "orbit", "physical"}

func main() {
	var (
		inputPrefix = flag.String("input-prefix", "mba/mba_sample", "path prefix of the input CSV tables")
		num         = flag.Int("num", 100, "number of objects to keep")
	)
	flag.Parse()

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Str("app", "parallax-subsample").Logger()

	if *num < 1 {
		log.Fatal().Int("num", *num).Msg("num must be at least 1")
	}

	ephPath := fmt.Sprintf("%s_eph.csv", *inputPrefix)
	ids, err := collectIDs(ephPath, *num)
	if err != nil {
		log.Fatal().Err(err).Str("input", ephPath).Msg("failed to collect object ids")
	}
	log.Info().Int("ids", len(ids)).Str("input", ephPath).Msg("collected object ids")

	for _, suffix := range tableSuffixes {
		in := fmt.Sprintf("%s_%s.csv", *inputPrefix, suffix)
		out := fmt.Sprintf("%s_%d_%s.csv", *inputPrefix, *num, suffix)

		rows, err := copySubset(in, out, ids)
		if err != nil {
			log.Fatal().Err(err).Str("input", in).Msg("failed to copy subset")
		}
		log.Info().Str("output", out).Int("rows", rows).Msg("wrote subset")
	}
}

// collectIDs returns the first num unique object IDs from the file, or
// all of them if the file holds fewer. The first line is a header.
func collectIDs(path string, num int) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ids := make(map[string]struct{}, num)

	sc := bufio.NewScanner(f)
	header := true
	for sc.Scan() {
		if header {
			header = false
			continue
		}
		id, _, _ := strings.Cut(sc.Text(), ",")
		ids[id] = struct{}{}

		if len(ids) >= num {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// copySubset copies the header line plus every row whose first column
// is in ids, preserving the rows byte for byte. It returns the number
// of data rows written.
func copySubset(inPath, outPath string, ids map[string]struct{}) (int, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	w := bufio.NewWriter(out)

	rows := 0
	header := true
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		id, _, _ := strings.Cut(line, ",")

		_, keep := ids[id]
		if header || keep {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return rows, err
			}
			if !header {
				rows++
			}
		}
		header = false
	}
	if err := sc.Err(); err != nil {
		return rows, err
	}

	if err := w.Flush(); err != nil {
		return rows, err
	}
	return rows, out.Close()
}
