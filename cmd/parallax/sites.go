package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/thurmanmarka/parallax"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "list known observer sites",
	Long: `sites lists the built-in observer site registry, merged with any
sites declared in the --sites-file TOML file.`,
	RunE: runSites,
}

func init() {
	rootCmd.AddCommand(sitesCmd)
}

func runSites(cmd *cobra.Command, args []string) error {
	merged := make(map[string]parallax.Site)
	for _, id := range parallax.SiteIDs() {
		s, _ := parallax.LookupSite(id)
		merged[id] = s
	}

	if sitesPath != "" {
		extra, err := loadSitesFile(sitesPath)
		if err != nil {
			return err
		}
		// File entries shadow built-ins with the same id.
		for id, s := range extra {
			merged[id] = s
		}
	}

	ids := make([]string, 0, len(merged))
	for id := range merged {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		s := merged[id]
		fmt.Printf("%-14s lat=%10.6f lon=%11.6f h=%6.0fm  %s\n",
			id, s.Lat, s.Lon, s.Height, s.Name)
	}
	return nil
}
