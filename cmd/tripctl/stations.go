package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Parindya2/TripRoute/internal/config"
	"github.com/Parindya2/TripRoute/internal/domain"
	"github.com/Parindya2/TripRoute/internal/repository/ports"
	"github.com/Parindya2/TripRoute/internal/transit"
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List bus stops and train stations near a coordinate",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		lat, _ := cmd.Flags().GetFloat64("lat")
		lon, _ := cmd.Flags().GetFloat64("lon")
		if !cmd.Flags().Changed("lat") {
			lat = cfg.DefaultLatitude
		}
		if !cmd.Flags().Changed("lon") {
			lon = cfg.DefaultLongitude
		}

		live, _ := cmd.Flags().GetBool("live")
		source := stationSource(cfg, live)
		stations, err := source.NearbyStations(cmd.Context(), domain.Coordinates{Latitude: lat, Longitude: lon})
		if err != nil {
			return fmt.Errorf("nearby stations: %w", err)
		}

		if raw, _ := cmd.Flags().GetString("mode"); raw != "" {
			mode, err := domain.ParseTransportMode(raw)
			if err != nil {
				return err
			}
			filtered := stations[:0]
			for _, s := range stations {
				if s.Mode == mode {
					filtered = append(filtered, s)
				}
			}
			stations = filtered
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tDISTANCE\tCODE")
		for _, s := range stations {
			fmt.Fprintf(w, "%s\t%s\t%.1f km\t%s\n", s.Name, s.Mode, s.Distance, s.ATCOCode)
		}
		return w.Flush()
	},
}

func stationSource(cfg config.Config, live bool) ports.StationSource {
	if live || cfg.TransportSource == "live" {
		return transit.NewLiveSource(cfg.TransportBaseURL, cfg.TransportAppID, cfg.TransportAppKey)
	}
	return transit.NewMockSource(cfg.MockSeed)
}

func init() {
	stationsCmd.Flags().Float64("lat", 0, "latitude (defaults to the configured location)")
	stationsCmd.Flags().Float64("lon", 0, "longitude (defaults to the configured location)")
	stationsCmd.Flags().String("mode", "", "train or bus")
	stationsCmd.Flags().Bool("live", false, "query TransportAPI instead of the mock source")
	rootCmd.AddCommand(stationsCmd)
}
