package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Parindya2/TripRoute/internal/catalog"
	"github.com/Parindya2/TripRoute/internal/config"
	"github.com/Parindya2/TripRoute/internal/domain"
	"github.com/Parindya2/TripRoute/internal/repository/ports"
	"github.com/Parindya2/TripRoute/internal/service"
	"github.com/Parindya2/TripRoute/internal/transit"
)

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "Show departure options for a destination",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		destinationID, _ := cmd.Flags().GetString("destination")
		if destinationID == "" {
			return fmt.Errorf("must specify a destination id using --destination")
		}

		items, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		destination, err := service.NewDestinationService(items).ByID(destinationID)
		if err != nil {
			return fmt.Errorf("destination %q: %w", destinationID, err)
		}

		station, _ := cmd.Flags().GetString("station")
		if station == "" {
			station = destination.Name + " Station"
		}

		rawMode, _ := cmd.Flags().GetString("mode")
		mode, err := domain.ParseTransportMode(rawMode)
		if err != nil {
			return err
		}

		live, _ := cmd.Flags().GetBool("live")
		routes, err := scheduleSource(cfg, live).Schedules(cmd.Context(), ports.ScheduleRequest{
			DestinationID:   destination.ID,
			DestinationName: destination.Name,
			StationName:     station,
			StationCode:     destination.StationCode,
			Mode:            mode,
		})
		if err != nil {
			return fmt.Errorf("schedules: %w", err)
		}

		fmt.Printf("%s departures from %s towards %s\n\n", mode, station, destination.Name)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VEHICLE\tDEPARTS\tARRIVES\tDURATION\tPRICE\tOPERATOR\tSTATUS")
		for _, r := range routes {
			fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\t£%d\t%s\t%s\n",
				r.VehicleName, r.VehicleNumber, r.DepartureTime, r.ArrivalTime,
				r.Duration, r.Price, r.Operator, r.Status)
		}
		return w.Flush()
	},
}

func scheduleSource(cfg config.Config, live bool) ports.ScheduleSource {
	if live || cfg.TransportSource == "live" {
		return transit.NewLiveSource(cfg.TransportBaseURL, cfg.TransportAppID, cfg.TransportAppKey)
	}
	return transit.NewMockSource(cfg.MockSeed)
}

func init() {
	schedulesCmd.Flags().String("destination", "", "destination id from the catalog")
	schedulesCmd.Flags().String("station", "", "departure station name override")
	schedulesCmd.Flags().String("mode", "train", "train or bus")
	schedulesCmd.Flags().Bool("live", false, "query TransportAPI instead of the mock source")
	rootCmd.AddCommand(schedulesCmd)
}
