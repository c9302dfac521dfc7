package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Parindya2/TripRoute/internal/catalog"
	"github.com/Parindya2/TripRoute/internal/domain"
	"github.com/Parindya2/TripRoute/internal/service"
)

var destinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "List destinations from the embedded catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		category, _ := cmd.Flags().GetString("category")
		if category == "" {
			category = domain.CategoryAll
		}

		items, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		matches := service.NewDestinationService(items).Filter(search, category)
		if len(matches) == 0 {
			fmt.Println("No destinations match.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tLOCATION\tCATEGORY\tRATING\tSTATION")
		for _, d := range matches {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f\t%s\n",
				d.ID, d.Name, d.Location, d.Category, d.Rating, d.StationCode)
		}
		return w.Flush()
	},
}

func init() {
	destinationsCmd.Flags().String("search", "", "case-insensitive name/location filter")
	destinationsCmd.Flags().String("category", "", "category filter (All matches everything)")
	rootCmd.AddCommand(destinationsCmd)
}
