package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/okarpenko/listing-gateway/internal/api/client"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Browse listings",
		Long: "Browse enriched listings served by the gateway, with the same\n" +
			"filter and sort vocabulary as the web API.",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var (
		search       string
		brand        string
		model        string
		minPrice     float64
		maxPrice     float64
		region       string
		fuelType     string
		transmission string
		sort         string
		page         int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings with optional filters",
		Example: `  # First page, newest first
  lgq listings list

  # Cheapest Toyotas in Odesa
  lgq listings list --brand Toyota --region Odesa --sort price_asc

  # Price range with pagination
  lgq listings list --min-price 5000 --max-price 15000 --page 2`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListListings(context.Background(), &apiclient.ListListingsParams{
				Search:       search,
				Brand:        brand,
				Model:        model,
				MinPrice:     minPrice,
				MaxPrice:     maxPrice,
				Region:       region,
				FuelType:     fuelType,
				Transmission: transmission,
				Sort:         sort,
				Page:         page,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}

			fmt.Printf("Page %d (%d listings", resp.Number, len(resp.Listings))
			if resp.HasNext {
				fmt.Print(", more available")
			}
			fmt.Print(")\n\n")
			return printListingsTable(resp.Listings)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "free-text search term")
	cmd.Flags().StringVar(&brand, "brand", "", "brand filter")
	cmd.Flags().StringVar(&model, "model", "", "model filter")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price")
	cmd.Flags().StringVar(&region, "region", "", "region filter")
	cmd.Flags().StringVar(&fuelType, "fuel-type", "", "fuel type filter")
	cmd.Flags().StringVar(&transmission, "transmission", "", "transmission filter")
	cmd.Flags().StringVar(&sort, "sort", "",
		"sort token (price_asc, price_desc, date_asc, date_desc, mileage_asc, mileage_desc, views_desc)")
	cmd.Flags().IntVar(&page, "page", 1, "1-based page number")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("listing id must be a number, got %q", args[0])
			}

			c := newClient()
			listing, err := c.GetListing(context.Background(), id)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(listing)
			}
			return printListingDetail(listing)
		},
	}
}
