package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func brandsCmd() *cobra.Command {
	brandsRoot := &cobra.Command{
		Use:   "brands",
		Short: "Inspect the brand and model catalogs",
	}

	brandsRoot.AddCommand(
		brandsListCmd(),
		brandsModelsCmd(),
	)

	return brandsRoot
}

func brandsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all brands",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			brands, err := c.ListBrands(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(brands)
			}

			if len(brands) == 0 {
				fmt.Println("No brands found.")
				return nil
			}
			return printBrandsTable(brands)
		},
	}
}

func brandsModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models <brand-id>",
		Short: "List models for a brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			brandID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("brand id must be a number, got %q", args[0])
			}

			c := newClient()
			models, err := c.ListModels(context.Background(), brandID)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(models)
			}

			if len(models) == 0 {
				fmt.Println("No models found.")
				return nil
			}
			return printModelsTable(models)
		},
	}
}
