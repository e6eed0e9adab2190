package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func uploadCmd() *cobra.Command {
	var formField string

	cmd := &cobra.Command{
		Use:   "upload <file>...",
		Short: "Upload listing photos",
		Long: "Upload one or more photos as a single batch. The gateway\n" +
			"normalizes each image and stores a full-size asset plus a\n" +
			"thumbnail; files it cannot process are skipped, not fatal.",
		Example: `  # Upload two photos
  lgq upload front.jpg interior.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			result, err := c.UploadPhotos(context.Background(), formField, args)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(result)
			}

			for _, p := range result.Paths {
				fmt.Println(p)
			}
			if result.Skipped > 0 {
				fmt.Printf("%d file(s) skipped\n", result.Skipped)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formField, "form-field", "photos", "multipart form field name")

	return cmd
}
