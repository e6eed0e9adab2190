package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/okarpenko/listing-gateway/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printListingsTable(listings []domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tBRAND\tMODEL\tYEAR\tPRICE\tMILEAGE\tREGION\tPHOTOS\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%d\t%s\t%s\t%d\t%.0f %s\t%d\t%s\t%d\n",
			l.ID,
			stringOrDash(l.BrandName),
			stringOrDash(l.ModelName),
			l.Year,
			l.Price,
			l.Currency,
			l.Mileage,
			l.Region,
			len(l.Photos),
		)
	}
	return tw.finish()
}

func printListingDetail(l *domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%d\n", l.ID)
	tw.writef("Brand:\t%s\n", stringOrDash(l.BrandName))
	tw.writef("Model:\t%s\n", stringOrDash(l.ModelName))
	tw.writef("Year:\t%d\n", l.Year)
	tw.writef("Price:\t%.2f %s\n", l.Price, l.Currency)
	tw.writef("Region:\t%s\n", l.Region)
	tw.writef("Mileage:\t%d\n", l.Mileage)
	if l.FuelType != "" {
		tw.writef("Fuel:\t%s\n", l.FuelType)
	}
	if l.Transmission != "" {
		tw.writef("Transmission:\t%s\n", l.Transmission)
	}
	if l.EngineVolume > 0 {
		tw.writef("Engine:\t%.1fL\n", l.EngineVolume)
	}
	tw.writef("Views:\t%d\n", l.ViewCount)
	if l.Description != "" {
		tw.writef("Description:\t%s\n", truncate(l.Description, 80))
	}
	for _, p := range l.Photos {
		tw.writef("Photo:\t%s\n", p)
	}
	return tw.finish()
}

func printBrandsTable(brands []domain.Brand) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\n")
	for _, b := range brands {
		tw.writef("%d\t%s\n", b.ID, b.Name)
	}
	return tw.finish()
}

func printModelsTable(models []domain.Model) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\n")
	for _, m := range models {
		tw.writef("%d\t%s\n", m.ID, m.Name)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func stringOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
