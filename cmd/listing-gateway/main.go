// Package main is the entry point for the listing gateway server.
package main

import (
	"os"

	"github.com/okarpenko/listing-gateway/cmd/listing-gateway/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
