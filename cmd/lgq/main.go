// Package main is the entry point for the lgq CLI client.
package main

import (
	"github.com/okarpenko/listing-gateway/cmd/lgq/cmd"
)

func main() {
	cmd.Execute()
}
