// Package main is the entry point for the deal-scanner service.
package main

import (
	"os"

	"github.com/donaldgifford/deal-scanner/cmd/deal-scanner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
