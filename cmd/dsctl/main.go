// Package main is the entry point for the dsctl CLI client.
package main

import (
	"github.com/donaldgifford/deal-scanner/cmd/dsctl/cmd"
)

func main() {
	cmd.Execute()
}
