package main

import (
	"context"
	"fmt"
	"os"

	"vending/pkg/app"
)

// main acts as a thin adapter so `go install ./cmd/vending` produces the machine binary.
func main() {
	if err := app.Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, nil); err != nil {
		fmt.Fprintf(os.Stderr, "vending: %v\n", err)
		os.Exit(1)
	}
}
