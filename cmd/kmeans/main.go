// Package main provides the kmeans command line tool.
//
// It reads points from a CSV file (one point per row) and clusters them
// with k-means++:
//
//	kmeans --clusters 3 data.csv
//	cat data.csv | kmeans -k 3 -
//
// Output is one line per cluster with its size and center, or a JSON
// document with --json. With --output the input points are written back
// out with a trailing label column.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
