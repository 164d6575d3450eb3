package main

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/kmeansgo"
)

var (
	flagClusters      int
	flagSeed          int64
	flagMaxIterations int
	flagTolerance     float64
	flagWorkers       int
	flagBLAS          bool
	flagHeader        bool
	flagComma         string
	flagJSON          bool
	flagStats         bool
	flagOutput        string
	flagVerbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "kmeans [flags] FILE",
	Short: "Cluster CSV data with k-means++",
	Long: `Cluster CSV data with k-means++ seeding and Lloyd iterations.

FILE is a CSV file with one point per row, or - to read from stdin.

Examples:
  kmeans -k 3 data.csv                 # Cluster into 3 groups
  kmeans -k 3 --header data.csv        # Skip the first row
  kmeans -k 3 --seed 42 data.csv       # Reproducible run
  kmeans -k 8 --workers 4 data.csv     # Parallel distance computation
  kmeans -k 8 --blas data.csv          # BLAS distance kernel
  kmeans -k 3 --json --stats data.csv  # Machine-readable output
  kmeans -k 3 -o labeled.csv data.csv  # Write points with a label column`,
	Args:         cobra.ExactArgs(1),
	RunE:         runFit,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().IntVarP(&flagClusters, "clusters", "k", 0, "Number of clusters (required)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Seed for center initialization (default is time-based)")
	rootCmd.Flags().IntVar(&flagMaxIterations, "max-iterations", kmeansgo.DefaultMaxIterations, "Maximum Lloyd iterations")
	rootCmd.Flags().Float64Var(&flagTolerance, "tolerance", 0, "Stop once total center movement drops to this value")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 1, "Parallel workers for distance computation")
	rootCmd.Flags().BoolVar(&flagBLAS, "blas", false, "Use the BLAS distance kernel")
	rootCmd.Flags().BoolVar(&flagHeader, "header", false, "Skip the first CSV row")
	rootCmd.Flags().StringVar(&flagComma, "comma", ",", "CSV field separator")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.Flags().BoolVar(&flagStats, "stats", false, "Include fit statistics in the output")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the points with a trailing label column to FILE")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")

	_ = rootCmd.MarkFlagRequired("clusters")
}
