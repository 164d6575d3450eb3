package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/kmeansgo"
	"github.com/hupe1980/kmeansgo/distance"
	"github.com/hupe1980/kmeansgo/matrix"
)

// fitOutput is the JSON output of a fit run.
type fitOutput struct {
	Clusters []clusterOutput `json:"clusters"`
	Stats    *statsOutput    `json:"stats,omitempty"`
}

type clusterOutput struct {
	Center []float64 `json:"center"`
	Size   int       `json:"size"`
}

type statsOutput struct {
	Iterations  int     `json:"iterations"`
	Termination string  `json:"termination"`
	Inertia     float64 `json:"inertia"`
	CenterShift float64 `json:"center_shift"`
	Duration    string  `json:"duration"`
}

func runFit(cmd *cobra.Command, args []string) error {
	x, err := readPoints(args[0])
	if err != nil {
		return err
	}

	var stats kmeansgo.Stats
	opts := buildOptions(cmd, &stats)

	centers, labels, err := kmeansgo.FitAssign(cmd.Context(), x, flagClusters, opts...)
	if err != nil {
		return err
	}

	if flagOutput != "" {
		if err := writeLabeled(flagOutput, x, labels); err != nil {
			return err
		}
	}

	out := buildOutput(centers, labels)
	if flagStats {
		out.Stats = &statsOutput{
			Iterations:  stats.Iterations,
			Termination: stats.Termination.String(),
			Inertia:     stats.Inertia,
			CenterShift: stats.CenterShift,
			Duration:    stats.Duration.String(),
		}
	}

	if flagJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(out)
	}

	return writeText(cmd.OutOrStdout(), out)
}

func buildOptions(cmd *cobra.Command, stats *kmeansgo.Stats) []kmeansgo.Option {
	opts := []kmeansgo.Option{
		kmeansgo.WithMaxIterations(flagMaxIterations),
		kmeansgo.WithWorkers(flagWorkers),
	}

	// Distinguish --seed 0 from no --seed at all.
	if cmd.Flags().Changed("seed") {
		opts = append(opts, kmeansgo.WithSeed(flagSeed))
	}

	if cmd.Flags().Changed("tolerance") {
		opts = append(opts, kmeansgo.WithTolerance(flagTolerance))
	}

	if flagBLAS {
		opts = append(opts, kmeansgo.WithKernel(distance.KernelBLAS))
	}

	if flagVerbose {
		opts = append(opts, kmeansgo.WithLogLevel(slog.LevelDebug))
	}

	if flagStats {
		opts = append(opts, kmeansgo.WithStats(stats))
	}

	return opts
}

func commaRune() (rune, error) {
	r := []rune(flagComma)
	if len(r) != 1 {
		return 0, fmt.Errorf("invalid field separator %q: must be a single character", flagComma)
	}

	return r[0], nil
}

func readPoints(path string) (*mat.Dense, error) {
	comma, err := commaRune()
	if err != nil {
		return nil, err
	}

	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		r = f
	}

	var opts []matrix.CSVOption
	if flagHeader {
		opts = append(opts, matrix.WithHeader())
	}
	if comma != ',' {
		opts = append(opts, matrix.WithComma(comma))
	}

	return matrix.FromCSV(r, opts...)
}

// writeLabeled writes the input points to path with the cluster label
// appended as the last column.
func writeLabeled(path string, x *mat.Dense, labels []int) error {
	comma, err := commaRune()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.Comma = comma

	n, dim := x.Dims()
	record := make([]string, dim+1)

	for i := range n {
		for d, v := range x.RawRowView(i) {
			record[d] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		record[dim] = strconv.Itoa(labels[i])

		if err := w.Write(record); err != nil {
			f.Close()

			return err
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

func buildOutput(centers *mat.Dense, labels []int) *fitOutput {
	k, dim := centers.Dims()

	out := &fitOutput{Clusters: make([]clusterOutput, k)}
	for j := range k {
		center := make([]float64, dim)
		copy(center, centers.RawRowView(j))
		out.Clusters[j] = clusterOutput{Center: center}
	}

	for _, label := range labels {
		out.Clusters[label].Size++
	}

	return out
}

func writeText(w io.Writer, out *fitOutput) error {
	for j, c := range out.Clusters {
		coords := make([]string, len(c.Center))
		for d, v := range c.Center {
			coords[d] = strconv.FormatFloat(v, 'g', -1, 64)
		}

		if _, err := fmt.Fprintf(w, "cluster %d: size=%d center=(%s)\n", j, c.Size, strings.Join(coords, ", ")); err != nil {
			return err
		}
	}

	if out.Stats == nil {
		return nil
	}

	_, err := fmt.Fprintf(w, "\niterations:  %d\ntermination: %s\ninertia:     %g\nduration:    %s\n",
		out.Stats.Iterations, out.Stats.Termination, out.Stats.Inertia, out.Stats.Duration)

	return err
}
