package kmeansgo_test

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/hupe1980/kmeansgo"
	"github.com/hupe1980/kmeansgo/matrix"
)

// Example demonstrates clustering a small dataset end to end.
func Example() {
	ctx := context.Background()

	// Two tight pairs of points, far apart from each other.
	x, err := matrix.FromRows([][]float64{
		{0, 0}, {0, 1},
		{10, 10}, {10, 11},
	})
	if err != nil {
		log.Fatal(err)
	}

	centers, labels, err := kmeansgo.FitAssign(ctx, x, 2, kmeansgo.WithSeed(42))
	if err != nil {
		log.Fatal(err)
	}

	// Order the centers by first coordinate so the output does not depend
	// on which pair was seeded first.
	rows := [][]float64{centers.RawRowView(0), centers.RawRowView(1)}
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })

	for _, row := range rows {
		fmt.Printf("center (%.1f, %.1f)\n", row[0], row[1])
	}

	grouped := labels[0] == labels[1] && labels[2] == labels[3] && labels[0] != labels[2]
	fmt.Println("pairs grouped:", grouped)
	// Output:
	// center (0.0, 0.5)
	// center (10.0, 10.5)
	// pairs grouped: true
}

// Example_measureDist demonstrates computing the point-to-center distance matrix.
func Example_measureDist() {
	x, err := matrix.FromRows([][]float64{{0, 0}, {3, 4}})
	if err != nil {
		log.Fatal(err)
	}

	centers, err := matrix.FromRows([][]float64{{0, 0}, {0, 8}})
	if err != nil {
		log.Fatal(err)
	}

	d, err := kmeansgo.MeasureDist(x, centers)
	if err != nil {
		log.Fatal(err)
	}

	rows, cols := d.Dims()
	for i := range rows {
		for j := range cols {
			fmt.Printf("%.1f ", d.At(i, j))
		}
		fmt.Println()
	}
	// Output:
	// 0.0 8.0
	// 5.0 5.0
}

// Example_calcCenters demonstrates recomputing centers from a labeling.
func Example_calcCenters() {
	x, err := matrix.FromRows([][]float64{
		{0, 0}, {0, 2},
		{10, 0}, {10, 4},
	})
	if err != nil {
		log.Fatal(err)
	}

	centers, err := matrix.FromRows([][]float64{{0, 0}, {10, 0}})
	if err != nil {
		log.Fatal(err)
	}

	next, err := kmeansgo.CalcCenters(x, centers, []int{0, 0, 1, 1})
	if err != nil {
		log.Fatal(err)
	}

	k, _ := next.Dims()
	for j := range k {
		fmt.Printf("(%.1f, %.1f)\n", next.At(j, 0), next.At(j, 1))
	}
	// Output:
	// (0.0, 1.0)
	// (10.0, 2.0)
}

// Example_stats demonstrates collecting fit statistics.
func Example_stats() {
	ctx := context.Background()

	x, err := matrix.FromRows([][]float64{
		{0, 0}, {0, 1},
		{10, 10}, {10, 11},
	})
	if err != nil {
		log.Fatal(err)
	}

	var stats kmeansgo.Stats

	if _, err := kmeansgo.Fit(ctx, x, 2, kmeansgo.WithSeed(7), kmeansgo.WithStats(&stats)); err != nil {
		log.Fatal(err)
	}

	fmt.Println("termination:", stats.Termination)
	fmt.Printf("inertia: %.1f\n", stats.Inertia)
	// Output:
	// termination: Converged
	// inertia: 1.0
}

// Example_fromCSV demonstrates loading points from CSV input.
func Example_fromCSV() {
	raw := "x,y\n0,0\n0,1\n10,10\n10,11\n"

	x, err := matrix.FromCSV(strings.NewReader(raw), matrix.WithHeader())
	if err != nil {
		log.Fatal(err)
	}

	rows, cols := x.Dims()
	fmt.Printf("%d points with %d features\n", rows, cols)
	// Output: 4 points with 2 features
}

// Example_partition demonstrates comparing labelings up to cluster numbering.
func Example_partition() {
	a, err := kmeansgo.NewPartition([]int{0, 0, 1, 1}, 2)
	if err != nil {
		log.Fatal(err)
	}

	b, err := kmeansgo.NewPartition([]int{1, 1, 0, 0}, 2)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("same grouping:", a.Equivalent(b))
	fmt.Println("sizes:", a.Counts())
	// Output:
	// same grouping: true
	// sizes: [2 2]
}
