package kmeansgo

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Partition groups point indices by cluster as compressed bitmaps. It
// answers membership questions about a labeling without pinning the label
// numbering: two fits that find the same grouping under permuted labels
// compare as Equivalent.
type Partition struct {
	clusters []*roaring.Bitmap
}

// NewPartition builds a Partition from a label vector with k clusters.
func NewPartition(labels []int, k int) (*Partition, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	clusters := make([]*roaring.Bitmap, k)
	for j := range clusters {
		clusters[j] = roaring.New()
	}

	for i, label := range labels {
		if label < 0 || label >= k {
			return nil, &ErrLabelRange{Index: i, Label: label, K: k}
		}
		clusters[label].Add(uint32(i))
	}

	return &Partition{clusters: clusters}, nil
}

// K returns the number of clusters.
func (p *Partition) K() int {
	return len(p.clusters)
}

// Size returns the number of points labeled j.
func (p *Partition) Size(j int) int {
	if j < 0 || j >= len(p.clusters) {
		return 0
	}

	return int(p.clusters[j].GetCardinality())
}

// Counts returns the cluster sizes indexed by label.
func (p *Partition) Counts() []int {
	counts := make([]int, len(p.clusters))
	for j, b := range p.clusters {
		counts[j] = int(b.GetCardinality())
	}

	return counts
}

// Members returns the point indices labeled j in ascending order.
func (p *Partition) Members(j int) []uint32 {
	if j < 0 || j >= len(p.clusters) {
		return nil
	}

	return p.clusters[j].ToArray()
}

// Contains reports whether point i is labeled j.
func (p *Partition) Contains(j int, i int) bool {
	if j < 0 || j >= len(p.clusters) {
		return false
	}

	return p.clusters[j].Contains(uint32(i))
}

// Equivalent reports whether two partitions group the points identically,
// ignoring how the clusters are numbered.
func (p *Partition) Equivalent(other *Partition) bool {
	if other == nil || len(p.clusters) != len(other.clusters) {
		return false
	}

	matched := make([]bool, len(other.clusters))
	for _, b := range p.clusters {
		found := false
		for j, ob := range other.clusters {
			if matched[j] {
				continue
			}
			if b.Equals(ob) {
				matched[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
