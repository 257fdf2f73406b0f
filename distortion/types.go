package distortion

import (
	"errors"

	"github.com/kyleyasumiishi/geocluster/cluster"
	"github.com/kyleyasumiishi/geocluster/hierarchical"
	"github.com/kyleyasumiishi/geocluster/kmeans"
)

// Sentinel errors for distortion sweeps.
var (
	// ErrInvalidRange is returned when the k range is empty or starts below 1.
	ErrInvalidRange = errors.New("distortion: invalid k range")

	// ErrNilClusterer is returned when Sweep receives no clustering function.
	ErrNilClusterer = errors.New("distortion: nil clusterer")
)

// Clusterer reduces a list of clusters to k clusters.
type Clusterer func(clusters []cluster.Cluster, k int) ([]cluster.Cluster, error)

// Sample is one point of a distortion curve.
type Sample struct {
	K          int
	Distortion float64
}

// Hierarchical adapts hierarchical.Cluster to a Clusterer.
func Hierarchical(opts ...hierarchical.Option) Clusterer {
	return func(clusters []cluster.Cluster, k int) ([]cluster.Cluster, error) {
		return hierarchical.Cluster(clusters, k, opts...)
	}
}

// KMeans adapts kmeans.Cluster with a fixed iteration count to a Clusterer.
func KMeans(iterations int, opts ...kmeans.Option) Clusterer {
	return func(clusters []cluster.Cluster, k int) ([]cluster.Cluster, error) {
		return kmeans.Cluster(clusters, k, iterations, opts...)
	}
}
