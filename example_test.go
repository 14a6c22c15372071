package kmeans_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/seeding"
)

// ExampleCluster demonstrates the positional form.
func ExampleCluster() {
	dataset := [][]float64{{1.0}, {1.1}, {9.0}, {9.2}}
	initial := [][]float64{{1.0}, {9.0}}

	centroids, err := kmeans.Cluster(4, 1, 2, 10, 0.001, dataset, initial)
	if err != nil {
		log.Fatal(err)
	}

	for _, c := range centroids {
		fmt.Printf("%.2f\n", c[0])
	}
	// Output:
	// 1.05
	// 9.10
}

// ExampleFit demonstrates the full form with labels and state.
func ExampleFit() {
	dataset := [][]float64{{0, 0}, {0, 2}, {10, 10}, {10, 12}}
	initial := [][]float64{{0, 0}, {10, 10}}

	res, err := kmeans.Fit(context.Background(), dataset, initial, kmeans.WithMaxIter(50))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.State, res.Iterations)
	fmt.Println(res.Labels)
	fmt.Println(res.Centroids)
	// Output:
	// converged 2
	// [0 0 1 1]
	// [[0 1] [10 11]]
}

// ExampleWithEmptyClusterPolicy shows the default error and the keep policy.
func ExampleWithEmptyClusterPolicy() {
	dataset := [][]float64{{0}, {1}, {2}}
	initial := [][]float64{{0}, {100}}

	_, err := kmeans.Fit(context.Background(), dataset, initial)

	var ece *kmeans.EmptyClusterError
	if errors.As(err, &ece) {
		fmt.Println("empty cluster:", ece.Cluster)
	}

	res, err := kmeans.Fit(context.Background(), dataset, initial,
		kmeans.WithEmptyClusterPolicy(kmeans.EmptyClusterKeep))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Centroids, res.Counts)
	// Output:
	// empty cluster: 1
	// [[1] [100]] [3 0]
}

// Example_seeding demonstrates choosing initial centroids with k-means++.
func Example_seeding() {
	dataset := [][]float64{{1.0}, {1.1}, {9.0}, {9.2}}

	idx, err := seeding.KMeansPlusPlus(dataset, 2, rand.New(rand.NewSource(1234)))
	if err != nil {
		log.Fatal(err)
	}

	res, err := kmeans.Fit(context.Background(), dataset, seeding.Gather(dataset, idx))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(res.Centroids), res.Counts)
	// Output:
	// 2 [2 2]
}
