package mst_test

import (
	"fmt"

	"github.com/arprax/algos/graph"
	"github.com/arprax/algos/mst"
)

// ExampleKruskal spans a triangle, skipping its heaviest edge.
func ExampleKruskal() {
	g, _ := graph.NewEdgeWeightedGraph(3)
	_ = g.AddEdge(graph.NewEdge(0, 1, 1))
	_ = g.AddEdge(graph.NewEdge(1, 2, 2))
	_ = g.AddEdge(graph.NewEdge(0, 2, 3))

	m, _ := mst.Kruskal(g)
	for _, e := range m.Edges() {
		fmt.Println(e)
	}
	fmt.Printf("total %.2f\n", m.Weight())

	// Output:
	// 0-1 1.00
	// 1-2 2.00
	// total 3.00
}
