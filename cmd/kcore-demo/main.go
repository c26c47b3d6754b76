// Kcore-demo runs approximate k-core decomposition over a small built-in
// edge list and prints each vertex's core number, demonstrating the
// examples/kcore consumer of the julienne bucketing structure end to end.
//
// Usage:
//
//	go run ./cmd/kcore-demo
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/graphworks/julienne/examples/kcore"
)

// A small social-graph-shaped edge list: a dense triangle (a, b, c), a
// pendant (d) hanging off it, and a separate path (e-f-g) to show two
// different core numbers in one run.
var edges = [][2]string{
	{"a", "b"},
	{"b", "c"},
	{"c", "a"},
	{"a", "d"},
	{"e", "f"},
	{"f", "g"},
}

func main() {
	g, labels := kcore.BuildFromEdges(edges)

	result, err := kcore.ComputeKCore(g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ComputeKCore: %v\n", err)
		os.Exit(1)
	}

	type row struct {
		label string
		core  uint32
	}
	rows := make([]row, labels.Len())
	for id := 0; id < labels.Len(); id++ {
		rows[id] = row{label: labels.Label(uint32(id)), core: result.Core[id]}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].core != rows[j].core {
			return rows[i].core > rows[j].core
		}
		return rows[i].label < rows[j].label
	})

	fmt.Printf("%-10s %s\n", "vertex", "core")
	for _, r := range rows {
		fmt.Printf("%-10s %d\n", r.label, r.core)
	}
}
