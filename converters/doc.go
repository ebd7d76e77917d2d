// Package converters provides adapters between roadmap.Map and popular Go
// graph libraries. It currently targets gonum/graph, so that any gonum
// algorithm (shortest paths, centrality, flow ...) can run on a road map,
// with edge weights taken from a geometric metric.
package converters
