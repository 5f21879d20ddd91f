// Package domain defines the core domain types for the sociogram analysis tool.
//
// This package contains the entities and value objects that describe a
// peer-nomination dataset once it has been turned into a graph.
//
// # Core Types
//
// Row is one line of nomination input: a person's code, an optional display
// name, three "most preferred" and three "least preferred" target codes.
//
// Node represents a person with the counters derived from the nominations they
// gave and received, their sociometric Status and their betweenness score.
//
// Nomination is a directed, typed (positive or negative) edge. Every filled
// nomination slot produces its own Nomination, so repeated nominations between
// the same pair are preserved rather than merged.
//
// Graph holds the node set keyed by code together with the nomination list.
// It is rebuilt from scratch on every analysis run.
//
// Clique is a maximal set of people who are all positively connected to one
// another, ignoring nomination direction.
//
// # Design Principles
//
// - No dependencies beyond the standard library
// - Stable identifiers so views can be reconciled across re-renders
// - Pure domain logic; algorithms live in the analysis package
package domain
