// Package analysis implements the graph analytics core of the sociogram tool.
//
// An analysis run turns nomination rows into a Graph and then enriches it in
// a fixed order:
//
//  1. Build: node set, nomination edges, received/given counters, degree
//  2. Reciprocity: mutual positive nominations per node
//  3. Betweenness: normalized betweenness centrality over the undirected graph
//  4. Classify: sociometric status from standardized received scores
//  5. Radius: visual size from positive nominations
//  6. Cliques: maximal cliques over positive nominations
//
// Clique enumeration and centrality are backed by gonum. A failure in either
// stage is recovered and logged; the stage falls back to an empty result and
// the rest of the pipeline still runs.
package analysis
