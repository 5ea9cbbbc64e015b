// Package pods groups students into small, strongly connected pods.
//
// Form runs Kruskal's algorithm in reverse (heaviest connection first) over a
// network.Graph, with one extra rule: two groups are merged only when the
// merged group would not exceed the requested pod size. The accepted edges
// form a capacity-bounded maximum spanning forest, and each tree of that
// forest is one pod.
//
// Students with no connection, or whose every connection would overflow a
// pod, end up in a pod of their own.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
package pods
