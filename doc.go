// Package wordrep decides whether an undirected graph is word-representable: whether some word over the
// node labels exists in which two labels alternate exactly when their nodes are adjacent.
//
// Every pairwise constraint of the adjacency matrix becomes a small automaton (see package automaton).
// The automata are folded together by product construction and pruned after every step. Two strategies
// are available:
//
//	Exact  total DFAs with accept states; the graph is representable iff an accept state survives.
//	Fast   partial automata without accept states; the final automaton is split into clusters and the
//	       graph is representable iff some cluster implies exactly the non-edges of the matrix.
//
// Both run single-threaded to completion. The fast strategy shuffles the combination order; pass
// WithSeed or WithRand to make runs reproducible.
package wordrep
