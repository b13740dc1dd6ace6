package wordrep

import (
	"fmt"

	"github.com/geange/wordrep/automaton"
)

// Matrix is a square adjacency matrix; node i is labelled by symbol i. The diagonal is ignored.
type Matrix [][]bool

// FromInts converts a 0/1 matrix. Any non-zero entry counts as an edge.
func FromInts(rows [][]int) (Matrix, error) {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		m[i] = make([]bool, len(row))
		for j, v := range row {
			m[i][j] = v != 0
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// FromEdges builds the matrix of an n-node graph with the given undirected edges.
func FromEdges(n int, edges ...[2]int) (Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: graph needs at least one node", ErrInvalidMatrix)
	}
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]bool, n)
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d) outside %d nodes", ErrInvalidMatrix, u, v, n)
		}
		m[u][v] = true
		m[v][u] = true
	}
	return m, nil
}

// Validate checks that m is non-empty, square and symmetric off the diagonal.
func (m Matrix) Validate() error {
	n := len(m)
	if n == 0 {
		return fmt.Errorf("%w: no nodes", ErrInvalidMatrix)
	}
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidMatrix, i, len(row), n)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				return fmt.Errorf("%w: entries (%d,%d) and (%d,%d) differ", ErrInvalidMatrix, i, j, j, i)
			}
		}
	}
	return nil
}

// Size returns the number of nodes.
func (m Matrix) Size() int {
	return len(m)
}

// Adjacent reports whether nodes i and j share an edge.
func (m Matrix) Adjacent(i, j int) bool {
	return i != j && m[i][j]
}

// Isolated reports whether node i has no neighbour.
func (m Matrix) Isolated(i int) bool {
	for j := range m[i] {
		if m.Adjacent(i, j) {
			return false
		}
	}
	return true
}

// NumEdges counts the undirected edges.
func (m Matrix) NumEdges() int {
	count := 0
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			if m[i][j] {
				count++
			}
		}
	}
	return count
}

// NonAdjacentPairs returns every pair of distinct nodes without an edge.
func (m Matrix) NonAdjacentPairs() automaton.PairSet {
	pairs := make(automaton.PairSet)
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			if !m[i][j] {
				pairs.Add(i, j)
			}
		}
	}
	return pairs
}
