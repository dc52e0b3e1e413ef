package seen

import "fmt"

// BitMatrix is a dense matrix of booleans. Construct with
//
//     M := NewBitMatrix(10, 10)
//
// Now
//
//     M.Set(2, 3)                    // set a value
//     v := M.Value(2, 3)             // returns true
//     cnt := M.ValueCount()          // returns 1 (one position set)
//     v = M.Value(10, 10)            // out of range, returns false
//
// Values cannot be deleted.
type BitMatrix struct {
	bits   []uint64
	rowcnt int
	colcnt int
	count  int
}

// NewBitMatrix creates a new matrix of size m x n, with no value set.
func NewBitMatrix(m, n int) *BitMatrix {
	return &BitMatrix{
		bits:   make([]uint64, (m*n+63)/64),
		rowcnt: m,
		colcnt: n,
	}
}

// M returns the row count.
func (m *BitMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *BitMatrix) N() int {
	return m.colcnt
}

// ValueCount returns the number of positions set.
func (m *BitMatrix) ValueCount() int {
	return m.count
}

// Value returns true if position (i,j) is set.
func (m *BitMatrix) Value(i, j int) bool {
	if i < 0 || j < 0 || i >= m.rowcnt || j >= m.colcnt {
		return false
	}
	k := i*m.colcnt + j
	return m.bits[k/64]&(1<<(k%64)) != 0
}

// Set sets position (i,j). It panics if (i,j) is out of range.
func (m *BitMatrix) Set(i, j int) *BitMatrix {
	if i < 0 || j < 0 || i >= m.rowcnt || j >= m.colcnt {
		panic(fmt.Sprintf("position (%d,%d) out of range of %dx%d matrix", i, j, m.rowcnt, m.colcnt))
	}
	k := i*m.colcnt + j
	if m.bits[k/64]&(1<<(k%64)) == 0 {
		m.bits[k/64] |= 1 << (k % 64)
		m.count++
	}
	return m
}
