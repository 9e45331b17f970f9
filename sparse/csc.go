// SPDX-License-Identifier: MIT

// Package sparse - CSC storage and read-only accessors.
//
// Purpose:
//   - Hold a matrix in compressed sparse column form on top of
//     github.com/james-bowman/sparse: triplets go through its COO assembly and
//     ToCSC compression, storage is its CSC type.
//   - Keep the stored form canonical: rows strictly increasing inside a column,
//     duplicates summed, zero results not stored.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Never expose internal slices; the value is immutable after NewCSC.
//
// Complexity quicksheet:
//   - NewCSC: O(nnz log nnz); At: O(nnz_col); Triplets/Clone/Transpose: O(nnz + cols).

package sparse

import (
	"fmt"
	"math"
	"sort"
	"strings"

	bsparse "github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxNew       = "NewCSC"
	ctxAt        = "At"
	ctxIdentity  = "Identity"
	ctxFromDense = "FromDense"
)

// Triplet is one (row, col, value) coordinate entry.
type Triplet struct {
	Row int     // zero-based row index
	Col int     // zero-based column index
	Val float64 // entry value; must be finite
}

// CSC is an immutable compressed sparse column matrix.
//   - r,c hold dimensions (rows, cols); zero is legal on either side.
//   - mat is the canonical backing matrix; it is never handed out.
type CSC struct {
	r, c int
	mat  *bsparse.CSC
}

var _ fmt.Stringer = (*CSC)(nil)

// cscErrorf wraps an error with a uniform CSC context.
func cscErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CSC.%s(%d,%d): %w", method, row, col, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// NewCSC compresses triplet entries into an rows×cols CSC matrix.
//
// Implementation:
//   - Stage 1: validate shape, indices and values.
//   - Stage 2: assemble a COO matrix and compress it with ToCSC.
//   - Stage 3: canonicalize each column (sort rows, sum duplicates, drop zeros).
//
// Behavior highlights:
//   - Duplicates are summed (the usual triplet-assembly convention).
//   - Zero values, given or produced by cancelling duplicates, are not stored.
//   - entries is never retained or reordered.
//
// Errors:
//   - ErrInvalidDimensions if rows<0 or cols<0.
//   - ErrOutOfRange for an index outside [0,rows)×[0,cols).
//   - ErrNaNInf for a non-finite value, or a duplicate sum that overflows.
//
// Complexity:
//   - Time O(nnz log nnz + cols), Space O(nnz + cols).
func NewCSC(rows, cols int, entries []Triplet) (*CSC, error) {
	// Stage 1: Validate
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}
	var k int
	var e Triplet
	for k, e = range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, fmt.Errorf("%s: entry %d at (%d,%d): %w", ctxNew, k, e.Row, e.Col, ErrOutOfRange)
		}
		if isNonFinite(e.Val) {
			return nil, fmt.Errorf("%s: entry %d at (%d,%d): %w", ctxNew, k, e.Row, e.Col, ErrNaNInf)
		}
	}
	if rows == 0 || cols == 0 || len(entries) == 0 {
		return wrap(rows, cols, make([]int, cols+1), nil, nil), nil
	}

	// Stage 2: Assemble and compress
	ri := make([]int, len(entries))
	ci := make([]int, len(entries))
	vals := make([]float64, len(entries))
	for k, e = range entries {
		ri[k], ci[k], vals[k] = e.Row, e.Col, e.Val
	}
	raw := bsparse.NewCOO(rows, cols, ri, ci, vals).ToCSC().RawMatrix()

	// Stage 3: Canonicalize
	indptr, ind, data := canonicalize(cols, raw.Indptr, raw.Ind, raw.Data)
	var j int
	for j = 0; j < cols; j++ {
		for k = indptr[j]; k < indptr[j+1]; k++ {
			if isNonFinite(data[k]) {
				return nil, fmt.Errorf("%s: summed duplicate at (%d,%d): %w", ctxNew, ind[k], j, ErrNaNInf)
			}
		}
	}

	return wrap(rows, cols, indptr, ind, data), nil
}

// wrap stores already canonical arrays; they must not be shared with callers.
func wrap(rows, cols int, indptr, ind []int, data []float64) *CSC {
	return &CSC{r: rows, c: cols, mat: bsparse.NewCSC(rows, cols, indptr, ind, data)}
}

// rowVal is one stored entry of a column during canonicalization.
type rowVal struct {
	row int
	val float64
}

// canonicalize rewrites compressed columns so rows are strictly increasing,
// duplicate rows are summed and zero sums are dropped. Inputs are not modified.
func canonicalize(cols int, indptr, ind []int, data []float64) ([]int, []int, []float64) {
	outPtr := make([]int, cols+1)
	outInd := make([]int, 0, len(ind))
	outVal := make([]float64, 0, len(data))
	var (
		j, k   int
		column []rowVal
		merged []rowVal
	)
	for j = 0; j < cols; j++ {
		column = column[:0]
		for k = indptr[j]; k < indptr[j+1]; k++ {
			column = append(column, rowVal{row: ind[k], val: data[k]})
		}
		sort.SliceStable(column, func(a, b int) bool { return column[a].row < column[b].row })

		merged = merged[:0]
		for k = range column {
			if len(merged) > 0 && merged[len(merged)-1].row == column[k].row {
				merged[len(merged)-1].val += column[k].val // duplicate coordinate
				continue
			}
			merged = append(merged, column[k])
		}
		for k = range merged {
			if merged[k].val == 0 {
				continue
			}
			outInd = append(outInd, merged[k].row)
			outVal = append(outVal, merged[k].val)
		}
		outPtr[j+1] = len(outInd)
	}

	return outPtr, outInd, outVal
}

// mustCSC compresses entries already known to be valid.
// Panics only on programmer error inside this package.
func mustCSC(rows, cols int, entries []Triplet) *CSC {
	m, err := NewCSC(rows, cols, entries)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*CSC, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxIdentity, n, ErrInvalidDimensions)
	}
	entries := make([]Triplet, n)
	var i int
	for i = 0; i < n; i++ {
		entries[i] = Triplet{Row: i, Col: i, Val: 1}
	}

	return mustCSC(n, n, entries), nil
}

// Rows returns the number of rows.
func (m *CSC) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CSC) Cols() int { return m.c }

// Dims returns (rows, cols).
func (m *CSC) Dims() (int, int) { return m.r, m.c }

// NNZ returns the number of stored entries.
func (m *CSC) NNZ() int { return m.mat.NNZ() }

// At returns the element at (row, col); absent entries read as 0.
// Returns ErrOutOfRange for invalid indices.
func (m *CSC) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, cscErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.mat.At(row, col), nil
}

// ColPtr returns a copy of the column pointer array (len Cols()+1).
func (m *CSC) ColPtr() []int { return append([]int(nil), m.mat.RawMatrix().Indptr...) }

// RowIdx returns a copy of the row index array (len NNZ()).
func (m *CSC) RowIdx() []int { return append([]int(nil), m.mat.RawMatrix().Ind...) }

// Values returns a copy of the value array (len NNZ()).
func (m *CSC) Values() []float64 { return append([]float64(nil), m.mat.RawMatrix().Data...) }

// Triplets returns the stored entries in column-major order.
func (m *CSC) Triplets() []Triplet {
	raw := m.mat.RawMatrix()
	out := make([]Triplet, 0, len(raw.Data))
	var j, k int
	for j = 0; j < m.c; j++ {
		for k = raw.Indptr[j]; k < raw.Indptr[j+1]; k++ {
			out = append(out, Triplet{Row: raw.Ind[k], Col: j, Val: raw.Data[k]})
		}
	}

	return out
}

// Clone returns a deep copy.
func (m *CSC) Clone() *CSC {
	return wrap(m.r, m.c, m.ColPtr(), m.RowIdx(), m.Values())
}

// AsMatrix returns a private copy of m as a gonum mat.Matrix backed by the
// james-bowman CSC type, for use with sparse-aware gonum code.
func (m *CSC) AsMatrix() mat.Matrix {
	return m.Clone().mat
}

// Equal reports whether m and o have the same shape and identical stored entries.
func (m *CSC) Equal(o *CSC) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	a, b := m.mat.RawMatrix(), o.mat.RawMatrix()
	if len(a.Data) != len(b.Data) {
		return false
	}
	var k int
	for k = range a.Indptr {
		if a.Indptr[k] != b.Indptr[k] {
			return false
		}
	}
	for k = range a.Data {
		if a.Ind[k] != b.Ind[k] || a.Data[k] != b.Data[k] {
			return false
		}
	}

	return true
}

// UpperTriangle returns the entries with row <= col.
// Quadratic solvers store a symmetric P by its upper triangle only.
func (m *CSC) UpperTriangle() *CSC {
	entries := make([]Triplet, 0, m.NNZ())
	for _, e := range m.Triplets() {
		if e.Row <= e.Col {
			entries = append(entries, e)
		}
	}

	return mustCSC(m.r, m.c, entries)
}

// Transpose returns the cols×rows transpose, reassembled through COO.
func (m *CSC) Transpose() *CSC {
	entries := m.Triplets()
	var k int
	for k = range entries {
		entries[k].Row, entries[k].Col = entries[k].Col, entries[k].Row
	}

	return mustCSC(m.c, m.r, entries)
}

// String renders one "(row,col) value" line per stored entry, after a shape header.
func (m *CSC) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CSC %dx%d nnz=%d\n", m.r, m.c, m.NNZ())
	for _, e := range m.Triplets() {
		fmt.Fprintf(&sb, "(%d,%d) %g\n", e.Row, e.Col, e.Val)
	}

	return sb.String()
}
