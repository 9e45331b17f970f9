// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/qpbuilder/sparse"
	"github.com/stretchr/testify/require"
)

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    *sparse.CSC
		want error
	}{
		{"nil", nil, sparse.ErrNilMatrix},
		{"0x0", mustCSC(t, 0, 0), nil},
		{"3x3", mustCSC(t, 3, 3), nil},
		{"2x3", mustCSC(t, 2, 3), sparse.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := sparse.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateShape(t *testing.T) {
	t.Parallel()

	m := mustCSC(t, 3, 2)
	require.NoError(t, sparse.ValidateShape(m, 3, 2))
	require.ErrorIs(t, sparse.ValidateShape(m, 2, 3), sparse.ErrDimensionMismatch)
	require.ErrorIs(t, sparse.ValidateShape(nil, 3, 2), sparse.ErrNilMatrix)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := mustCSC(t, 2, 2,
		sparse.Triplet{Row: 0, Col: 1, Val: 2},
		sparse.Triplet{Row: 1, Col: 0, Val: 2},
	)
	require.NoError(t, sparse.ValidateSymmetric(sym, 0))

	oneSided := mustCSC(t, 2, 2, sparse.Triplet{Row: 0, Col: 1, Val: 2})
	require.ErrorIs(t, sparse.ValidateSymmetric(oneSided, 1e-9), sparse.ErrAsymmetry)

	nearly := mustCSC(t, 2, 2,
		sparse.Triplet{Row: 0, Col: 1, Val: 2},
		sparse.Triplet{Row: 1, Col: 0, Val: 2 + 1e-12},
	)
	require.NoError(t, sparse.ValidateSymmetric(nearly, 1e-9))
	require.ErrorIs(t, sparse.ValidateSymmetric(nearly, 0), sparse.ErrAsymmetry)

	require.ErrorIs(t, sparse.ValidateSymmetric(mustCSC(t, 1, 2), 0), sparse.ErrNonSquare)
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, sparse.ValidateVecLen([]float64{1, 2}, 2))
	require.NoError(t, sparse.ValidateVecLen(nil, 0))
	require.ErrorIs(t, sparse.ValidateVecLen(nil, 2), sparse.ErrNilMatrix)
	require.ErrorIs(t, sparse.ValidateVecLen([]float64{1}, 2), sparse.ErrDimensionMismatch)
}
