// SPDX-License-Identifier: MIT
package qpdata_test

import (
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/katalvlaran/qpbuilder/qpdata"
	"github.com/stretchr/testify/require"
)

func TestWithLogger_RecordsRejectionsAndCompletion(t *testing.T) {
	var lines []string
	logger := funcr.New(func(_, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 2})

	b, err := qpdata.NewSized(2, 3, qpdata.WithLogger(logger))
	require.NoError(t, err)
	require.Error(t, b.SetHessianMatrix(csc(t, 1, 2, 1, 1)))
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "rejected problem data")
	require.Contains(t, lines[0], "hessian")
	require.Contains(t, lines[0], "non_square")

	require.NoError(t, b.SetHessianMatrix(hessian2(t)))
	require.NoError(t, b.SetGradient(vec(1, 1)))
	require.NoError(t, b.SetLinearConstraintsMatrix(constraints3x2(t)))
	require.NoError(t, b.SetLowerBound(vec(1, 0, 0)))
	require.NoError(t, b.SetUpperBound(vec(1, 0.7, 0.7)))
	require.Len(t, lines, 2)
	require.True(t, strings.Contains(lines[1], "problem data complete"), lines[1])
}

func TestWithLogger_QuietBelowVerbosity(t *testing.T) {
	var lines []string
	logger := funcr.New(func(_, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 0})

	b := qpdata.New(qpdata.WithLogger(logger))
	require.Error(t, b.SetNumberOfVariables(-1))
	require.Empty(t, lines)
}
