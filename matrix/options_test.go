// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lasfield/matrix"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies the resolved defaults match the constants.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.DefaultEpsilon, o.Eps)
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf)
}

// 2) TestGatherOptions_LastWriterWins ensures later setters override earlier ones and nil is skipped.
func TestGatherOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), nil, matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithEpsilon(1e-3), matrix.WithEpsilon(1e-6))
	require.Equal(t, 1e-6, o.Eps)
}

// 3) TestWithEpsilon_PanicsOnNonsense covers negative and non-finite tolerances.
func TestWithEpsilon_PanicsOnNonsense(t *testing.T) {
	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		require.PanicsWithValue(t, matrix.PanicEpsilonInvalid_TestOnly, func() { _ = matrix.WithEpsilon(eps) })
	}
	require.NotPanics(t, func() { _ = matrix.WithEpsilon(0) })
}
