// SPDX-License-Identifier: MIT

package las_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if any stage or ensemble worker outlives its test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
