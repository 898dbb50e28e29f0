// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lasfield/grid"
)

const smallConfig = `
grid:
  nx: 16
  ny: 8
  x_length: 2
  y_length: 1
  max_base_cells: 8
model:
  kind: markov-separable
  theta_x: 1
  theta_y: 1
run:
  seed: 11
  realizations: 20
  max_lag: 2
logging:
  level: error
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "las.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestGridCmd(t *testing.T) {
	out, err := run(t, "grid", "--nx", "16", "--ny", "16", "--mxk", "16", "--log-level", "error")
	require.NoError(t, err)
	require.Equal(t, "16x16 = (4x4)·2^2\n", out)

	out, err = run(t, "grid", "--nx", "100", "--ny", "60", "--log-level", "error")
	require.NoError(t, err)
	require.Equal(t, "100x60 is incompatible; nearest: 104x64 = (13x8)·2^3\n", out)
}

func TestGridCmd_FromConfig(t *testing.T) {
	out, err := run(t, "grid", "--config", writeConfig(t, smallConfig))
	require.NoError(t, err)
	require.Equal(t, "16x8 = (4x2)·2^2\n", out)
}

func TestGridCmd_TooDeep(t *testing.T) {
	_, err := run(t, "grid", "--nx", "1024", "--ny", "1024", "--mxk", "1", "--mmax", "3", "--log-level", "error")
	require.ErrorIs(t, err, grid.ErrIncompatibleGrid)
}

func TestGenerateCmd(t *testing.T) {
	cfg := writeConfig(t, smallConfig)
	out, err := run(t, "generate", "--config", cfg)
	require.NoError(t, err)

	sc := bufio.NewScanner(strings.NewReader(out))
	require.True(t, sc.Scan())
	require.Equal(t, "# 16 8 0.125 0.125", sc.Text())
	rows := 0
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		require.Len(t, fields, 8)
		for _, s := range fields {
			_, err := strconv.ParseFloat(s, 64)
			require.NoError(t, err)
		}
		rows++
	}
	require.Equal(t, 16, rows)

	// Same seed, same field, also when written to a file.
	path := filepath.Join(t.TempDir(), "field.txt")
	_, err = run(t, "generate", "--config", cfg, "--out", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, out, string(data))
}

func TestGenerateCmd_Marginal(t *testing.T) {
	cfg := writeConfig(t, smallConfig+`
marginal:
  distribution: bounded
  lower: 2
  upper: 5
  scale: 1
  standardize: true
`)
	out, err := run(t, "generate", "--config", cfg)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 17)
	for _, line := range lines[1:] {
		for _, s := range strings.Fields(line) {
			v, err := strconv.ParseFloat(s, 64)
			require.NoError(t, err)
			require.Greater(t, v, 2.0)
			require.Less(t, v, 5.0)
		}
	}
}

func TestStatsCmd(t *testing.T) {
	out, err := run(t, "stats", "--config", writeConfig(t, smallConfig), "-n", "5")
	require.NoError(t, err)
	for _, want := range []string{"statistic", "variance", "corr x lag 1", "corr x lag 2", "corr y lag 2"} {
		require.Contains(t, out, want)
	}
	require.NotContains(t, out, "largest cluster")

	out, err = run(t, "stats", "--config", writeConfig(t, smallConfig), "-n", "3", "--level", "0.5")
	require.NoError(t, err)
	require.Contains(t, out, "fraction above 0.5")
	require.Contains(t, out, "largest cluster")
}

func TestRootCmd_BadConfig(t *testing.T) {
	_, err := run(t, "generate", "--config", writeConfig(t, "grid:\n  nx: -4\n"))
	require.Error(t, err)

	_, err = run(t, "grid", "--log-level", "loud")
	require.Error(t, err)
}
