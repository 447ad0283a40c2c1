package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")

	content := `
input:
  initial_amount: "10,000,000"
  monthly_contribution: "1000000"
  period: "1"
  period_unit: years
  rate: "12"
  rate_unit: annual
format: csv
pdf: out.pdf
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	sc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "10,000,000", sc.Input.InitialAmount)
	assert.Equal(t, "years", sc.Input.PeriodUnit)
	assert.Equal(t, "csv", sc.Format)
	assert.Equal(t, "out.pdf", sc.PDF)
}

func TestLoadDefaultsFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input:\n  rate: \"5\"\n"), 0o644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "table", sc.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
