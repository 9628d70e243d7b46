package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ullman/internal/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "auto", cfg.Log.Format)
	assert.Equal(t, 1, cfg.Match.Jobs)
	assert.Equal(t, "decimal", cfg.Gen.IDScheme)
}

func TestDecode_OverridesDefaults(t *testing.T) {
	doc := `
log:
  level: debug
  format: json
match:
  induced: true
  limit: 5
  max_states: 1000
  timeout: 2s
  jobs: 4
gen:
  seed: 42
  id_scheme: letters
metrics_file: out.prom
`
	cfg, err := config.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Match.Induced)
	assert.False(t, cfg.Match.All)
	assert.Equal(t, 5, cfg.Match.Limit)
	assert.EqualValues(t, 1000, cfg.Match.MaxStates)
	assert.Equal(t, 2*time.Second, cfg.Match.Timeout)
	assert.Equal(t, 4, cfg.Match.Jobs)
	assert.EqualValues(t, 42, cfg.Gen.Seed)
	assert.Equal(t, "letters", cfg.Gen.IDScheme)
	assert.Equal(t, "out.prom", cfg.MetricsFile)
}

func TestDecode_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader("match:\n  all: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Match.All)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1, cfg.Match.Jobs)
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "match:\n  fast: true\n",
		"bad level":      "log:\n  level: loud\n",
		"bad format":     "log:\n  format: xml\n",
		"negative limit": "match:\n  limit: -1\n",
		"zero jobs":      "match:\n  jobs: 0\n",
		"bad id scheme":  "gen:\n  id_scheme: roman\n",
		"not yaml":       "log: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestValidate_WrapsErrInvalid(t *testing.T) {
	cfg := config.Default()
	cfg.Match.Jobs = 0
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "Jobs")
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "ullman.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gen:\n  id_scheme: \"prefix:n\"\n"), 0o600))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prefix:n", cfg.Gen.IDScheme)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
