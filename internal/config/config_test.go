package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points HOME at a temp directory so tests never read a real
// ~/.montyhall/config.yaml.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestDefault(t *testing.T) {
	config := Default()

	assert.Equal(t, []int{3, 4, 5, 10, 20}, config.Doors)
	assert.Equal(t, []int{10, 100, 1000, 10000}, config.Repetitions)
	assert.Zero(t, config.Seed)
	assert.True(t, config.Plot.Enabled)
	assert.Equal(t, ".", config.Plot.Dir)
	assert.Equal(t, "info", config.Logging.Level)
	assert.NoError(t, config.Validate())
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	configContent := `
doors: [3, 7]
repetitions: [50]
seed: 42
plot:
  enabled: false
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0600))

	config, err := LoadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 7}, config.Doors)
	assert.Equal(t, []int{50}, config.Repetitions)
	assert.Equal(t, uint64(42), config.Seed)
	assert.False(t, config.Plot.Enabled)
	// Unset keys keep their defaults.
	assert.Equal(t, ".", config.Plot.Dir)
	assert.Equal(t, "debug", config.Logging.Level)
}

func TestLoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "reading config file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("doors: [3, four"), 0600))
	_, err = LoadFromFile(bad)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestLoad_DefaultLocation(t *testing.T) {
	home := isolateHome(t)

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), config)

	dir := filepath.Join(home, ".montyhall")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("doors: [6]\n"), 0600))

	config, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, []int{6}, config.Doors)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	isolateHome(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("MONTYHALL_DOORS", "3,5")
	t.Setenv("MONTYHALL_REPETITIONS", "10,20,30")
	t.Setenv("MONTYHALL_SEED", "7")
	t.Setenv("MONTYHALL_PLOT_ENABLED", "false")
	t.Setenv("MONTYHALL_PLOT_DIR", "/tmp/charts")
	t.Setenv("MONTYHALL_LOG_LEVEL", "trace")

	config, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []int{3, 5}, config.Doors)
	assert.Equal(t, []int{10, 20, 30}, config.Repetitions)
	assert.Equal(t, uint64(7), config.Seed)
	assert.False(t, config.Plot.Enabled)
	assert.Equal(t, "/tmp/charts", config.Plot.Dir)
	assert.Equal(t, "trace", config.Logging.Level)
}

func TestEnvOverrides_Invalid(t *testing.T) {
	isolateHome(t)
	t.Setenv("MONTYHALL_SEED", "not-a-number")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "parse env:"), err.Error())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty level", func(c *Config) { c.Logging.Level = "" }, false},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"no doors", func(c *Config) { c.Doors = nil }, true},
		{"no repetitions", func(c *Config) { c.Repetitions = []int{} }, true},
		{"plot without dir", func(c *Config) { c.Plot.Dir = "" }, true},
		{"disabled plot without dir", func(c *Config) { c.Plot.Enabled = false; c.Plot.Dir = "" }, false},
		// Door counts are checked by the simulator, not here.
		{"two doors passes", func(c *Config) { c.Doors = []int{2} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	c := Default()
	c.Seed = 9
	data, err := c.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0600))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}
