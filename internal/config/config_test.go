package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaroncarlucci/amount"
	"github.com/aaroncarlucci/amount/display"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, amount.BTC, cfg.Unit)
	assert.Equal(t, display.P1Size, cfg.Size.Size())
	assert.False(t, cfg.Unconfirmed)
	assert.False(t, cfg.Plain)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Config
	}{
		{
			name: "empty",
			yaml: "",
			want: Default(),
		},
		{
			name: "all fields",
			yaml: "unit: sats\nsize: h2\nunconfirmed: true\nplain: true\n",
			want: Config{Unit: amount.SAT, Size: Size(display.H2Size), Unconfirmed: true, Plain: true},
		},
		{
			name: "unit only",
			yaml: "unit: mBTC\n",
			want: Config{Unit: amount.MBTC, Size: Size(display.P1Size)},
		},
		{
			name: "empty size",
			yaml: "size: \"\"\n",
			want: Default(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Error(t *testing.T) {
	tests := map[string]string{
		"unknown unit": "unit: XBT\n",
		"unknown size": "size: h9\n",
		"bad yaml":     "unit: [BTC\n",
		"size type":    "size: [1, 2]\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Unit = amount.Unit(42)
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Size = Size(18)
	assert.Error(t, cfg.Validate())
}

func TestMarshal(t *testing.T) {
	cfg := Config{Unit: amount.UBTC, Size: Size(display.H4Size), Unconfirmed: true}
	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "unit: bits")
	assert.Contains(t, string(data), "size: h4")

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "amountfmt.yaml")
		require.NoError(t, os.WriteFile(path, []byte("unit: sat\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, amount.SAT, cfg.Unit)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("explicit path invalid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "amountfmt.yaml")
		require.NoError(t, os.WriteFile(path, []byte("unit: XBT\n"), 0o600))

		_, err := Load(path)
		assert.ErrorContains(t, err, path)
	})

	t.Run("default path missing", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("default path", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "amountfmt"), 0o700))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "amountfmt", "config.yaml"), []byte("size: h1\n"), 0o600))

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, display.H1Size, cfg.Size.Size())
	})
}
