package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "assets/icon.png", cfg.IconURI)
	assert.Equal(t, "assets/badges", cfg.BadgeAssetDir)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 5*time.Second, cfg.RPCTimeout)
	assert.Zero(t, cfg.CacheSize)
	assert.Empty(t, cfg.Networks)
}

func TestLoad_FromEnv(t *testing.T) {
	cfg, err := load(envOf(map[string]string{
		"PORT":                 "9000",
		"LOG_LEVEL":            "debug",
		"FONT_URL":             "https://fonts.example.com/a.ttf",
		"HTTP_TIMEOUT":         "3s",
		"CACHE_SIZE":           "128",
		"RPC_URL_ETHEREUM":     "https://eth.example.com",
		"RPC_URL_BASE":         "https://base.example.com",
		"TOKEN_ADDRESS_BASE":   "0x00000000000000000000000000000000000000aa",
		"TOKEN_DECIMALS_BASE":  "6",
		"TOKEN_ADDRESS_SOLANA": "ignored",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "https://fonts.example.com/a.ttf", cfg.FontURL)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 128, cfg.CacheSize)

	require.Len(t, cfg.Networks, 2)
	assert.Equal(t, "https://eth.example.com", cfg.Networks["ethereum"].RPCURL)
	assert.Empty(t, cfg.Networks["ethereum"].Token)
	assert.Equal(t, 18, cfg.Networks["ethereum"].Decimals)
	assert.Equal(t, 6, cfg.Networks["base"].Decimals)
	assert.Equal(t, "0x00000000000000000000000000000000000000aa", cfg.Networks["base"].Token)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"LOG_LEVEL":      {"LOG_LEVEL": "loud"},
		"HTTP_TIMEOUT":   {"HTTP_TIMEOUT": "soon"},
		"RPC_TIMEOUT":    {"RPC_TIMEOUT": "5"},
		"CACHE_SIZE":     {"CACHE_SIZE": "many"},
		"TOKEN_DECIMALS": {"RPC_URL_POLYGON": "https://p", "TOKEN_DECIMALS_POLYGON": "x"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := load(envOf(env))
			assert.Error(t, err)
		})
	}
}
