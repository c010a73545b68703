// Package config は環境変数からサーバー設定を読み込みます。
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shouni/wave-identity-kit/pkg/adapters"
	"github.com/shouni/wave-identity-kit/pkg/badge"
)

// Config はサーバー全体の設定です。
type Config struct {
	Port          string
	LogLevel      slog.Level
	FontURL       string
	IconURI       string
	BadgeAssetDir string
	HTTPTimeout   time.Duration
	RPCTimeout    time.Duration
	CacheSize     int
	CacheTTL      time.Duration
	// Networks は RPC_URL_<NETWORK> が設定されたネットワークだけを持ちます。
	Networks map[string]adapters.NetworkEndpoint
}

// Load は環境変数を読み込み、未設定の項目には既定値を使います。
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:          orDefault(getenv("PORT"), "8080"),
		FontURL:       getenv("FONT_URL"),
		IconURI:       orDefault(getenv("ICON_URI"), "assets/icon.png"),
		BadgeAssetDir: orDefault(getenv("BADGE_ASSET_DIR"), "assets/badges"),
		Networks:      make(map[string]adapters.NetworkEndpoint),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(orDefault(getenv("LOG_LEVEL"), "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL の値が不正です: %w", err)
	}

	var err error
	if cfg.HTTPTimeout, err = durationEnv(getenv, "HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.RPCTimeout, err = durationEnv(getenv, "RPC_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = durationEnv(getenv, "CACHE_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.CacheSize, err = intEnv(getenv, "CACHE_SIZE", 0); err != nil {
		return nil, err
	}

	for _, n := range badge.Networks() {
		suffix := strings.ToUpper(string(n))
		rpcURL := getenv("RPC_URL_" + suffix)
		if rpcURL == "" {
			continue
		}
		decimals, err := intEnv(getenv, "TOKEN_DECIMALS_"+suffix, 18)
		if err != nil {
			return nil, err
		}
		cfg.Networks[string(n)] = adapters.NetworkEndpoint{
			RPCURL:   rpcURL,
			Token:    getenv("TOKEN_ADDRESS_" + suffix),
			Decimals: decimals,
		}
	}

	return cfg, nil
}

// Addr は listen するアドレスです。
func (c *Config) Addr() string {
	return ":" + c.Port
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func durationEnv(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s の値が不正です: %w", key, err)
	}
	return d, nil
}

func intEnv(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s の値が不正です: %w", key, err)
	}
	return n, nil
}
