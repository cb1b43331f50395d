package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config はストアフロントクライアントの設定。
type Config struct {
	APIBaseURL string // バックエンドAPIのベースURL

	StateDir string // ゲストカート等を置く端末ローカルの状態ディレクトリ

	HTTPTimeout time.Duration // APIリクエストのタイムアウト
	PayDelay    time.Duration // 模擬決済のレイテンシ

	Debug bool // デバッグログ
}

// Load は環境変数からクライアント設定を読む。
func Load() (Config, error) {
	cfg := Config{
		APIBaseURL:  getenv("API_BASE_URL", "http://localhost:8080"),
		StateDir:    os.Getenv("STATE_DIR"),
		HTTPTimeout: 10 * time.Second,
		PayDelay:    1 * time.Second,
		Debug:       envBool("DEBUG", false),
	}

	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("STATE_DIR is required: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".storefront")
	}

	if v := os.Getenv("HTTP_TIMEOUT_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("HTTP_TIMEOUT_MS must be number: %w", err)
		}
		cfg.HTTPTimeout = time.Duration(ms) * time.Millisecond
	}
	if v := os.Getenv("PAY_DELAY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("PAY_DELAY_MS must be number: %w", err)
		}
		cfg.PayDelay = time.Duration(ms) * time.Millisecond
	}

	return cfg, nil
}

// SandboxConfig はサンドボックスAPIサーバーの設定。
type SandboxConfig struct {
	Port         string // サーバーポート
	DatabaseURL  string // 指定があればPostgres、無ければ組み込みSQLite
	SQLitePath   string // SQLiteファイルパス（空ならインメモリ）
	JWTSecret    string // セッションcookieの署名シークレット
	CookieSecure bool
}

// LoadSandbox は環境変数からサンドボックス設定を読む。
func LoadSandbox() (SandboxConfig, error) {
	cfg := SandboxConfig{
		Port:         getenv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SQLitePath:   os.Getenv("SANDBOX_DB"),
		JWTSecret:    getenv("JWT_SECRET", "dev_secret_change_me"),
		CookieSecure: envBool("COOKIE_SECURE", false),
	}

	if cfg.Port == "" {
		return SandboxConfig{}, fmt.Errorf("PORT is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
