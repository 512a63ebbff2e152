package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config はサーバ全体の設定を保持する
type Config struct {
	// HTTPサーバの待ち受けポート
	Port int `koanf:"port"`
	// SQLiteデータベースファイルのパス
	DatabasePath string `koanf:"database_path"`
	// 開発時にすべてのCORSオリジンを許可する
	AllowAllOrigins bool `koanf:"allow_all_origins"`
}

// Default は既定値の設定を返す
func Default() *Config {
	return &Config{
		Port:         8080,
		DatabasePath: "data/todo-app.db",
	}
}

// Load はYAMLファイルから設定を読み込み、環境変数（SLACKTASK_*）で上書きする
// ファイルが存在しない場合は既定値と環境変数だけで構成する
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("設定ファイル %s の読み込みに失敗しました: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("設定ファイル %s にアクセスできません: %w", path, err)
	}

	// 環境変数の上書き: SLACKTASK_DATABASE_PATH → database_path など
	if err := k.Load(env.Provider("SLACKTASK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SLACKTASK_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("環境変数の読み込みに失敗しました: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("設定の展開に失敗しました: %w", err)
	}

	return cfg, nil
}

// Validate は設定値が妥当かどうかを検証する
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("portは1〜65535の範囲で指定してください: %d", c.Port)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_pathは必須です")
	}
	return nil
}
