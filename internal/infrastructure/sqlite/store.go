package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store はSQLiteデータベースへの接続を保持する
type Store struct {
	db *sql.DB
}

// Open は指定パスにSQLiteデータベースを作成または開く
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("データベースディレクトリの作成に失敗しました: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("データベースを開けませんでした: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("データベースへの接続確認に失敗しました: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("マイグレーションに失敗しました: %w", err)
	}

	return s, nil
}

// OpenMemory はインメモリのSQLiteデータベースを作成する（テスト用）
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("インメモリデータベースを開けませんでした: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("マイグレーションに失敗しました: %w", err)
	}

	return s, nil
}

// Close はデータベース接続を閉じる
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate はスキーマを適用する
func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// schema はデータベーススキーマ全体。テーブルの追加はここに書き足す
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS connections (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES accounts(id),
    workspace_id TEXT NOT NULL,
    workspace_name TEXT NOT NULL DEFAULT '',
    team_name TEXT NOT NULL DEFAULT '',
    access_token TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_connections_user ON connections(user_id);
`
