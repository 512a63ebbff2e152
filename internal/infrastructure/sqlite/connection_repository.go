package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Kotatsuya-com/todo-app-sub002/internal/domain"
)

// ConnectionRepository はSQLiteを使用してワークスペース接続を管理するリポジトリ
type ConnectionRepository struct {
	store *Store
}

// NewConnectionRepository は新しいConnectionRepositoryを作成する
func NewConnectionRepository(store *Store) *ConnectionRepository {
	return &ConnectionRepository{
		store: store,
	}
}

// FindByUserID は利用者の接続一覧を登録順で取得する
// このリスト順がそのまま接続選択時のタイブレークになる
func (r *ConnectionRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Connection, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT id, user_id, workspace_id, workspace_name, team_name, access_token, created_at
		 FROM connections WHERE user_id = ?
		 ORDER BY created_at ASC, rowid ASC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("接続一覧取得エラー: %w", err)
	}
	defer rows.Close()

	var connections []*domain.Connection
	for rows.Next() {
		var connection domain.Connection
		var createdAt string
		if err := rows.Scan(
			&connection.ID,
			&connection.UserID,
			&connection.WorkspaceID,
			&connection.WorkspaceName,
			&connection.TeamName,
			&connection.AccessToken,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("接続レコードの読み取りエラー: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			connection.CreatedAt = t
		}
		connections = append(connections, &connection)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("接続一覧取得エラー: %w", err)
	}

	return connections, nil
}

// Save はワークスペース接続を保存する
// IDが空の場合は新しいIDを採番し、アクセストークンなどは上書きする
func (r *ConnectionRepository) Save(ctx context.Context, connection *domain.Connection) error {
	if connection.ID == "" {
		connection.ID = uuid.NewString()
	}
	if connection.CreatedAt.IsZero() {
		connection.CreatedAt = time.Now().UTC()
	}

	_, err := r.store.db.ExecContext(ctx,
		`INSERT INTO connections (id, user_id, workspace_id, workspace_name, team_name, access_token, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   workspace_name = excluded.workspace_name,
		   team_name = excluded.team_name,
		   access_token = excluded.access_token`,
		connection.ID,
		connection.UserID,
		connection.WorkspaceID,
		connection.WorkspaceName,
		connection.TeamName,
		connection.AccessToken,
		connection.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("接続保存エラー: %w", err)
	}
	return nil
}
