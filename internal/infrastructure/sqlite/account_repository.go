package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kotatsuya-com/todo-app-sub002/internal/domain"
)

// AccountRepository はSQLiteを使用して利用者レコードを管理するリポジトリ
type AccountRepository struct {
	store *Store
}

// NewAccountRepository は新しいAccountRepositoryを作成する
func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{
		store: store,
	}
}

// FindByID は利用者IDから利用者レコードを取得する
// 該当レコードがない場合は domain.ErrAccountNotFound を返す
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var account domain.Account
	err := r.store.db.QueryRowContext(ctx,
		`SELECT id, name FROM accounts WHERE id = ?`, id,
	).Scan(&account.ID, &account.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("利用者取得エラー: %w", err)
	}
	return &account, nil
}

// Save は利用者レコードを保存する（既存の場合は名前を更新する）
func (r *AccountRepository) Save(ctx context.Context, account *domain.Account) error {
	_, err := r.store.db.ExecContext(ctx,
		`INSERT INTO accounts (id, name) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		account.ID, account.Name,
	)
	if err != nil {
		return fmt.Errorf("利用者保存エラー: %w", err)
	}
	return nil
}
