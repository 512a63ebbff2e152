package slack

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/Kotatsuya-com/todo-app-sub002/internal/domain"
)

// UserRepository はSlack APIを使用してユーザー情報を取得するリポジトリ
type UserRepository struct {
	client *slack.Client
}

// NewUserRepository は新しいUserRepositoryを作成する
func NewUserRepository(client *slack.Client) *UserRepository {
	return &UserRepository{
		client: client,
	}
}

// FindByID はユーザーIDからユーザー情報を取得する
func (r *UserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	userInfo, err := r.client.GetUserInfoContext(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ユーザー情報取得エラー: %w", err)
	}

	return &domain.User{
		ID:          userInfo.ID,
		Name:        userInfo.Name,
		DisplayName: userInfo.Profile.DisplayName,
		RealName:    userInfo.Profile.RealName,
	}, nil
}
