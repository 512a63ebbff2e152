package slack

import (
	"github.com/slack-go/slack"

	"github.com/Kotatsuya-com/todo-app-sub002/internal/domain"
)

// RepositoryFactory は接続ごとのアクセストークンからSlack APIリポジトリ一式を生成する
type RepositoryFactory struct{}

// NewRepositoryFactory は新しいRepositoryFactoryを作成する
func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{}
}

// New はアクセストークンに紐づくリポジトリ一式を返す
func (f *RepositoryFactory) New(accessToken string) *domain.ChatRepositories {
	client := slack.New(accessToken)
	return &domain.ChatRepositories{
		Messages: NewMessageRepository(client),
		Channels: NewChannelRepository(client),
		Users:    NewUserRepository(client),
	}
}
