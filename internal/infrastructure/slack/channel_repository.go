package slack

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/Kotatsuya-com/todo-app-sub002/internal/domain"
)

// ChannelRepository はSlack APIを使用してチャンネル情報を取得するリポジトリ
type ChannelRepository struct {
	client *slack.Client
}

// NewChannelRepository は新しいChannelRepositoryを作成する
func NewChannelRepository(client *slack.Client) *ChannelRepository {
	return &ChannelRepository{
		client: client,
	}
}

// FindByID はチャンネルIDからチャンネル情報を取得する
func (r *ChannelRepository) FindByID(ctx context.Context, channelID string) (*domain.Channel, error) {
	channel, err := r.client.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{
		ChannelID: channelID,
	})
	if err != nil {
		return nil, fmt.Errorf("チャンネル情報取得エラー: %w", err)
	}

	return &domain.Channel{
		ID:   channel.ID,
		Name: channel.Name,
	}, nil
}
