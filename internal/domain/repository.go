package domain

import "context"

// MessageRepository はリンクが指すメッセージを取得するリポジトリインターフェース
// すべての取得段階が空振りした場合は (nil, nil) を返す
type MessageRepository interface {
	FindByLink(ctx context.Context, channelID, timestamp, threadTS string) (*Message, error)
}

// ChannelRepository はチャンネル情報を取得するリポジトリインターフェース
type ChannelRepository interface {
	FindByID(ctx context.Context, channelID string) (*Channel, error)
}

// UserRepository はSlackユーザー情報を取得するリポジトリインターフェース
type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*User, error)
}

// ChatRepositories は1つのアクセストークンに紐づくSlack API側リポジトリ一式
type ChatRepositories struct {
	Messages MessageRepository
	Channels ChannelRepository
	Users    UserRepository
}

// ChatRepositoryFactory は接続ごとのアクセストークンからリポジトリ一式を生成する
type ChatRepositoryFactory interface {
	New(accessToken string) *ChatRepositories
}

// AccountRepository は利用者レコードを取得するリポジトリインターフェース
// 該当レコードがない場合は ErrAccountNotFound を返す
type AccountRepository interface {
	FindByID(ctx context.Context, id string) (*Account, error)
}

// ConnectionRepository はワークスペース接続を取得するリポジトリインターフェース
// 接続は登録順で返される（選択時のリスト順がそのまま優先順位のタイブレークになる）
type ConnectionRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]*Connection, error)
}
