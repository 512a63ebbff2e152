package service

import (
	"context"
	"errors"

	"github.com/Kotatsuya-com/todo-app-sub002/internal/domain"
)

// テスト用のインメモリ利用者リポジトリ
type fakeAccountRepository struct {
	accounts map[string]*domain.Account
	err      error
	calls    int
}

func (f *fakeAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	account, ok := f.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// テスト用のインメモリ接続リポジトリ
type fakeConnectionRepository struct {
	connections []*domain.Connection
	err         error
	calls       int
}

func (f *fakeConnectionRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Connection, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.connections, nil
}

// テスト用のメッセージリポジトリ
type fakeMessageRepository struct {
	message *domain.Message
	err     error
	calls   int
}

func (f *fakeMessageRepository) FindByLink(ctx context.Context, channelID, timestamp, threadTS string) (*domain.Message, error) {
	f.calls++
	return f.message, f.err
}

// テスト用のチャンネルリポジトリ
type fakeChannelRepository struct {
	channel *domain.Channel
	err     error
	calls   int
}

func (f *fakeChannelRepository) FindByID(ctx context.Context, channelID string) (*domain.Channel, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.channel, nil
}

// テスト用のSlackユーザーリポジトリ
type fakeUserRepository struct {
	users map[string]*domain.User
	calls int
}

func (f *fakeUserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	f.calls++
	user, ok := f.users[userID]
	if !ok {
		return nil, errors.New("ユーザーが見つかりません")
	}
	return user, nil
}

// テスト用のChatRepositoryFactory
// 生成回数を数えることでネットワーク到達の有無を検証できる
type fakeChatFactory struct {
	messages *fakeMessageRepository
	channels *fakeChannelRepository
	users    *fakeUserRepository
	calls    int
}

func (f *fakeChatFactory) New(accessToken string) *domain.ChatRepositories {
	f.calls++
	return &domain.ChatRepositories{
		Messages: f.messages,
		Channels: f.channels,
		Users:    f.users,
	}
}
