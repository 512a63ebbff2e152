package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Kotatsuya-com/todo-app-sub002/internal/domain"
)

// Resolver はメッセージパーマリンクをタスク化可能な形に解決するサービス
type Resolver struct {
	accounts    domain.AccountRepository
	connections domain.ConnectionRepository
	chatFactory domain.ChatRepositoryFactory
}

// NewResolver は新しいResolverサービスを作成する
func NewResolver(accounts domain.AccountRepository, connections domain.ConnectionRepository, chatFactory domain.ChatRepositoryFactory) *Resolver {
	return &Resolver{
		accounts:    accounts,
		connections: connections,
		chatFactory: chatFactory,
	}
}

// Resolve はパーマリンクを解決してResolvedMessageを返す
//
// 処理は一本道で進む:
// バリデーション → 利用者確認 → 接続一覧取得 → 接続選択 → メッセージ取得 → 整形
//
// 失敗はすべて *domain.Failure として返し、部分的な結果は決して返さない
func (r *Resolver) Resolve(ctx context.Context, rawURL, userID string) (*domain.ResolvedMessage, error) {
	// バリデーションに失敗した場合はネットワーク呼び出しを一切行わない
	if strings.TrimSpace(rawURL) == "" || strings.TrimSpace(userID) == "" {
		return nil, domain.NewFailure(domain.ReasonValidationFailed, "urlとuserIdは必須です", nil)
	}

	if _, err := r.accounts.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.NewFailure(domain.ReasonUserNotFound, "利用者が見つかりません", err)
		}
		return nil, domain.NewFailure(domain.ReasonRepositoryFailure, "利用者の取得に失敗しました", err)
	}

	connections, err := r.connections.FindByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewFailure(domain.ReasonRepositoryFailure, "ワークスペース接続の取得に失敗しました", err)
	}
	if len(connections) == 0 {
		return nil, domain.NewFailure(domain.ReasonNoConnection, "認可済みのワークスペース接続がありません", nil)
	}

	parsed := domain.ParseMessageLink(rawURL)
	connection := domain.SelectConnection(parsed, connections)

	// リンクを解析できない、またはトークンが空の場合は
	// ネットワーク呼び出しなしで「見つからなかった」として扱う
	if parsed == nil || connection.AccessToken == "" {
		return nil, domain.NewFailure(domain.ReasonMessageNotFound, "メッセージが見つかりません", nil)
	}

	repos := r.chatFactory.New(connection.AccessToken)

	message, err := repos.Messages.FindByLink(ctx, parsed.ChannelID, parsed.Timestamp, parsed.ThreadTimestamp)
	if err != nil {
		return nil, domain.NewFailure(domain.ReasonUnexpected, "メッセージの取得中に予期しないエラーが発生しました", err)
	}
	if message == nil {
		return nil, domain.NewFailure(domain.ReasonMessageNotFound, "メッセージが見つかりません", nil)
	}

	channelName, authorName := r.resolveNames(ctx, repos, parsed.ChannelID, message.UserID)
	body := RewriteMentions(ctx, repos.Users, message.Text)

	return &domain.ResolvedMessage{
		Text:      fmt.Sprintf("%s (#%s)\n%s", authorName, channelName, body),
		User:      authorName,
		Timestamp: message.Timestamp,
		Channel:   channelName,
		URL:       rawURL,
		Workspace: connection.WorkspaceName,
	}, nil
}

// resolveNames はチャンネル名と投稿者名を解決する
// どちらの解決も失敗しても全体の処理は失敗させず、表示用の代替値に落とす
// （チャンネル名 → チャンネルID、投稿者名 → "Unknown User"）
func (r *Resolver) resolveNames(ctx context.Context, repos *domain.ChatRepositories, channelID, messageUserID string) (channelName, authorName string) {
	channelName = channelID
	if channel, err := repos.Channels.FindByID(ctx, channelID); err != nil {
		log.Printf("チャンネル名の解決に失敗したためIDを表示に使います: %v", err)
	} else {
		channelName = channel.DisplayLabel()
	}

	authorName = domain.UnknownUserLabel
	if messageUserID != "" {
		if user, err := repos.Users.FindByID(ctx, messageUserID); err != nil {
			log.Printf("投稿者名の解決に失敗しました: %v", err)
		} else {
			authorName = user.GetDisplayName()
		}
	}

	return channelName, authorName
}
