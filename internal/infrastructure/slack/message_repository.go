package slack

import (
	"context"
	"log"

	"github.com/slack-go/slack"

	"github.com/Kotatsuya-com/todo-app-sub002/internal/domain"
)

const (
	// Tier Cでスレッド候補を探すときに遡るチャンネル履歴の件数
	recentHistoryLimit = 100
	// スレッド返信の1回あたりの取得件数
	threadRepliesLimit = 200
)

// MessageRepository はSlack APIを使用してリンクが指すメッセージを取得するリポジトリ
type MessageRepository struct {
	client *slack.Client
}

// NewMessageRepository は新しいMessageRepositoryを作成する
func NewMessageRepository(client *slack.Client) *MessageRepository {
	return &MessageRepository{
		client: client,
	}
}

// FindByLink はチャンネルIDとタイムスタンプからメッセージを段階的に検索する
//
// パーマリンクだけでは対象がチャンネル直下の投稿かスレッド内の返信かを
// 確実に判別できないため、3段階のフォールバックで探す:
//  1. thread_tsがある場合はそのスレッドの返信を直接検索
//  2. チャンネル履歴をタイムスタンプで絞り込んで直接検索
//  3. 最近のメッセージのうち返信が付いているものを順に辿り、各スレッドを走査
//
// 各段階でのAPIエラーは「その段階では見つからなかった」として扱い、
// 次の段階へ進む。全段階が空振りした場合は (nil, nil) を返す
func (r *MessageRepository) FindByLink(ctx context.Context, channelID, timestamp, threadTS string) (*domain.Message, error) {
	if threadTS != "" {
		if msg := r.findInThread(ctx, channelID, threadTS, timestamp); msg != nil {
			return msg, nil
		}
	}

	if msg := r.findInHistory(ctx, channelID, timestamp); msg != nil {
		return msg, nil
	}

	if msg := r.findInRecentThreads(ctx, channelID, timestamp); msg != nil {
		return msg, nil
	}

	return nil, nil
}

// findInThread は指定スレッドの返信からタイムスタンプが一致するメッセージを探す
func (r *MessageRepository) findInThread(ctx context.Context, channelID, threadTS, timestamp string) *domain.Message {
	params := slack.GetConversationRepliesParameters{
		ChannelID: channelID,
		Timestamp: threadTS,
		Limit:     threadRepliesLimit,
	}

	for {
		replies, hasMore, nextCursor, err := r.client.GetConversationRepliesContext(ctx, &params)
		if err != nil {
			log.Printf("スレッド返信の取得に失敗したため次の段階へ進みます: %v", err)
			return nil
		}

		if msg := scanForTimestamp(replies, channelID, timestamp); msg != nil {
			return msg
		}

		if !hasMore {
			return nil
		}
		params.Cursor = nextCursor
	}
}

// findInHistory はチャンネル履歴をタイムスタンプで絞り込んで直接検索する
func (r *MessageRepository) findInHistory(ctx context.Context, channelID, timestamp string) *domain.Message {
	history, err := r.client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Latest:    timestamp,
		Oldest:    timestamp,
		Inclusive: true,
		Limit:     1,
	})
	if err != nil {
		log.Printf("チャンネル履歴の取得に失敗したため次の段階へ進みます: %v", err)
		return nil
	}

	return scanForTimestamp(history.Messages, channelID, timestamp)
}

// findInRecentThreads は最近のメッセージのうち返信が付いているものを
// リスト順に1件ずつ辿り、各スレッドから対象メッセージを探す
// 並行して走査しないのは「最初に見つかったものが勝つ」を決定的に保つためと、
// Slack APIのレート制限への配慮のため
func (r *MessageRepository) findInRecentThreads(ctx context.Context, channelID, timestamp string) *domain.Message {
	history, err := r.client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Limit:     recentHistoryLimit,
	})
	if err != nil {
		log.Printf("チャンネル履歴の取得に失敗したためスレッド走査を打ち切ります: %v", err)
		return nil
	}

	for i := range history.Messages {
		parent := &history.Messages[i]
		if parent.ReplyCount == 0 {
			continue
		}
		if msg := r.findInThread(ctx, channelID, parent.Timestamp, timestamp); msg != nil {
			return msg
		}
	}

	return nil
}

// scanForTimestamp はメッセージ一覧からタイムスタンプが一致するものを探して
// ドメインモデルに変換する。見つからない場合はnilを返す
func scanForTimestamp(messages []slack.Message, channelID, timestamp string) *domain.Message {
	for i := range messages {
		if messages[i].Timestamp == timestamp {
			return convertToDomainMessage(&messages[i], channelID)
		}
	}
	return nil
}

// convertToDomainMessage はSlackのMessageをドメインモデルに変換する
func convertToDomainMessage(msg *slack.Message, channelID string) *domain.Message {
	return &domain.Message{
		Text:       msg.Text,
		UserID:     msg.User,
		ChannelID:  channelID,
		Timestamp:  msg.Timestamp,
		ThreadTS:   msg.ThreadTimestamp,
		ReplyCount: msg.ReplyCount,
	}
}
