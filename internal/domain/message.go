package domain

// Message はSlack APIから取得した生のメッセージを表すドメインモデル
type Message struct {
	Text       string
	UserID     string // システムメッセージの場合は空文字列
	ChannelID  string
	Timestamp  string // canonical形式（seconds.microseconds）
	ThreadTS   string // スレッドのタイムスタンプ（空文字列の場合は通常メッセージ）
	ReplyCount int
}

// IsThreadReply はこのメッセージがスレッドの返信かどうかを返す
func (m *Message) IsThreadReply() bool {
	return m.ThreadTS != "" && m.ThreadTS != m.Timestamp
}

// IsThreadParent はこのメッセージがスレッドの親メッセージかどうかを返す
func (m *Message) IsThreadParent() bool {
	return m.ThreadTS != "" && m.ThreadTS == m.Timestamp
}

// HasReplies はこのメッセージにスレッド返信が付いているかどうかを返す
func (m *Message) HasReplies() bool {
	return m.ReplyCount > 0
}

// ResolvedMessage はリンク解決の最終結果を表すDTO
// Textには投稿者・チャンネルのプレフィックスとメンション書き換えが適用済み
type ResolvedMessage struct {
	Text      string `json:"text"`
	User      string `json:"user"`
	Timestamp string `json:"timestamp"`
	Channel   string `json:"channel"`
	URL       string `json:"url"`
	Workspace string `json:"workspace"`
}
