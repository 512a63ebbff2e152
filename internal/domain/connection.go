package domain

import (
	"strings"
	"time"
)

// Connection はユーザーとSlackワークスペースを結びつける認可レコードを表すドメインモデル
// 永続化層が所有し、このコアからは読み取り専用として扱う
type Connection struct {
	ID            string
	WorkspaceID   string
	WorkspaceName string
	TeamName      string
	AccessToken   string
	UserID        string
	CreatedAt     time.Time
}

// SelectConnection は解析済みリンクに最も適合する接続を優先順位に従って選択する
// 優先順位: WorkspaceID完全一致 > WorkspaceName完全一致 > TeamName完全一致 > リストの先頭
// 比較は大文字小文字を区別せず、同順位の場合はリスト順で最初のものを返す
// リンクの解析に失敗した場合（parsedがnil）でも、接続が存在する限り先頭を返す
func SelectConnection(parsed *ParsedLink, connections []*Connection) *Connection {
	if len(connections) == 0 {
		return nil
	}
	if parsed == nil || parsed.WorkspaceSlug == "" {
		return connections[0]
	}

	slug := parsed.WorkspaceSlug

	// ID一致は名前一致より常に優先される（リスト順より優先順位が先）
	for _, c := range connections {
		if strings.EqualFold(c.WorkspaceID, slug) {
			return c
		}
	}
	for _, c := range connections {
		if strings.EqualFold(c.WorkspaceName, slug) {
			return c
		}
	}
	for _, c := range connections {
		if strings.EqualFold(c.TeamName, slug) {
			return c
		}
	}

	return connections[0]
}
