package domain

// Channel はSlackチャンネルを表すドメインモデル
type Channel struct {
	ID   string
	Name string
}

// DisplayLabel は表示用のチャンネル名を返す
// 名前の取得に失敗している場合はIDをそのまま表示ラベルとして使う
func (c *Channel) DisplayLabel() string {
	if c != nil && c.Name != "" {
		return c.Name
	}
	if c != nil {
		return c.ID
	}
	return ""
}
