package domain

import (
	"net/url"
	"regexp"
	"strings"
)

// ParsedLink はSlackメッセージパーマリンクの解析結果を表す値オブジェクト
type ParsedLink struct {
	WorkspaceSlug   string
	ChannelID       string
	Timestamp       string // canonical形式（seconds.microseconds）
	ThreadTimestamp string // スレッドのタイムスタンプ（クエリパラメータがない場合は空文字列）
}

// アーカイブパーマリンクのパス部分（例: /archives/C02ABCDEF/p1609459200000100）
var archivesPathPattern = regexp.MustCompile(`^/archives/([A-Z0-9]+)/p(\d+)$`)

// ParseMessageLink はメッセージパーマリンクを解析してParsedLinkを返す
// 期待される形式に一致しない場合はnilを返す（エラーは返さない）
//
//	https://<workspace>.<host>/archives/<channelID>/p<digits>[?thread_ts=<sec.micro>]
func ParseMessageLink(rawURL string) *ParsedLink {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil
	}

	// ホスト名の最初のラベルがワークスペースのスラッグ
	host := u.Hostname()
	labels := strings.Split(host, ".")
	if len(labels) < 2 || labels[0] == "" {
		return nil
	}

	m := archivesPathPattern.FindStringSubmatch(u.Path)
	if len(m) != 3 {
		return nil
	}

	return &ParsedLink{
		WorkspaceSlug:   labels[0],
		ChannelID:       m[1],
		Timestamp:       ConvertTimestamp(m[2]),
		ThreadTimestamp: u.Query().Get("thread_ts"),
	}
}

// ConvertTimestamp はパーマリンクのコンパクト形式タイムスタンプを
// Slack APIが要求するcanonical形式（seconds.microseconds）に変換する
// 末尾から6桁目に小数点を挿入する（例: 1609459200000100 → 1609459200.000100）
func ConvertTimestamp(compact string) string {
	cut := len(compact) - 6
	if cut < 0 {
		cut = 0
	}
	return compact[:cut] + "." + compact[cut:]
}
