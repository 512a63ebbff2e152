package service

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/Kotatsuya-com/todo-app-sub002/internal/domain"
)

// メンショントークン（例: <@U02ABCDEF>）
var mentionPattern = regexp.MustCompile(`<@([A-Za-z0-9]+)>`)

// RewriteMentions はメッセージ本文中のメンショントークンを表示名に書き換える
//
// <@ID> 形式のトークンを「@表示名」に置き換える。同じIDの照会は1回だけ行い、
// 解決できなかったIDは「@ID」のまま残す。あわせてエスケープ済みの改行
// （リテラルの \n）を実際の改行に正規化する。トークンを含まないテキストに
// 対しては正規化済みテキストをそのまま返す
func RewriteMentions(ctx context.Context, users domain.UserRepository, text string) string {
	// 正規化してから前後の空白を取り除く
	// （末尾のエスケープ済み改行が実改行として残らないように順序が重要）
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.TrimSpace(text)

	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return text
	}

	// 同一IDの重複照会を避けるためのリクエスト内メモ
	names := make(map[string]string, len(matches))
	for _, m := range matches {
		id := m[1]
		if _, ok := names[id]; ok {
			continue
		}
		user, err := users.FindByID(ctx, id)
		if err != nil || user == nil {
			log.Printf("メンションの解決に失敗したためIDのまま表示します: %s", id)
			names[id] = id
			continue
		}
		names[id] = user.GetDisplayName()
	}

	return mentionPattern.ReplaceAllStringFunc(text, func(token string) string {
		id := mentionPattern.FindStringSubmatch(token)[1]
		return "@" + names[id]
	})
}
