package service

import (
	"context"
	"testing"

	"github.com/Kotatsuya-com/todo-app-sub002/internal/domain"
)

func TestRewriteMentions(t *testing.T) {
	users := &fakeUserRepository{
		users: map[string]*domain.User{
			"U001": {ID: "U001", DisplayName: "田中"},
			"U002": {ID: "U002", Name: "suzuki"},
		},
	}

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "メンションを表示名に書き換える",
			text:     "<@U001> 確認おねがいします",
			expected: "@田中 確認おねがいします",
		},
		{
			name:     "複数のメンション",
			text:     "<@U001> <@U002> 相談させてください",
			expected: "@田中 @suzuki 相談させてください",
		},
		{
			name:     "解決できないIDはIDのまま残す",
			text:     "<@U999> いますか",
			expected: "@U999 いますか",
		},
		{
			name:     "エスケープ済みの改行を実際の改行にする",
			text:     `Line 1\nLine 2`,
			expected: "Line 1\nLine 2",
		},
		{
			name:     "トークンを含まないテキストはそのまま",
			text:     "ただのテキスト",
			expected: "ただのテキスト",
		},
		{
			name:     "前後の空白は取り除く",
			text:     "  本文  ",
			expected: "本文",
		},
		{
			name:     "末尾のエスケープ済み改行は正規化後に取り除かれる",
			text:     `本文\n`,
			expected: "本文",
		},
		{
			name:     "先頭のエスケープ済み改行も取り除かれる",
			text:     `\n本文`,
			expected: "本文",
		},
		{
			name:     "メンションと改行の組み合わせ",
			text:     `<@U001>\n対応可能ですか`,
			expected: "@田中\n対応可能ですか",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteMentions(context.Background(), users, tt.text)
			if got != tt.expected {
				t.Errorf("RewriteMentions(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestRewriteMentions_LooksUpEachIDOnce(t *testing.T) {
	users := &fakeUserRepository{
		users: map[string]*domain.User{
			"U001": {ID: "U001", DisplayName: "田中"},
		},
	}

	got := RewriteMentions(context.Background(), users, "<@U001> と <@U001> と <@U001>")

	if got != "@田中 と @田中 と @田中" {
		t.Errorf("RewriteMentions() = %q", got)
	}
	if users.calls != 1 {
		t.Errorf("同一IDの照会は1回であるべきです: calls=%d", users.calls)
	}
}

func TestRewriteMentions_NoLookupWithoutTokens(t *testing.T) {
	users := &fakeUserRepository{users: map[string]*domain.User{}}

	RewriteMentions(context.Background(), users, "メンションのないテキスト")

	if users.calls != 0 {
		t.Errorf("トークンがない場合は照会すべきではありません: calls=%d", users.calls)
	}
}
