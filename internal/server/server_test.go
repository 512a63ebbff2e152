package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kotatsuya-com/todo-app-sub002/internal/domain"
)

// テスト用のリンク解決サービス
type fakeResolver struct {
	resolved *domain.ResolvedMessage
	err      error
}

func (f *fakeResolver) Resolve(ctx context.Context, url, userID string) (*domain.ResolvedMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resolved, nil
}

func postResolve(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/messages/resolve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestServer_HandleResolve(t *testing.T) {
	resolver := &fakeResolver{
		resolved: &domain.ResolvedMessage{
			Text:      "田中 (#general)\nタスクにしたい投稿",
			User:      "田中",
			Timestamp: "1609459200.000100",
			Channel:   "general",
			URL:       "https://myteam.slack.com/archives/C02ABCDEF/p1609459200000100",
			Workspace: "Target",
		},
	}
	s := New(Config{Port: 8080}, resolver)

	rec := postResolve(t, s, `{"url":"https://myteam.slack.com/archives/C02ABCDEF/p1609459200000100","user_id":"user-1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got domain.ResolvedMessage
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("レスポンスの解釈に失敗しました: %v", err)
	}
	if got.Channel != "general" || got.Workspace != "Target" {
		t.Errorf("レスポンス = %+v", got)
	}
	if !strings.HasPrefix(got.Text, "田中 (#general)\n") {
		t.Errorf("Text = %q", got.Text)
	}
}

func TestServer_HandleResolve_FailureStatus(t *testing.T) {
	tests := []struct {
		name       string
		failure    *domain.Failure
		wantStatus int
		wantReason string
	}{
		{
			name:       "バリデーション失敗は400",
			failure:    domain.NewFailure(domain.ReasonValidationFailed, "urlとuserIdは必須です", nil),
			wantStatus: 400,
			wantReason: "validation_failed",
		},
		{
			name:       "利用者不明は401",
			failure:    domain.NewFailure(domain.ReasonUserNotFound, "利用者が見つかりません", nil),
			wantStatus: 401,
			wantReason: "user_not_found",
		},
		{
			name:       "メッセージ未発見は404",
			failure:    domain.NewFailure(domain.ReasonMessageNotFound, "メッセージが見つかりません", nil),
			wantStatus: 404,
			wantReason: "message_not_found",
		},
		{
			name:       "接続なしは500",
			failure:    domain.NewFailure(domain.ReasonNoConnection, "認可済みのワークスペース接続がありません", nil),
			wantStatus: 500,
			wantReason: "no_connection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Config{Port: 8080}, &fakeResolver{err: tt.failure})

			rec := postResolve(t, s, `{"url":"https://example.com","user_id":"user-1"}`)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body failureResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("レスポンスの解釈に失敗しました: %v", err)
			}
			if body.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", body.Reason, tt.wantReason)
			}
		})
	}
}

func TestServer_HandleResolve_BadJSON(t *testing.T) {
	s := New(Config{Port: 8080}, &fakeResolver{})

	rec := postResolve(t, s, `{url: 壊れたJSON`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestServer_Healthz(t *testing.T) {
	s := New(Config{Port: 8080}, &fakeResolver{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
