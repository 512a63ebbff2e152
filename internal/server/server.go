package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Kotatsuya-com/todo-app-sub002/internal/domain"
)

// MessageResolver はリンク解決サービスのインターフェース
type MessageResolver interface {
	Resolve(ctx context.Context, url, userID string) (*domain.ResolvedMessage, error)
}

// Config はHTTPサーバの設定を保持する
type Config struct {
	Port     int
	AllowAll bool // すべてのCORSオリジンを許可する（開発用）
}

// Server はリンク解決APIを公開するHTTPサーバ
type Server struct {
	cfg        Config
	resolver   MessageResolver
	router     chi.Router
	httpServer *http.Server
}

// New は新しいServerを作成する
func New(cfg Config, resolver MessageResolver) *Server {
	s := &Server{
		cfg:      cfg,
		resolver: resolver,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter はルーティングとミドルウェアを構成する
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/api/messages/resolve", s.handleResolve)

	return r
}

// Router はテストやルート追加のためにルーターを返す
func (s *Server) Router() chi.Router { return s.router }

// resolveRequest はリンク解決APIのリクエストボディ
type resolveRequest struct {
	URL    string `json:"url"`
	UserID string `json:"user_id"`
}

// failureResponse は失敗時のレスポンスボディ
type failureResponse struct {
	Reason string `json:"reason"`
	Error  string `json:"error"`
}

// handleResolve はパーマリンクを解決してResolvedMessageを返すハンドラ
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, failureResponse{
			Reason: string(domain.ReasonValidationFailed),
			Error:  "リクエストボディを解釈できません",
		})
		return
	}

	resolved, err := s.resolver.Resolve(r.Context(), req.URL, req.UserID)
	if err != nil {
		failure := domain.AsFailure(err)
		writeJSON(w, failure.Status, failureResponse{
			Reason: string(failure.Reason),
			Error:  failure.Message,
		})
		return
	}

	writeJSON(w, http.StatusOK, resolved)
}

// writeJSON はJSONレスポンスを書き出す
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("レスポンスの書き込みに失敗しました: %v", err)
	}
}

// Start は設定されたポートで待ち受けを開始する
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Printf("HTTPサーバを開始します: %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTPサーバの起動に失敗しました: %w", err)
	}
	return nil
}

// Shutdown はサーバを安全に停止する
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
