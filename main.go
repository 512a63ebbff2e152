package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Kotatsuya-com/todo-app-sub002/internal/config"
	slackinfra "github.com/Kotatsuya-com/todo-app-sub002/internal/infrastructure/slack"
	"github.com/Kotatsuya-com/todo-app-sub002/internal/infrastructure/sqlite"
	"github.com/Kotatsuya-com/todo-app-sub002/internal/server"
	"github.com/Kotatsuya-com/todo-app-sub002/internal/service"
)

func main() {
	log.Println("=== Slack メッセージリンク解決サーバ 開始 ===")

	configPath := flag.String("config", "config.yaml", "設定ファイルのパス")
	flag.Parse()

	// .envがあれば読み込む（なくてもエラーにしない）
	if err := godotenv.Load(); err == nil {
		log.Println(".envを読み込みました")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("設定が不正です: %v", err)
	}
	log.Printf("設定: ポート=%d, データベース=%s", cfg.Port, cfg.DatabasePath)

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("データベースを開けませんでした: %v", err)
	}
	defer store.Close()

	resolver := service.NewResolver(
		sqlite.NewAccountRepository(store),
		sqlite.NewConnectionRepository(store),
		slackinfra.NewRepositoryFactory(),
	)

	srv := server.New(server.Config{
		Port:     cfg.Port,
		AllowAll: cfg.AllowAllOrigins,
	}, resolver)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("サーバの実行中にエラーが発生しました: %v", err)
		}
	case sig := <-stop:
		log.Printf("シグナルを受信しました: %v", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("サーバの停止に失敗しました: %v", err)
		}
	}

	log.Println("=== Slack メッセージリンク解決サーバ 終了 ===")
}
