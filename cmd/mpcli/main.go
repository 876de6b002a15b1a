package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path"

	"github.com/veldtgame/multiplayer/internal/config"
	"github.com/veldtgame/multiplayer/internal/env"
	"github.com/veldtgame/multiplayer/internal/multiplayer"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// mpcli logs in against a multiplayer server and prints a snapshot of the
// caller's games, invites, chats, and the open lobbies. Mostly useful for
// poking at a server without booting the game.
func main() {
	if len(os.Args) > 1 {
		rootPath := os.Args[1]
		if rootPath == "" {
			log.Fatal("root directory path is empty")
		}

		if err := godotenv.Load(path.Join(rootPath, "config.env")); err != nil {
			log.Fatal(err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client := multiplayer.New(multiplayer.Config{
		BaseURL:    cfg.ServerURL,
		HTTPClient: newHTTPClient(cfg),
		Logger:     cfg.Logger,
	})

	ctx := context.Background()

	username := env.MustGetString(config.UsernameEnv)
	password := env.MustGetString(config.PasswordEnv)

	ok, err := client.Auth.Login(ctx, username, password)
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		log.Fatal("login failed: bad credentials")
	}

	snapshot, err := client.Snapshot(ctx)
	if err != nil {
		log.Fatal(err)
	}

	cfg.Logger.Info(
		"multiplayer snapshot",
		zap.Int("games", len(snapshot.Games)),
		zap.Int("invites", len(snapshot.Invites)),
		zap.Int("friendChats", len(snapshot.Chats.FriendChats)),
		zap.Int("lobbyChats", len(snapshot.Chats.LobbyChats)),
		zap.Int("openLobbies", len(snapshot.Lobbies)),
	)

	if err := client.Auth.Logout(ctx); err != nil {
		log.Fatal(err)
	}
}

func newHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.RequestTimeout}
}
