package multiplayer

import (
	"context"
	"net/http"
	"net/url"

	"github.com/veldtgame/multiplayer/internal/multiplayer/accounts"
	"github.com/veldtgame/multiplayer/internal/multiplayer/auth"
	"github.com/veldtgame/multiplayer/internal/multiplayer/chat"
	"github.com/veldtgame/multiplayer/internal/multiplayer/core"
	"github.com/veldtgame/multiplayer/internal/multiplayer/friends"
	"github.com/veldtgame/multiplayer/internal/multiplayer/games"
	"github.com/veldtgame/multiplayer/internal/multiplayer/invites"
	"github.com/veldtgame/multiplayer/internal/multiplayer/lobbies"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	BaseURL *url.URL

	// HTTPClient owns pooling, TLS, and socket-level retries. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger may be nil; a nop logger is substituted.
	Logger *zap.Logger
}

// Client acts as the composition root for the multiplayer layer: one
// entry point composing the seven resource clients around one shared
// transport and one shared session credential. It is a plain value the
// caller owns, never a process-wide singleton, so isolated sessions can
// exist side by side.
type Client struct {
	Accounts *accounts.Client
	Auth     *auth.Client
	Chat     *chat.Client
	Friends  *friends.Client
	Games    *games.Client
	Invites  *invites.Client
	Lobbies  *lobbies.Client

	session *core.SessionCredential
}

func New(config Config) *Client {
	if config.HTTPClient == nil {
		config.HTTPClient = http.DefaultClient
	}

	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	session := &core.SessionCredential{}
	c := &core.Client{
		HTTP:    config.HTTPClient,
		BaseURL: config.BaseURL,
		Session: session,
		Logger:  config.Logger,
	}

	return &Client{
		Accounts: accounts.NewClient(c),
		Auth:     auth.NewClient(c),
		Chat:     chat.NewClient(c),
		Friends:  friends.NewClient(c),
		Games:    games.NewClient(c),
		Invites:  invites.NewClient(c),
		Lobbies:  lobbies.NewClient(c),
		session:  session,
	}
}

// LoggedIn reports whether a session token is currently held. It says
// nothing about whether the server still honors it.
func (c *Client) LoggedIn() bool {
	_, held := c.session.Token()
	return held
}

// Snapshot is the "what changed while I was away" poll a turn-based game
// performs on resume.
type Snapshot struct {
	Games   []games.Overview
	Invites []invites.Invite
	Chats   chat.Overview
	Lobbies []lobbies.Lobby
}

// Snapshot fans the read-only list calls out concurrently. The first
// failure cancels the rest and is returned; on success all four results
// are populated.
func (c *Client) Snapshot(ctx context.Context) (Snapshot, error) {
	var snapshot Snapshot

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		snapshot.Games, err = c.Games.List(ctx)
		return err
	})

	g.Go(func() error {
		var err error
		snapshot.Invites, err = c.Invites.List(ctx)
		return err
	})

	g.Go(func() error {
		var err error
		snapshot.Chats, err = c.Chat.List(ctx)
		return err
	})

	g.Go(func() error {
		var err error
		snapshot.Lobbies, err = c.Lobbies.List(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}
