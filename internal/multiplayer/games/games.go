package games

import (
	"context"
	"net/http"
	"time"

	"github.com/veldtgame/multiplayer/internal/multiplayer/core"

	"github.com/google/uuid"
)

// Overview is the cheap staleness probe: two copies of a game are
// equivalent iff their data identifiers match, so comparing DataID
// against the local copy avoids transferring the payload. LastActivity
// is advisory only and must not drive staleness decisions.
type Overview struct {
	UUID         uuid.UUID `json:"uuid"`
	DataID       int64     `json:"dataID"`
	LastActivity time.Time `json:"lastActivity"`
}

// Game is the full current state of one open game. GameData is an opaque
// blob versioned by the server-assigned, monotonically increasing DataID.
type Game struct {
	UUID     uuid.UUID `json:"uuid"`
	DataID   int64     `json:"dataID"`
	GameData string    `json:"gameData"`
}

type Client struct {
	c *core.Client
}

func NewClient(c *core.Client) *Client {
	return &Client{c}
}

// List returns a lightweight overview of every game the caller is in.
func (cl *Client) List(ctx context.Context) ([]Overview, error) {
	return core.Send[[]Overview](ctx, cl.c, http.MethodGet, "/games", nil)
}

// Get fetches the full state of one open game. Completed and aborted
// games are not retrievable through this path and answer with a
// not-found error.
func (cl *Client) Get(ctx context.Context, id uuid.UUID) (Game, error) {
	return core.Send[Game](ctx, cl.c, http.MethodGet, "/games/"+id.String(), nil)
}

type uploadRequest struct {
	UUID     uuid.UUID `json:"uuid"`
	GameData string    `json:"gameData"`
}

type uploadResponse struct {
	DataID int64 `json:"dataID"`
}

// Upload submits a full replacement state and returns the data identifier
// the server assigned to it, which the caller uses from then on to detect
// further remote changes. A game that is no longer open answers with a
// not-found error.
func (cl *Client) Upload(ctx context.Context, id uuid.UUID, gameData string) (int64, error) {
	request := uploadRequest{UUID: id, GameData: gameData}

	resp, err := core.Send[uploadResponse](ctx, cl.c, http.MethodPut, "/games", request)
	if err != nil {
		return 0, err
	}

	return resp.DataID, nil
}
