package invites

import (
	"context"
	"net/http"

	"github.com/veldtgame/multiplayer/internal/multiplayer/core"

	"github.com/google/uuid"
)

// Invite relates an inviting friend to a lobby the caller can join.
type Invite struct {
	From      uuid.UUID `json:"from"`
	LobbyID   int64     `json:"lobbyID"`
	LobbyName string    `json:"lobbyName"`
}

type Client struct {
	c *core.Client
}

func NewClient(c *core.Client) *Client {
	return &Client{c}
}

// List returns invites addressed to the caller.
func (cl *Client) List(ctx context.Context) ([]Invite, error) {
	return core.Send[[]Invite](ctx, cl.c, http.MethodGet, "/invites", nil)
}

type newRequest struct {
	Friend  uuid.UUID `json:"friend"`
	LobbyID int64     `json:"lobbyID"`
}

// New invites a friend into a lobby. The server checks that the caller is
// currently a member of the lobby and that the friend is not in a pending
// friend-request relationship with the caller; violations come back as
// structured errors, not client-side checks.
func (cl *Client) New(ctx context.Context, friend uuid.UUID, lobbyID int64) error {
	request := newRequest{Friend: friend, LobbyID: lobbyID}
	_, err := core.Send[core.Unit](ctx, cl.c, http.MethodPost, "/invites", request)
	return err
}
