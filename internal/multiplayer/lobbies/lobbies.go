package lobbies

import (
	"context"
	"net/http"

	"github.com/veldtgame/multiplayer/internal/multiplayer/core"
)

// Lobby is a pre-game waiting room. HasPassword only signals that one is
// set; password contents never transit the listing.
type Lobby struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	MaxPlayers  int    `json:"maxPlayers"`
	HasPassword bool   `json:"hasPassword"`
}

type Client struct {
	c *core.Client
}

func NewClient(c *core.Client) *Client {
	return &Client{c}
}

// List returns the open lobbies.
func (cl *Client) List(ctx context.Context) ([]Lobby, error) {
	return core.Send[[]Lobby](ctx, cl.c, http.MethodGet, "/lobbies", nil)
}

type openRequest struct {
	Name       string  `json:"name"`
	Password   *string `json:"password,omitempty"`
	MaxPlayers *int    `json:"maxPlayers,omitempty"`
}

type openResponse struct {
	LobbyID int64 `json:"lobbyID"`
}

type OpenOption func(*openRequest)

// WithPassword protects the lobby. The value is sent verbatim - the
// server rejects an empty string as distinct from no password at all.
func WithPassword(password string) OpenOption {
	return func(r *openRequest) {
		r.Password = &password
	}
}

// WithMaxPlayers caps the lobby's membership. The 2-34 bound is a
// server-enforced precondition; the client does not pre-validate.
func WithMaxPlayers(n int) OpenOption {
	return func(r *openRequest) {
		r.MaxPlayers = &n
	}
}

// Open creates a lobby and returns its ID. Omitted options leave the
// fields out of the request so server defaults apply. A caller already in
// a lobby is rejected by the server.
func (cl *Client) Open(ctx context.Context, name string, opts ...OpenOption) (int64, error) {
	request := openRequest{Name: name}
	for _, opt := range opts {
		opt(&request)
	}

	resp, err := core.Send[openResponse](ctx, cl.c, http.MethodPost, "/lobbies", request)
	if err != nil {
		return 0, err
	}

	return resp.LobbyID, nil
}
