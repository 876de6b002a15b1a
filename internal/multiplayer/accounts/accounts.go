package accounts

import (
	"context"
	"net/http"

	"github.com/veldtgame/multiplayer/internal/multiplayer/core"

	"github.com/google/uuid"
)

// Account is the profile record the server holds for a player. The UUID
// is the stable identity; usernames are mutable and must not be cached as
// identity keys across sessions.
type Account struct {
	UUID        uuid.UUID `json:"uuid"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
}

type Client struct {
	c *core.Client
}

func NewClient(c *core.Client) *Client {
	return &Client{c}
}

// Get fetches the caller's own account. Fails without a valid session.
func (cl *Client) Get(ctx context.Context) (Account, error) {
	return core.Send[Account](ctx, cl.c, http.MethodGet, "/accounts/me", nil)
}

// Lookup resolves an account by its stable UUID.
func (cl *Client) Lookup(ctx context.Context, id uuid.UUID) (Account, error) {
	return core.Send[Account](ctx, cl.c, http.MethodGet, "/accounts/"+id.String(), nil)
}

type lookupUsernameRequest struct {
	Username string `json:"username"`
}

// LookupUsername resolves an account by username through the dedicated
// lookup endpoint. Same response schema as Lookup, but remember the
// username can change under you - resolve to a UUID before storing.
func (cl *Client) LookupUsername(ctx context.Context, username string) (Account, error) {
	request := lookupUsernameRequest{Username: username}
	return core.Send[Account](ctx, cl.c, http.MethodPost, "/accounts/lookup", request)
}

type updateRequest struct {
	Username    *string `json:"username,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
}

// Update changes the caller's username and/or display name. At least one
// field must be non-nil - the server rejects an all-absent update. The
// new state is not echoed back; call Get if confirmation is needed.
func (cl *Client) Update(ctx context.Context, username, displayName *string) error {
	request := updateRequest{Username: username, DisplayName: displayName}
	_, err := core.Send[core.Unit](ctx, cl.c, http.MethodPut, "/accounts/me", request)
	return err
}

// Delete removes the caller's own account. The shared session credential
// is cleared once the server confirms - the token is invalid server-side
// from that point on.
func (cl *Client) Delete(ctx context.Context) error {
	if _, err := core.Send[core.Unit](ctx, cl.c, http.MethodDelete, "/accounts/me", nil); err != nil {
		return err
	}

	cl.c.Session.Clear()
	return nil
}

type setPasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// SetPassword changes the caller's password, proving knowledge of the old
// one. A wrong old password surfaces through the regular APIError path.
func (cl *Client) SetPassword(ctx context.Context, oldPassword, newPassword string) error {
	request := setPasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}
	_, err := core.Send[core.Unit](ctx, cl.c, http.MethodPost, "/accounts/setPassword", request)
	return err
}

type registerRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

// Register creates a new account. It does not authenticate - follow up
// with auth.Client.Login to obtain a session.
func (cl *Client) Register(ctx context.Context, username, displayName, password string) error {
	request := registerRequest{
		Username:    username,
		DisplayName: displayName,
		Password:    password,
	}

	_, err := core.Send[core.Unit](ctx, cl.c, http.MethodPost, "/accounts/register", request)
	return err
}
