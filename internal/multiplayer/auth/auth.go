package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/veldtgame/multiplayer/internal/multiplayer/core"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Client struct {
	c *core.Client
}

func NewClient(c *core.Client) *Client {
	return &Client{c}
}

// LoginOnly probes the credentials without persisting any session state.
// It reports bare success and never returns an error - any failure,
// including a transport one, reads as false.
func (cl *Client) LoginOnly(ctx context.Context, username, password string) bool {
	request := credentials{Username: username, Password: password}
	_, err := core.Send[core.Unit](ctx, cl.c, http.MethodPost, "/auth/login", request)
	return err == nil
}

// Login authenticates and stores the session token from the response's
// cookie set on success. Bad credentials are an expected outcome, not an
// exceptional one: the server's login-failed status maps to (false, nil).
// Every other failure is returned as-is.
func (cl *Client) Login(ctx context.Context, username, password string) (bool, error) {
	request := credentials{Username: username, Password: password}

	var token string
	_, err := core.Send[core.Unit](
		ctx,
		cl.c,
		http.MethodPost,
		"/auth/login",
		request,
		func(resp *http.Response) {
			for _, cookie := range resp.Cookies() {
				if cookie.Name != core.SessionCookie {
					continue
				}

				token = cookie.Value
				break
			}
		},
	)
	if err != nil {
		var apiErr core.APIError
		if errors.As(err, &apiErr) && apiErr.Status == core.StatusLoginFailed {
			return false, nil
		}

		return false, err
	}

	if token == "" {
		return false, fmt.Errorf("login response carried no %q cookie", core.SessionCookie)
	}

	cl.c.Session.Set(token)
	return true, nil
}

// Logout invalidates the server-side session. The shared credential is
// cleared only after the server confirms - a failed logout leaves the
// client's view of its own session untouched.
func (cl *Client) Logout(ctx context.Context) error {
	if _, err := core.Send[core.Unit](ctx, cl.c, http.MethodPost, "/auth/logout", nil); err != nil {
		return err
	}

	cl.c.Session.Clear()
	return nil
}
