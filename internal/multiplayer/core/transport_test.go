package core

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoRequest struct {
	Name string `json:"name"`
}

type echoResponse struct {
	Greeting string `json:"greeting"`
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	baseURL, err := url.Parse(server.URL)
	require.NoError(t, err)

	return &Client{
		HTTP:    server.Client(),
		BaseURL: baseURL,
		Session: &SessionCredential{},
		Logger:  zap.NewNop(),
	}
}

func Test_Send_Decodes_Typed_Response_On_Success(t *testing.T) {
	// Arrange
	r := chi.NewRouter()
	r.Post("/echo", func(w http.ResponseWriter, req *http.Request) {
		var body echoRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		require.Equal(t, "application/json", req.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(echoResponse{Greeting: "hello " + body.Name})
	})

	server := httptest.NewServer(r)
	defer server.Close()

	client := newTestClient(t, server)

	// Act
	resp, err := Send[echoResponse](context.Background(), client, http.MethodPost, "/echo", echoRequest{Name: "veldt"})

	// Assert
	require.NoError(t, err)
	require.Equal(t, "hello veldt", resp.Greeting)
}

func Test_Send_Returns_APIError_On_Failure_Status(t *testing.T) {
	// Arrange
	r := chi.NewRouter()
	r.Get("/missing", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(APIError{Status: StatusNotFound, Message: "no such thing"})
	})

	server := httptest.NewServer(r)
	defer server.Close()

	client := newTestClient(t, server)

	// Act
	resp, err := Send[echoResponse](context.Background(), client, http.MethodGet, "/missing", nil)

	// Assert - the zero value must never read as success.
	require.Error(t, err)
	require.Empty(t, resp.Greeting)

	var apiErr APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, StatusNotFound, apiErr.Status)
	require.Equal(t, "no such thing", apiErr.Message)
}

func Test_Send_Maps_Undecodable_Failure_Body_To_Generic_APIError(t *testing.T) {
	// Arrange
	r := chi.NewRouter()
	r.Get("/broken", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>gateway sad</html>"))
	})

	server := httptest.NewServer(r)
	defer server.Close()

	client := newTestClient(t, server)

	// Act
	_, err := Send[Unit](context.Background(), client, http.MethodGet, "/broken", nil)

	// Assert
	var apiErr APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, StatusError, apiErr.Status)
	require.Contains(t, apiErr.Message, "gateway sad")
}

func Test_Send_Attaches_Session_Cookie_When_Held(t *testing.T) {
	// Arrange
	var seenToken string

	r := chi.NewRouter()
	r.Get("/me", func(w http.ResponseWriter, req *http.Request) {
		if cookie, err := req.Cookie(SessionCookie); err == nil {
			seenToken = cookie.Value
		}
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(r)
	defer server.Close()

	client := newTestClient(t, server)
	client.Session.Set("token-456")

	// Act
	_, err := Send[Unit](context.Background(), client, http.MethodGet, "/me", nil)

	// Assert
	require.NoError(t, err)
	require.Equal(t, "token-456", seenToken)
}

func Test_Send_Propagates_Transport_Failure_Unwrapped(t *testing.T) {
	// Arrange - a server that is already gone.
	server := httptest.NewServer(http.NotFoundHandler())
	client := newTestClient(t, server)
	server.Close()

	// Act
	_, err := Send[Unit](context.Background(), client, http.MethodGet, "/anything", nil)

	// Assert - a distinct, lower-level failure kind, never an APIError.
	require.Error(t, err)

	var apiErr APIError
	require.False(t, errors.As(err, &apiErr))

	var urlErr *url.Error
	require.ErrorAs(t, err, &urlErr)
}

func Test_Send_Runs_Response_Options_Against_Raw_Response(t *testing.T) {
	// Arrange
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "issued", Path: "/"})
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(r)
	defer server.Close()

	client := newTestClient(t, server)

	// Act
	var issued string
	_, err := Send[Unit](
		context.Background(),
		client,
		http.MethodPost,
		"/login",
		nil,
		func(resp *http.Response) {
			for _, cookie := range resp.Cookies() {
				if cookie.Name == SessionCookie {
					issued = cookie.Value
				}
			}
		},
	)

	// Assert
	require.NoError(t, err)
	require.Equal(t, "issued", issued)
}
