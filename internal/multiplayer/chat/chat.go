package chat

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/veldtgame/multiplayer/internal/multiplayer/core"

	"github.com/google/uuid"
)

type Room struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Overview keeps the server's categorization of rooms intact rather than
// flattening friend chats and lobby chats into one list.
type Overview struct {
	FriendChats []Room `json:"friendChats"`
	LobbyChats  []Room `json:"lobbyChats"`
}

type Message struct {
	Sender uuid.UUID `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}

type Member struct {
	UUID        uuid.UUID `json:"uuid"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
}

// Detail is one room's message history plus its current member list. The
// member list includes the caller.
type Detail struct {
	Messages []Message `json:"messages"`
	Members  []Member  `json:"members"`
}

type Client struct {
	c *core.Client
}

func NewClient(c *core.Client) *Client {
	return &Client{c}
}

// List returns all rooms visible to the caller, categorized by the server.
func (cl *Client) List(ctx context.Context) (Overview, error) {
	return core.Send[Overview](ctx, cl.c, http.MethodGet, "/chats", nil)
}

// Get returns one room's messages and members.
func (cl *Client) Get(ctx context.Context, roomID int64) (Detail, error) {
	path := "/chats/" + strconv.FormatInt(roomID, 10)
	return core.Send[Detail](ctx, cl.c, http.MethodGet, path, nil)
}
