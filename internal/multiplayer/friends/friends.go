package friends

import (
	"context"
	"net/http"
	"strconv"

	"github.com/veldtgame/multiplayer/internal/multiplayer/core"

	"github.com/google/uuid"
)

type Participant struct {
	UUID        uuid.UUID `json:"uuid"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
}

// Friendship is one relation record between two accounts. A pending
// request and an accepted friendship are the same record under the same
// ID - accepting or deleting both go through the record's ID.
type Friendship struct {
	ID   int64       `json:"id"`
	From Participant `json:"from"`
	To   Participant `json:"to"`
}

// overview is the combined payload of the friends endpoint: established
// friendships alongside pending requests in both directions.
type overview struct {
	Friends  []Friendship `json:"friends"`
	Requests []Friendship `json:"friendRequests"`
}

type Client struct {
	c *core.Client
}

func NewClient(c *core.Client) *Client {
	return &Client{c}
}

func (cl *Client) fetch(ctx context.Context) (overview, error) {
	return core.Send[overview](ctx, cl.c, http.MethodGet, "/friends", nil)
}

// List returns established friendships only.
func (cl *Client) List(ctx context.Context) ([]Friendship, error) {
	o, err := cl.fetch(ctx)
	if err != nil {
		return nil, err
	}

	return o.Friends, nil
}

// ListRequests returns pending requests in both directions. The server
// does not mark direction; derive it from the caller's own UUID with
// Incoming and Outgoing.
func (cl *Client) ListRequests(ctx context.Context) ([]Friendship, error) {
	o, err := cl.fetch(ctx)
	if err != nil {
		return nil, err
	}

	return o.Requests, nil
}

// Incoming filters requests addressed to self. Pure, no network.
func Incoming(requests []Friendship, self uuid.UUID) []Friendship {
	var incoming []Friendship
	for _, r := range requests {
		if r.To.UUID == self {
			incoming = append(incoming, r)
		}
	}

	return incoming
}

// Outgoing filters requests sent by self. Together with Incoming it
// partitions the request set without duplicates.
func Outgoing(requests []Friendship, self uuid.UUID) []Friendship {
	var outgoing []Friendship
	for _, r := range requests {
		if r.From.UUID == self && r.To.UUID != self {
			outgoing = append(outgoing, r)
		}
	}

	return outgoing
}

// ListIncoming returns pending requests sent to the caller.
func (cl *Client) ListIncoming(ctx context.Context, self uuid.UUID) ([]Friendship, error) {
	requests, err := cl.ListRequests(ctx)
	if err != nil {
		return nil, err
	}

	return Incoming(requests, self), nil
}

// ListOutgoing returns pending requests the caller has sent.
func (cl *Client) ListOutgoing(ctx context.Context, self uuid.UUID) ([]Friendship, error) {
	requests, err := cl.ListRequests(ctx)
	if err != nil {
		return nil, err
	}

	return Outgoing(requests, self), nil
}

type newRequest struct {
	UUID uuid.UUID `json:"uuid"`
}

// Request creates a pending friend request towards another account.
func (cl *Client) Request(ctx context.Context, other uuid.UUID) error {
	_, err := core.Send[core.Unit](ctx, cl.c, http.MethodPost, "/friends", newRequest{UUID: other})
	return err
}

// Accept accepts a pending request. Friendships and requests share one ID
// space and one resolution operation; whether this reads as "accept" or
// "delete" depends on the record's state, not on the call.
func (cl *Client) Accept(ctx context.Context, id int64) error {
	return cl.resolve(ctx, id)
}

// Delete removes a friendship or withdraws/declines a pending request.
func (cl *Client) Delete(ctx context.Context, id int64) error {
	return cl.resolve(ctx, id)
}

func (cl *Client) resolve(ctx context.Context, id int64) error {
	path := "/friends/" + strconv.FormatInt(id, 10)
	_, err := core.Send[core.Unit](ctx, cl.c, http.MethodDelete, path, nil)
	return err
}
