package realtime

import (
	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"
)

// Client is one connected listener. The hub owns send and closes it when
// the client is disconnected; transports only read from it.
type Client struct {
	id      string
	send    chan Message
	limiter *rate.Limiter
}

func newClient(buffer int, limit rate.Limit, burst int) *Client {
	return &Client{
		id:      ulid.Make().String(),
		send:    make(chan Message, buffer),
		limiter: rate.NewLimiter(limit, burst),
	}
}

// ID is the volatile connection id reported as socketId.
func (c *Client) ID() string { return c.id }

// Messages returns the outbound queue. It is closed on disconnect.
func (c *Client) Messages() <-chan Message { return c.send }
