package wsecho

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
)

// Client is a connection to an echo server.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to the echo server at url, e.g. "ws://localhost:8765".
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

// Send writes message and reads the echoes the server sends back.
func (c *Client) Send(ctx context.Context, message string) ([]string, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = c.conn.SetReadDeadline(deadline)
		_ = c.conn.SetWriteDeadline(deadline)
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	replies := make([]string, 0, RepliesPerMessage)
	for range RepliesPerMessage {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return replies, fmt.Errorf("failed to read reply %d: %w", len(replies)+1, err)
		}
		replies = append(replies, string(data))
	}
	return replies, nil
}

// Close sends a close frame and closes the connection.
func (c *Client) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.conn.WriteMessage(websocket.CloseMessage, msg)
	return c.conn.Close()
}
