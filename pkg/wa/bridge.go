package wa

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/marcelandrean/wabot/pkg/logger"
)

// BridgeClient talks JSON frames over a websocket to the external messaging
// bridge process, which owns the actual protocol session.
type BridgeClient struct {
	url       string
	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
}

type outboundFrame struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	To       string          `json:"to"`
	Content  *MessageContent `json:"content,omitempty"`
	Quoted   *QuotedStub     `json:"quoted,omitempty"`
	Presence Presence        `json:"presence,omitempty"`
}

type inboundFrame struct {
	Type  string `json:"type"`
	Event *Event `json:"event,omitempty"`
}

func NewBridgeClient(url string) *BridgeClient {
	return &BridgeClient{url: url}
}

func (c *BridgeClient) Connect(ctx context.Context) error {
	logger.InfoCF("bridge", "Connecting to messaging bridge", map[string]interface{}{
		"url": c.url,
	})

	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to bridge: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	logger.InfoC("bridge", "Bridge connected")
	return nil
}

func (c *BridgeClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			logger.WarnCF("bridge", "Error closing bridge connection", map[string]interface{}{
				"error": err.Error(),
			})
		}
		c.conn = nil
	}
	c.connected = false
	return nil
}

func (c *BridgeClient) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// SendMessage submits one payload to the bridge for delivery to jid.
func (c *BridgeClient) SendMessage(ctx context.Context, jid string, content MessageContent, opts *SendOptions) error {
	frame := outboundFrame{
		ID:      uuid.NewString(),
		Type:    "send",
		To:      jid,
		Content: &content,
	}
	if opts != nil {
		frame.Quoted = opts.Quoted
	}
	return c.write(ctx, frame)
}

// SendPresence forwards a presence/typing indicator for jid.
func (c *BridgeClient) SendPresence(ctx context.Context, state Presence, jid string) error {
	return c.write(ctx, outboundFrame{
		ID:       uuid.NewString(),
		Type:     "presence",
		To:       jid,
		Presence: state,
	})
}

func (c *BridgeClient) write(ctx context.Context, frame outboundFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to marshal frame: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return fmt.Errorf("bridge connection not established")
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = c.conn.SetWriteDeadline(deadline)
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to send frame: %w", err)
	}
	return nil
}

// Listen reads message frames and delivers them to handler one at a time,
// in arrival order, until ctx is cancelled or the connection is closed by
// Close. Frames that fail to decode are skipped.
func (c *BridgeClient) Listen(ctx context.Context, handler func(*Event)) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		c.mu.Lock()
		conn := c.conn
		c.mu.Unlock()

		if conn == nil {
			return
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || !c.Connected() {
				return
			}
			logger.WarnCF("bridge", "Bridge read error", map[string]interface{}{
				"error": err.Error(),
			})
			time.Sleep(2 * time.Second)
			continue
		}

		var frame inboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			logger.WarnCF("bridge", "Failed to decode bridge frame", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}

		if frame.Type != "message" || frame.Event == nil {
			continue
		}
		handler(frame.Event)
	}
}
