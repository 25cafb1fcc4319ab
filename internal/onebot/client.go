package onebot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/net/websocket"

	"github.com/mapleparty/amoria/internal/bot"
)

const defaultReconnectInterval = 5 * time.Second

var errNotConnected = errors.New("onebot: not connected")

// Handler consumes normalized events and produces reply text. The second
// return is false when the event is not addressed to the handler.
type Handler interface {
	Handle(ctx context.Context, ev bot.Event) (string, bool)
}

// Config carries the connection settings for a OneBot endpoint.
type Config struct {
	// URL is the forward websocket endpoint, e.g. ws://127.0.0.1:6700/.
	URL string
	// AccessToken, when set, is sent as a bearer token on the handshake.
	AccessToken string
	// ReconnectInterval is the pause between connection attempts.
	ReconnectInterval time.Duration
}

// Client is a OneBot v11 forward-websocket client. It reads message
// pushes, hands them to the Handler, and writes reply actions back on the
// same connection. It also implements the outbound broadcast sink, so the
// completion fan-out reuses the live connection.
type Client struct {
	cfg     Config
	handler Handler

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewClient builds a client for cfg. handler may be nil for send-only use.
func NewClient(cfg Config, handler Handler) *Client {
	return &Client{cfg: cfg, handler: handler}
}

// SetHandler installs the event handler. It must be called before Run;
// the handler wiring is usually circular (the handler's broadcast sink is
// this client), so construction happens in two steps.
func (c *Client) SetHandler(handler Handler) {
	c.handler = handler
}

// Run connects and serves the read loop, reconnecting on failure until
// ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	interval := c.cfg.ReconnectInterval
	if interval <= 0 {
		interval = defaultReconnectInterval
	}
	for {
		if err := c.serve(ctx); err != nil && ctx.Err() == nil {
			log.Printf("onebot: connection lost url=%s err=%v", c.cfg.URL, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

func (c *Client) serve(ctx context.Context) error {
	config, err := websocket.NewConfig(c.cfg.URL, "http://localhost/")
	if err != nil {
		return fmt.Errorf("configure websocket: %w", err)
	}
	if c.cfg.AccessToken != "" {
		config.Header = http.Header{"Authorization": {"Bearer " + c.cfg.AccessToken}}
	}

	conn, err := websocket.DialConfig(config)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.cfg.URL, err)
	}
	c.setConn(conn)
	defer func() {
		c.setConn(nil)
		_ = conn.Close()
	}()

	// Closing the connection unblocks the decoder when ctx is cancelled.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	log.Printf("onebot: connected url=%s", c.cfg.URL)

	decoder := json.NewDecoder(conn)
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read frame: %w", err)
		}
		c.dispatch(ctx, raw)
	}
}

// dispatch handles one inbound frame. Frames that are not message pushes
// (API echoes, heartbeats, notices) are dropped.
func (c *Client) dispatch(ctx context.Context, raw json.RawMessage) {
	var ev MessageEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		log.Printf("onebot: drop undecodable frame err=%v", err)
		return
	}
	if ev.PostType != "message" || c.handler == nil {
		return
	}

	reply, ok := c.handler.Handle(ctx, ev.Normalize())
	if !ok || reply == "" {
		return
	}
	if err := c.reply(ev, reply); err != nil {
		log.Printf("onebot: reply failed user=%d group=%d err=%v", ev.UserID, ev.GroupID, err)
	}
}

func (c *Client) reply(ev MessageEvent, text string) error {
	if ev.MessageType == "group" && ev.GroupID != 0 {
		return c.sendAction("send_group_msg", groupMessageParams{GroupID: ev.GroupID, Message: text})
	}
	return c.sendAction("send_private_msg", privateMessageParams{UserID: ev.UserID, Message: text})
}

// Send delivers text to a group channel. It implements the broadcast sink
// used for the completion fan-out; channelID is the decimal group id.
func (c *Client) Send(_ context.Context, channelID, text string) error {
	groupID, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid channel id %q: %w", channelID, err)
	}
	return c.sendAction("send_group_msg", groupMessageParams{GroupID: groupID, Message: text})
}

func (c *Client) sendAction(action string, params any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return errNotConnected
	}
	return websocket.JSON.Send(c.conn, actionFrame{Action: action, Params: params})
}

func (c *Client) setConn(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn = conn
}

type actionFrame struct {
	Action string `json:"action"`
	Params any    `json:"params"`
}

type groupMessageParams struct {
	GroupID int64  `json:"group_id"`
	Message string `json:"message"`
}

type privateMessageParams struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}
