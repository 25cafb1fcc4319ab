package onebot

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/websocket"

	"github.com/mapleparty/amoria/internal/bot"
)

type handlerFunc func(ctx context.Context, ev bot.Event) (string, bool)

func (f handlerFunc) Handle(ctx context.Context, ev bot.Event) (string, bool) {
	return f(ctx, ev)
}

type receivedAction struct {
	Action string `json:"action"`
	Params struct {
		GroupID int64  `json:"group_id"`
		UserID  int64  `json:"user_id"`
		Message string `json:"message"`
	} `json:"params"`
}

func wsURL(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestClientRepliesToGroupMessage(t *testing.T) {
	actions := make(chan receivedAction, 1)
	headers := make(chan string, 1)

	srv := httptest.NewServer(websocket.Handler(func(conn *websocket.Conn) {
		headers <- conn.Request().Header.Get("Authorization")
		push := map[string]any{
			"post_type":    "message",
			"message_type": "group",
			"group_id":     123456,
			"user_id":      10001,
			"raw_message":  "/APQ帮助",
			"sender":       map[string]any{"user_id": 10001, "nickname": "neo", "role": "member"},
		}
		if err := websocket.JSON.Send(conn, push); err != nil {
			t.Errorf("push event: %v", err)
			return
		}
		var action receivedAction
		if err := websocket.JSON.Receive(conn, &action); err != nil {
			t.Errorf("receive action: %v", err)
			return
		}
		actions <- action
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan bot.Event, 1)
	client := NewClient(Config{
		URL:               wsURL(t, srv),
		AccessToken:       "secret",
		ReconnectInterval: time.Hour,
	}, handlerFunc(func(_ context.Context, ev bot.Event) (string, bool) {
		events <- ev
		return "pong", true
	}))
	go func() { _ = client.Run(ctx) }()

	select {
	case authorization := <-headers:
		if authorization != "Bearer secret" {
			t.Fatalf("expected bearer token on handshake, got %q", authorization)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for handshake")
	}

	select {
	case action := <-actions:
		if action.Action != "send_group_msg" {
			t.Fatalf("expected send_group_msg, got %q", action.Action)
		}
		if action.Params.GroupID != 123456 || action.Params.Message != "pong" {
			t.Fatalf("unexpected action params %+v", action.Params)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reply action")
	}

	select {
	case seen := <-events:
		if seen.UserID != "10001" || seen.ChannelID != "123456" || seen.Text != "/APQ帮助" {
			t.Fatalf("unexpected normalized event %+v", seen)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for normalized event")
	}
}

func TestClientIgnoresNonMessageFrames(t *testing.T) {
	actions := make(chan receivedAction, 1)

	srv := httptest.NewServer(websocket.Handler(func(conn *websocket.Conn) {
		frames := []map[string]any{
			{"post_type": "meta_event", "meta_event_type": "heartbeat"},
			{"status": "ok", "retcode": 0, "echo": "1"},
			{"post_type": "message", "message_type": "group", "group_id": 1, "user_id": 2, "raw_message": "ping",
				"sender": map[string]any{"user_id": 2}},
		}
		for _, frame := range frames {
			if err := websocket.JSON.Send(conn, frame); err != nil {
				t.Errorf("push frame: %v", err)
				return
			}
		}
		var action receivedAction
		if err := websocket.JSON.Receive(conn, &action); err != nil {
			t.Errorf("receive action: %v", err)
			return
		}
		actions <- action
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handled := make(chan bot.Event, 3)
	client := NewClient(Config{URL: wsURL(t, srv), ReconnectInterval: time.Hour},
		handlerFunc(func(_ context.Context, ev bot.Event) (string, bool) {
			handled <- ev
			return "pong", true
		}))
	go func() { _ = client.Run(ctx) }()

	select {
	case <-actions:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reply action")
	}
	if got := len(handled); got != 1 {
		t.Fatalf("expected exactly the message frame handled, got %d", got)
	}
}

func TestSendRequiresConnection(t *testing.T) {
	client := NewClient(Config{URL: "ws://127.0.0.1:1/"}, nil)
	if err := client.Send(context.Background(), "123", "text"); err == nil {
		t.Fatal("expected error while disconnected")
	}
}

func TestSendRejectsBadChannelID(t *testing.T) {
	client := NewClient(Config{URL: "ws://127.0.0.1:1/"}, nil)
	if err := client.Send(context.Background(), "not-a-group", "text"); err == nil {
		t.Fatal("expected error for non-numeric channel id")
	}
}
