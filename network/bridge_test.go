package network

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/service"
)

func testBridge(t *testing.T) (*Bridge, string) {
	t.Helper()
	b := NewBridge(nil, nil)
	ts := httptest.NewServer(b.Handler())
	t.Cleanup(ts.Close)
	return b, "ws" + strings.TrimPrefix(ts.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(msg, v))
}

func writeFrame(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, b))
}

func TestBridge_Welcome(t *testing.T) {
	b, url := testBridge(t)
	conn := dial(t, url)

	var w WelcomeFrame
	readFrame(t, conn, &w)
	assert.Equal(t, FrameWelcome, w.Type)
	assert.Len(t, w.Client, 36)

	require.Eventually(t, func() bool { return b.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestBridge_SamplesFromClient(t *testing.T) {
	b, url := testBridge(t)

	_, err := b.Sample()
	assert.ErrorIs(t, err, ErrNoClients)
	_, err = b.Bounds()
	assert.ErrorIs(t, err, ErrNoClients)

	conn := dial(t, url)
	var w WelcomeFrame
	readFrame(t, conn, &w)
	require.Eventually(t, func() bool { return b.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	_, err = b.Sample()
	assert.ErrorIs(t, err, ErrNoSample)

	writeFrame(t, conn, map[string]any{"type": "cursor", "x": 120, "y": 340})
	writeFrame(t, conn, map[string]any{"type": "workarea", "x": 0, "y": 0, "width": 1280, "height": 720})

	require.Eventually(t, func() bool {
		p, err := b.Sample()
		return err == nil && p == core.Point{X: 120, Y: 340}
	}, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		a, err := b.Bounds()
		return err == nil && a == core.Area{Width: 1280, Height: 720}
	}, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool {
		_, err := b.Sample()
		return err == ErrNoClients
	}, 2*time.Second, 10*time.Millisecond)
}

func TestBridge_FlushBatchesCommands(t *testing.T) {
	b, url := testBridge(t)
	conn := dial(t, url)
	var w WelcomeFrame
	readFrame(t, conn, &w)
	require.Eventually(t, func() bool { return b.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	h := b.Create(100, core.Point{X: 10, Y: 20})
	b.SetSprite(h, component.SpriteCompanionAWalk)
	b.SetFacing(h, component.FacingLeft)
	b.SetVisible(h, false)
	b.SetPosition(service.Handle(999), 1, 1)
	b.Flush()

	var f CommandsFrame
	readFrame(t, conn, &f)
	assert.Equal(t, FrameCommands, f.Type)
	assert.Equal(t, uint64(1), f.Seq)
	require.Len(t, f.Commands, 4)
	assert.Equal(t, OpCreate, f.Commands[0].Op)
	assert.Equal(t, 100, f.Commands[0].Size)
	assert.Equal(t, component.SpriteCompanionAWalk, f.Commands[1].Sprite)
	assert.Equal(t, "left", f.Commands[2].Facing)
	require.NotNil(t, f.Commands[3].Visible)
	assert.False(t, *f.Commands[3].Visible)

	// Nothing pending, nothing sent
	b.Flush()
	b.Destroy(h)
	b.Destroy(h)
	b.Flush()
	readFrame(t, conn, &f)
	assert.Equal(t, uint64(2), f.Seq)
	require.Len(t, f.Commands, 1)
	assert.Equal(t, OpDestroy, f.Commands[0].Op)
}

func TestBridge_ReplaysSurfacesToLateClient(t *testing.T) {
	b, url := testBridge(t)

	h := b.Create(80, core.Point{X: 5, Y: 6})
	b.SetSprite(h, component.SpritePrimaryIdle)
	b.Flush()

	conn := dial(t, url)
	var w WelcomeFrame
	readFrame(t, conn, &w)

	var f CommandsFrame
	readFrame(t, conn, &f)
	require.Len(t, f.Commands, 4)
	assert.Equal(t, Command{Op: OpCreate, Handle: h, X: 5, Y: 6, Size: 80}, f.Commands[0])
	assert.Equal(t, component.SpritePrimaryIdle, f.Commands[1].Sprite)
}

func TestBridge_ControlFrames(t *testing.T) {
	b, url := testBridge(t)
	got := make(chan Control, 4)
	b.OnControl(func(c Control) { got <- c })

	conn := dial(t, url)
	var w WelcomeFrame
	readFrame(t, conn, &w)

	writeFrame(t, conn, map[string]any{"type": "control", "action": "bogus"})
	writeFrame(t, conn, map[string]any{"type": "nonsense"})
	writeFrame(t, conn, map[string]any{"type": "control", "action": "count", "value": 6})

	select {
	case c := <-got:
		assert.Equal(t, ActionCount, c.Action)
		assert.Equal(t, 6, c.Value)
		assert.Equal(t, w.Client, c.Client)
	case <-time.After(2 * time.Second):
		t.Fatal("control frame not delivered")
	}
	assert.Empty(t, got)
}

func TestDecodeInbound(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"cursor", `{"type":"cursor","x":1,"y":2}`, true},
		{"workarea", `{"type":"workarea","width":10,"height":10}`, true},
		{"empty workarea", `{"type":"workarea","width":0,"height":10}`, false},
		{"toggle", `{"type":"control","action":"toggle"}`, true},
		{"unknown action", `{"type":"control","action":"jump"}`, false},
		{"unknown type", `{"type":"hello"}`, false},
		{"garbage", `{`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeInbound([]byte(tt.in))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errBadFrame)
			}
		})
	}
}

func TestBridge_StartStop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:0"
	b := NewBridge(cfg, nil)

	require.NoError(t, b.Start())
	require.NoError(t, b.Start())
	addr := b.Addr()
	require.NotEmpty(t, addr)

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	var w WelcomeFrame
	readFrame(t, conn, &w)

	require.NoError(t, b.Stop())
	require.NoError(t, b.Stop())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}

func TestBridge_AddrConcurrentWithStart(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:0"
	b := NewBridge(cfg, nil)
	assert.Empty(t, b.Addr())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			_ = b.Addr()
		}
	}()
	require.NoError(t, b.Start())
	<-done

	assert.NotEmpty(t, b.Addr())
	require.NoError(t, b.Stop())
}
