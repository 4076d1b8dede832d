// Package network exposes the simulation to a browser overlay over a websocket.
// The bridge is a presenter, a cursor source and a work-area source at once:
// clients push pointer and screen samples, the bridge pushes batched surface commands.
package network

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/logging"
	"github.com/YuliaD2609/DesktopPotato/service"
)

var (
	// ErrNoClients is returned by samplers while no overlay is connected
	ErrNoClients = errors.New("no bridge clients connected")

	// ErrNoSample is returned until a connected client reports a value
	ErrNoSample = errors.New("no sample received")
)

// Bridge serves overlay clients and adapts them to the simulation ports
type Bridge struct {
	cfg      *Config
	log      *logging.Logger
	upgrader websocket.Upgrader

	mu        sync.Mutex
	clients   map[string]*client
	surfaces  map[service.Handle]*component.Visual
	pending   []Command
	next      service.Handle
	seq       uint64
	cursor    core.Point
	hasCursor bool
	area      core.Area
	hasArea   bool
	onControl func(Control)

	lifeMu  sync.Mutex   // Serializes Start and Stop
	srv     *http.Server // Guarded by mu
	ln      net.Listener // Guarded by mu
	running atomic.Bool
	wg      sync.WaitGroup
}

// client is one connected overlay
type client struct {
	id        string
	conn      *websocket.Conn
	out       chan []byte
	closeCh   chan struct{}
	closeOnce sync.Once
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.closeCh)
		c.conn.Close()
	})
}

// send queues b without blocking, false means the client is too slow
func (c *client) send(b []byte) bool {
	select {
	case <-c.closeCh:
		return false
	default:
	}
	select {
	case c.out <- b:
		return true
	default:
		return false
	}
}

// NewBridge creates a bridge, nil config selects defaults
func NewBridge(cfg *Config, log *logging.Logger) *Bridge {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = logging.Nop()
	}
	b := &Bridge{
		cfg:      cfg,
		log:      log,
		clients:  make(map[string]*client),
		surfaces: make(map[service.Handle]*component.Visual),
	}
	b.upgrader = websocket.Upgrader{
		ReadBufferSize:  cfg.ReadBufferSize,
		WriteBufferSize: cfg.WriteBufferSize,
		CheckOrigin:     b.checkOrigin,
	}
	return b
}

func (b *Bridge) checkOrigin(r *http.Request) bool {
	if len(b.cfg.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, o := range b.cfg.AllowedOrigins {
		if o == origin {
			return true
		}
	}
	return false
}

// OnControl registers the callback for control frames
// It runs on the client's reader goroutine with no bridge lock held
func (b *Bridge) OnControl(fn func(Control)) {
	b.mu.Lock()
	b.onControl = fn
	b.mu.Unlock()
}

func (b *Bridge) Name() string {
	return "bridge"
}

// Start binds the listener and serves in the background
func (b *Bridge) Start() error {
	b.lifeMu.Lock()
	defer b.lifeMu.Unlock()
	if b.running.Load() {
		return nil
	}

	ln, err := net.Listen("tcp", b.cfg.Address)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc(b.cfg.Path, b.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	b.mu.Lock()
	b.ln = ln
	b.srv = srv
	b.mu.Unlock()
	b.running.Store(true)

	b.wg.Add(1)
	core.Go(func() {
		defer b.wg.Done()
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			b.log.Error().Err(err).Msg("bridge serve failed")
		}
	})

	b.log.Info().Str("addr", ln.Addr().String()).Msg("bridge listening")
	return nil
}

// Stop closes the listener and every client
func (b *Bridge) Stop() error {
	b.lifeMu.Lock()
	defer b.lifeMu.Unlock()
	if !b.running.CompareAndSwap(true, false) {
		return nil
	}

	b.mu.Lock()
	srv := b.srv
	b.mu.Unlock()

	err := srv.Close()

	b.mu.Lock()
	for _, c := range b.clients {
		c.close()
	}
	b.mu.Unlock()

	b.wg.Wait()
	return err
}

// Addr returns the bound address, empty before Start
func (b *Bridge) Addr() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ln == nil {
		return ""
	}
	return b.ln.Addr().String()
}

// ClientCount returns the number of connected overlays
func (b *Bridge) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// Handler upgrades and serves one overlay connection
func (b *Bridge) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := b.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}

		c := &client{
			id:      uuid.NewString(),
			conn:    conn,
			out:     make(chan []byte, b.cfg.SendQueueSize),
			closeCh: make(chan struct{}),
		}
		defer b.drop(c)

		if !b.register(c) {
			return
		}

		b.wg.Add(1)
		core.Go(func() {
			defer b.wg.Done()
			b.writeLoop(c)
		})

		b.readLoop(c)
	}
}

// register queues the welcome and a replay of live surfaces, then publishes the client
func (b *Bridge) register(c *client) bool {
	welcome, err := json.Marshal(WelcomeFrame{Type: FrameWelcome, Client: c.id})
	if err != nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !c.send(welcome) {
		return false
	}
	if replay := b.replayLocked(); replay != nil {
		if !c.send(replay) {
			return false
		}
	}
	b.clients[c.id] = c
	b.log.Debug().Str("client", c.id).Int("clients", len(b.clients)).Msg("bridge client connected")
	return true
}

// replayLocked encodes the current surfaces as create commands
func (b *Bridge) replayLocked() []byte {
	if len(b.surfaces) == 0 {
		return nil
	}

	handles := make([]service.Handle, 0, len(b.surfaces))
	for h := range b.surfaces {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	cmds := make([]Command, 0, len(handles)*4)
	for _, h := range handles {
		v := b.surfaces[h]
		visible := v.Visible
		cmds = append(cmds,
			Command{Op: OpCreate, Handle: h, X: v.X, Y: v.Y, Size: v.Size},
			Command{Op: OpSprite, Handle: h, Sprite: v.Sprite},
			Command{Op: OpFacing, Handle: h, Facing: v.Facing.String()},
			Command{Op: OpVisible, Handle: h, Visible: &visible},
		)
	}

	out, err := json.Marshal(CommandsFrame{Type: FrameCommands, Seq: b.seq, Commands: cmds})
	if err != nil {
		return nil
	}
	return out
}

// drop unregisters and closes c, samples are forgotten once the last client leaves
func (b *Bridge) drop(c *client) {
	c.close()

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.clients[c.id]; !ok {
		return
	}
	delete(b.clients, c.id)
	if len(b.clients) == 0 {
		b.hasCursor = false
		b.hasArea = false
	}
	b.log.Debug().Str("client", c.id).Int("clients", len(b.clients)).Msg("bridge client disconnected")
}

func (b *Bridge) writeLoop(c *client) {
	defer c.close()

	for {
		select {
		case <-c.closeCh:
			return
		case msg := <-c.out:
			_ = c.conn.SetWriteDeadline(time.Now().Add(b.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}
}

func (b *Bridge) readLoop(c *client) {
	for {
		_ = c.conn.SetReadDeadline(time.Now().Add(b.cfg.ReadTimeout))
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		frame, err := decodeInbound(msg)
		if err != nil {
			b.log.Debug().Err(err).Str("client", c.id).Msg("frame ignored")
			continue
		}

		switch f := frame.(type) {
		case CursorFrame:
			b.mu.Lock()
			b.cursor = core.Point{X: f.X, Y: f.Y}
			b.hasCursor = true
			b.mu.Unlock()
		case WorkAreaFrame:
			b.mu.Lock()
			b.area = core.Area{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height}
			b.hasArea = true
			b.mu.Unlock()
		case Control:
			f.Client = c.id
			b.mu.Lock()
			fn := b.onControl
			b.mu.Unlock()
			if fn != nil {
				fn(f)
			}
		}
	}
}

// --- CursorProvider / WorkAreaProvider ---

// Sample returns the last pointer reported by any client
func (b *Bridge) Sample() (core.Point, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.clients) == 0 {
		return core.Point{}, ErrNoClients
	}
	if !b.hasCursor {
		return core.Point{}, ErrNoSample
	}
	return b.cursor, nil
}

// Bounds returns the last work area reported by any client
func (b *Bridge) Bounds() (core.Area, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.clients) == 0 {
		return core.Area{}, ErrNoClients
	}
	if !b.hasArea {
		return core.Area{}, ErrNoSample
	}
	return b.area, nil
}

// --- SurfacePresenter ---

func (b *Bridge) Create(size int, pos core.Point) service.Handle {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	h := b.next
	b.surfaces[h] = &component.Visual{X: pos.X, Y: pos.Y, Size: size}
	b.pending = append(b.pending, Command{Op: OpCreate, Handle: h, X: pos.X, Y: pos.Y, Size: size})
	return h
}

func (b *Bridge) SetPosition(h service.Handle, x, y int) {
	b.with(h, Command{Op: OpPosition, Handle: h, X: x, Y: y}, func(v *component.Visual) { v.X, v.Y = x, y })
}

func (b *Bridge) SetSize(h service.Handle, size int) {
	b.with(h, Command{Op: OpSize, Handle: h, Size: size}, func(v *component.Visual) { v.Size = size })
}

func (b *Bridge) SetSprite(h service.Handle, key component.SpriteKey) {
	b.with(h, Command{Op: OpSprite, Handle: h, Sprite: key}, func(v *component.Visual) { v.Sprite = key })
}

func (b *Bridge) SetFacing(h service.Handle, f component.Facing) {
	b.with(h, Command{Op: OpFacing, Handle: h, Facing: f.String()}, func(v *component.Visual) { v.Facing = f })
}

func (b *Bridge) SetVisible(h service.Handle, visible bool) {
	b.with(h, Command{Op: OpVisible, Handle: h, Visible: &visible}, func(v *component.Visual) { v.Visible = visible })
}

func (b *Bridge) Destroy(h service.Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.surfaces[h]; !ok {
		return
	}
	delete(b.surfaces, h)
	b.pending = append(b.pending, Command{Op: OpDestroy, Handle: h})
}

// with applies a command to a live surface, unknown handles are ignored
func (b *Bridge) with(h service.Handle, cmd Command, fn func(v *component.Visual)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.surfaces[h]
	if !ok {
		return
	}
	fn(v)
	b.pending = append(b.pending, cmd)
}

// Flush broadcasts the commands queued since the last flush as one frame
// Clients whose queue is full are disconnected
func (b *Bridge) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.pending) == 0 {
		return
	}
	b.seq++
	out, err := json.Marshal(CommandsFrame{Type: FrameCommands, Seq: b.seq, Commands: b.pending})
	b.pending = b.pending[:0]
	if err != nil {
		b.log.Error().Err(err).Msg("encode commands frame")
		return
	}

	for _, c := range b.clients {
		if !c.send(out) {
			b.log.Warn().Str("client", c.id).Msg("bridge client too slow, dropping")
			c.close()
		}
	}
}
