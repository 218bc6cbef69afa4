package driver

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"

	"github.com/openzzt/zztcore/internal/world"
)

// BoardSnapshot is the JSON-friendly view of a board pushed over the
// spectate websocket, standing in for the "video surface" a real
// terminal-mode renderer would paint (spec §6 "Video").
type BoardSnapshot struct {
	Name   string  `json:"name"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Tiles  []uint8 `json:"tiles"`  // element id per cell, row-major
	Colors []uint8 `json:"colors"` // color byte per cell, row-major
	Health int     `json:"health"`
	Ammo   int     `json:"ammo"`
	Gems   int     `json:"gems"`
	Score  int     `json:"score"`
}

// SnapshotOf builds a BoardSnapshot from the currently loaded board and
// world counters. It never mutates b or w, so it is safe to call with
// only a read lock held by the caller.
func SnapshotOf(w *world.World) BoardSnapshot {
	b := w.Current()
	width, height := b.Map.Width(), b.Map.Height()
	snap := BoardSnapshot{
		Name:   b.Name,
		Width:  width,
		Height: height,
		Tiles:  make([]uint8, width*height),
		Colors: make([]uint8, width*height),
		Health: w.Info.Health,
		Ammo:   w.Info.Ammo,
		Gems:   w.Info.Gems,
		Score:  w.Info.Score,
	}
	i := 0
	for y := 1; y <= height; y++ {
		for x := 1; x <= width; x++ {
			t := b.Map.Get(x, y)
			snap.Tiles[i] = uint8(t.Element)
			snap.Colors[i] = t.Color
			i++
		}
	}
	return snap
}

// EngineSource is the narrow slice of Engine the spectate server needs:
// access to the current world, from which it takes snapshots. Player
// input relayed from a connected client goes through SpectateServer.Input
// instead. This mirrors the teacher's
// EngineInterface seam (internal/api/router.go) used to keep the API
// package mockable in tests.
type EngineSource interface {
	World() *world.World
}

// spectateHub fans one board snapshot out to every connected websocket
// client, the way the teacher's WebSocketHub (internal/api/websocket.go)
// fans game-state broadcasts out to spectators.
type spectateHub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
}

func newSpectateHub() *spectateHub {
	return &spectateHub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *spectateHub) add(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *spectateHub) remove(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
	c.Close()
}

func (h *spectateHub) broadcast(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("⚠️ spectate: dropping client after write error: %v", err)
			go h.remove(c)
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// SpectateServer is the debug HTTP/WS surface a board can be observed
// through: one JSON snapshot route and one websocket that streams a
// fresh BoardSnapshot every tick (spec §6 "Video", domain-stack wiring
// for go-chi/chi, go-chi/cors, gorilla/websocket).
type SpectateServer struct {
	Engine EngineSource
	Video  *PNGVideo
	Input  *WSInput

	hub    *spectateHub
	server *http.Server
}

// NewSpectateServer builds the chi router the way the teacher's
// api.NewRouter does: logger + recoverer middleware, permissive CORS for
// the dev spectate UI, then the snapshot/PNG/websocket routes.
func NewSpectateServer(addr string, src EngineSource, video *PNGVideo) *SpectateServer {
	s := &SpectateServer{Engine: src, Video: video, Input: &WSInput{}, hub: newSpectateHub()}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET"},
		AllowCredentials: false,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/board", s.handleBoard)
	r.Get("/board.png", s.handleBoardPNG)
	r.Get("/ws", s.handleWS)

	s.server = &http.Server{Addr: addr, Handler: r}
	return s
}

func (s *SpectateServer) handleBoard(w http.ResponseWriter, r *http.Request) {
	snap := SnapshotOf(s.Engine.World())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

func (s *SpectateServer) handleBoardPNG(w http.ResponseWriter, r *http.Request) {
	if s.Video == nil {
		http.Error(w, "video not configured", http.StatusServiceUnavailable)
		return
	}
	if err := s.Video.DrawBoard(s.Engine.World().Current()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(s.Video.LastFrame)
}

func (s *SpectateServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.hub.add(conn)
	defer s.hub.remove(conn)
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var cmd inputCommand
		if json.Unmarshal(payload, &cmd) == nil {
			s.Input.set(cmd)
		}
	}
}

// Broadcast pushes the current board snapshot to every connected
// spectator; Engine callers invoke this once per tick (or on a slower
// cadence) from outside the scheduler's own lock.
func (s *SpectateServer) Broadcast() {
	payload, err := json.Marshal(SnapshotOf(s.Engine.World()))
	if err != nil {
		return
	}
	s.hub.broadcast(payload)
}

// ListenAndServe starts the HTTP server; it blocks until Shutdown is
// called or the server errors out.
func (s *SpectateServer) ListenAndServe() error {
	log.Printf("🛰️  spectate server listening on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *SpectateServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.server.Shutdown(ctx)
}
