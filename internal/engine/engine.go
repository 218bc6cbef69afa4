// Package engine drives the per-tick scheduler: it walks a board's stat
// list in strictly increasing order, runs each due stat's behavior or
// script, and advances the countdown timers (torch, energizer, time
// limit) that ride alongside the board (spec §4.6 "scheduler").
package engine

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/openzzt/zztcore/internal/board"
	"github.com/openzzt/zztcore/internal/elements"
	"github.com/openzzt/zztcore/internal/metrics"
	"github.com/openzzt/zztcore/internal/oop"
	"github.com/openzzt/zztcore/internal/tile"
	"github.com/openzzt/zztcore/internal/world"
)

// tickWrap is the tick counter's wraparound point, matching the
// original engine's 18.2 Hz timer rolling over roughly every 23 seconds
// (spec §4.6 "tick counter wraparound").
const tickWrap = 420

// Mode mirrors world.Mode: title/demo vs normal play, gating whether the
// scheduler processes menu keys instead of running the simulation.
type Mode = world.Mode

const (
	ModeTitle = world.ModeTitle
	ModePlay  = world.ModePlay
)

// EngineConfig holds the knobs NewEngine needs. Zero values are sane
// defaults (10 ticks/second, a time-derived RNG seed).
type EngineConfig struct {
	TickRate int
	Seed     int64
}

// Engine owns one running World and the goroutine that advances it.
// Following the teacher's locked-struct pattern: a single mutex guards
// everything, and Start spins up one ticker-driven goroutine that calls
// the private tick method.
type Engine struct {
	mu sync.RWMutex

	world *world.World
	mode  Mode

	tickRate int
	tickCount int64
	running   bool
	ticker    *time.Ticker
	stopChan  chan struct{}

	rng     *rand.Rand
	rngSeed int64

	sessionID uuid.UUID

	errLimiter  *rate.Limiter
	saveLimiter *rate.Limiter

	gameOver bool

	onGameOver func()

	input           Input
	pendingSounds   []string
	pendingMessages []string
	pendingCommands []string
}

// Input is the narrow keyboard-equivalent surface the engine polls once
// per tick to drive the player stat (spec §6 "Input"; mirrors
// internal/driver.Input without importing it, the same narrow-seam
// pattern internal/oop.World uses for WorldInfo access).
type Input interface {
	Poll() (dx, dy int, action bool, cmd string)
}

// SetInput attaches the driver's input source. Calling it with nil
// disables automatic input polling (useful in tests that drive movement
// directly via TryMovePlayer).
func (e *Engine) SetInput(in Input) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.input = in
}

// NewEngine creates an engine around a fresh title world.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 10
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	titleWorld := world.NewTitleWorld()
	metrics.SetBoardCount(titleWorld.BoardCount())
	return &Engine{
		world:       titleWorld,
		mode:        ModeTitle,
		tickRate:    cfg.TickRate,
		stopChan:    make(chan struct{}),
		rng:         rand.New(rand.NewSource(seed)),
		rngSeed:     seed,
		sessionID:   uuid.New(),
		errLimiter:  rate.NewLimiter(rate.Limit(5), 10),
		saveLimiter: rate.NewLimiter(rate.Limit(1), 3),
	}
}

// SessionID identifies this engine run for event-log correlation.
func (e *Engine) SessionID() uuid.UUID { return e.sessionID }

// AllowSave reports whether a save/autosave attempt may proceed right
// now, throttling a misbehaving save loop (e.g. a script stuck spamming
// board transitions) the way the teacher's event limiter caps a single
// player's event rate.
func (e *Engine) AllowSave() bool {
	return e.saveLimiter.Allow()
}

// LoadWorld replaces the running world and switches to play mode.
func (e *Engine) LoadWorld(w *world.World) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.world = w
	e.mode = ModePlay
	e.gameOver = false
	metrics.SetBoardCount(w.BoardCount())
}

// World returns the engine's current world. Callers must not mutate it
// concurrently with a running tick; take a snapshot for rendering
// instead (see internal/driver).
func (e *Engine) World() *world.World {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.world
}

// Start begins the tick loop in a background goroutine.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.mu.Unlock()

	e.ticker = time.NewTicker(time.Second / time.Duration(e.tickRate))
	go func() {
		for {
			select {
			case <-e.ticker.C:
				e.tick()
			case <-e.stopChan:
				return
			}
		}
	}()
	log.Printf("🧩 engine %s started at %d ticks/sec", e.sessionID, e.tickRate)
}

// Stop halts the tick loop.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return
	}
	e.running = false
	e.ticker.Stop()
	close(e.stopChan)
	log.Printf("🧩 engine %s stopped after %d ticks", e.sessionID, e.tickCount)
}

// tick advances the simulation by one step: countdown timers, then the
// per-stat scheduler walk (spec §4.6).
func (e *Engine) tick() {
	start := time.Now()
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode != ModePlay || e.gameOver {
		return
	}

	e.tickCount++
	if e.tickCount >= tickWrap {
		e.tickCount = 0
	}

	e.advanceCountdowns()

	b := e.world.Current()

	var events elements.Events
	if e.input != nil {
		events = e.handleInputLocked(b)
	}
	statEvents := e.tickStats(b)
	events.GameOver = events.GameOver || statEvents.GameOver
	events.PlayerHit += statEvents.PlayerHit
	events.ScoreDelta += statEvents.ScoreDelta
	events.Sounds = append(events.Sounds, statEvents.Sounds...)
	events.Messages = append(events.Messages, statEvents.Messages...)

	if events.ScoreDelta != 0 {
		e.world.Info.Score += events.ScoreDelta
	}
	e.world.Info.Ammo += events.AmmoDelta
	e.world.Info.Gems += events.GemsDelta
	e.world.Info.Health += events.HealthDelta
	e.world.Info.Torches += events.TorchesDelta
	if events.EnergizerSet > 0 {
		e.world.Info.EnergizerTicks = events.EnergizerSet
	}
	if events.HasKeyGrant {
		e.world.Info.Keys[events.KeyColor] = true
	}
	if events.PassageTriggered {
		if err := e.world.GotoPassage(events.PassageBoard, events.PassageColor); err == nil {
			b = e.world.Current()
		}
	}

	if events.GameOver {
		e.gameOver = true
		if e.onGameOver != nil {
			e.onGameOver()
		}
	}
	if events.PlayerHit > 0 {
		e.world.Info.Health -= events.PlayerHit
		if e.world.Info.Health <= 0 {
			e.gameOver = true
			if e.onGameOver != nil {
				e.onGameOver()
			}
		}
	}

	e.pendingSounds = append(e.pendingSounds, events.Sounds...)
	e.pendingMessages = append(e.pendingMessages, events.Messages...)

	metrics.ObserveTick(time.Since(start))
	metrics.SetStatCount(b.Stats.Count())
}

// DrainSounds returns and clears the sound event names queued since the
// last call, for a driver.Audio sink to resolve through tune.Lookup and
// play (spec §6 "Timer/audio": "note queue with priority"). Calling this
// from outside the scheduler goroutine is safe; it takes the same lock
// tick does.
func (e *Engine) DrainSounds() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.pendingSounds
	e.pendingSounds = nil
	return s
}

// DrainMessages returns and clears the timed-message/dialog lines queued
// since the last call (spec §4.5 "a single accumulated line becomes a
// timed message"), for a driver to show.
func (e *Engine) DrainMessages() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	m := e.pendingMessages
	e.pendingMessages = nil
	return m
}

// DrainCommands returns and clears the in-game menu keys ("quit",
// "save", "help", "besttimes", "pause") queued since the last call
// (spec §4.2 "Player": "in-game menu items T/B/H/P/Q/S/?"). "torch" is
// handled inline by the engine itself (it mutates WorldInfo directly)
// and never appears here; the rest name UI/filesystem actions that live
// outside the simulation core (spec §1 "text-window widget… sidebar/
// high-score UI", "the file-system driver"), so the driver owns acting
// on them — e.g. cmd/zztcore triggers a real save or shutdown.
func (e *Engine) DrainCommands() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	c := e.pendingCommands
	e.pendingCommands = nil
	return c
}

// advanceCountdowns ticks torch light, energizer invincibility, and the
// board time limit down toward zero, ending the game if the limit
// expires (spec §4.6 "timers").
func (e *Engine) advanceCountdowns() {
	info := &e.world.Info
	if info.TorchTicks > 0 {
		info.TorchTicks--
	}
	if info.EnergizerTicks > 0 {
		info.EnergizerTicks--
	}

	b := e.world.Current()
	if b.Info.TimeLimitSec <= 0 {
		return
	}
	info.BoardTimeHsec++
	if info.BoardTimeHsec >= 18 {
		info.BoardTimeHsec = 0
		info.BoardTimeSec++
		if info.BoardTimeSec >= b.Info.TimeLimitSec {
			e.gameOver = true
		}
	}
}

// tickStats is the scheduler's core walk: strictly increasing stat ids,
// with the list's own CurrentTicked bookkeeping absorbing any removal
// that happens mid-tick so the loop never skips or double-ticks the stat
// that slides into a freed slot (spec §8 property 2).
func (e *Engine) tickStats(b *board.Board) elements.Events {
	ctx := &elements.TickContext{Board: b, RNG: e.rng, Energized: e.world.Info.EnergizerTicks > 0, Keys: e.world.Info.Keys}

	count := b.Stats.Count()
	for id := 1; id <= count; {
		b.Stats.SetCurrentTicked(id)
		s := b.Stats.Get(id)
		if s == nil {
			id++
			continue
		}
		if s.Cycle != 0 && e.tickCount%int64(s.Cycle) == int64(id%s.Cycle) {
			t := b.Map.Get(s.X, s.Y)
			def := elements.Catalog[t.Element]
			switch {
			case t.Element == tile.Object || t.Element == tile.Scroll:
				e.runScript(ctx, id)
			case def.Tick != nil:
				def.Tick(ctx, id)
			}
		}

		newCount := b.Stats.Count()
		if newCount < count {
			id = b.Stats.CurrentTicked() + 1
			count = newCount
		} else {
			id++
		}
	}
	b.Stats.SetCurrentTicked(tile.NoStat)
	e.deliverShotMessages(b, ctx.Events.ShotStats)
	return ctx.Events
}

// deliverShotMessages resolves the SHOT messages a bullet/star queued
// against Object/Scroll targets this tick (spec §4.2 "Bullet… sends SHOT
// to the target stat"): each target stat's script cursor jumps to its
// ":SHOT" label, the same hand-off #SEND performs, if one exists; a
// target with no such label is left running from wherever it was, since
// spec §4.5 describes SEND as setting data_pos "subject to" finding the
// label, not guaranteeing a jump.
func (e *Engine) deliverShotMessages(b *board.Board, targets []int) {
	for _, id := range targets {
		s := b.Stats.Get(id)
		if s == nil || s.Data == nil {
			continue
		}
		if label := oop.FindLabel(s.Data.Bytes, "SHOT"); label >= 0 {
			s.DataPos = label
		}
	}
}

// runScript drives one Object/Scroll stat's OOP program for this cycle.
func (e *Engine) runScript(ctx *elements.TickContext, id int) {
	s := ctx.Board.Stats.Get(id)
	if s == nil || s.Data == nil || s.DataPos < 0 {
		return
	}
	m := &oop.Machine{
		Board:     ctx.Board,
		StatID:    id,
		World:     worldCounterAdapter{e.world},
		RNG:       e.rng,
		Energized: ctx.Energized,
	}
	oop.OopExecute(m)
	ctx.Events.Sounds = append(ctx.Events.Sounds, m.Events.Sounds...)
	if m.Events.GameOver {
		ctx.Events.GameOver = true
	}
	ctx.Events.PlayerHit += m.Events.PlayerHit

	for i := 0; i < m.Events.OopErrors; i++ {
		if e.errLimiter.Allow() {
			metrics.IncOopError()
		}
	}
}

// playerStatID is the StatList slot the player always occupies (spec §3
// "Stat 0 is reserved for the player"; internal/tile's arena reserves
// index 1 for it instead of 0 since slot 0 is a sentinel).
const playerStatID = 1

// handleInputLocked polls the attached driver.Input once and applies it
// to the player stat for this tick: movement (touching the destination,
// pushing pushables, attacking enemies) and shooting, consuming ammo
// (spec §4.2 "Player"). Called with e.mu already held by tick.
func (e *Engine) handleInputLocked(b *board.Board) elements.Events {
	dx, dy, action, cmd := e.input.Poll()
	ctx := &elements.TickContext{Board: b, RNG: e.rng, Energized: e.world.Info.EnergizerTicks > 0, Keys: e.world.Info.Keys}

	if dx != 0 || dy != 0 {
		e.tryMovePlayer(ctx, dx, dy)
	}
	if action {
		e.playerShoot(ctx, b)
	}
	if cmd != "" {
		e.handleCommand(ctx, b, cmd)
	}
	return ctx.Events
}

// handleCommand dispatches one in-game menu key (spec §4.2 "Player":
// "T/B/H/P/Q/S/?"). "torch" is the one menu command with real simulation
// state to mutate — is_dark and the torch/ammo-style countdowns all live
// in WorldInfo/BoardInfo, which this package already owns — so it is
// resolved here and now. Every other key names a UI or filesystem action
// this package has no business performing (spec §1 places the text
// window, sidebar/high-score UI, and file-system driver outside the
// core); those are queued via DrainCommands for the driver to act on.
func (e *Engine) handleCommand(ctx *elements.TickContext, b *board.Board, cmd string) {
	if cmd != "torch" {
		e.pendingCommands = append(e.pendingCommands, cmd)
		return
	}
	consumed, newTicks := elements.ActivateTorch(ctx, e.world.Info.Torches, e.world.Info.TorchTicks)
	if consumed {
		e.world.Info.Torches--
		e.world.Info.TorchTicks = newTicks
	}
}

// tryMovePlayer steps the player one cell in (dx, dy). A tile with a
// registered touch hook — Scroll, Bomb, Transporter, Door, items, and
// every other item/mechanism in internal/elements/player.go and
// mechanisms.go — always gets its Touch consulted first, exactly as any
// other stat touching it would (spec §4.2 "Scroll"/"Bomb"/"Transporter",
// scenario S5). Only a stat-backed tile with *no* touch hook — an enemy —
// falls back to BoardAttack; anything else falls through to the normal
// move/push resolution (spec §4.3 "ElementMove").
func (e *Engine) tryMovePlayer(ctx *elements.TickContext, dx, dy int) {
	b := ctx.Board
	p := b.Stats.Player()
	p.StepX, p.StepY = dx, dy
	nx, ny := p.X+dx, p.Y+dy

	t := b.Map.Get(nx, ny)
	def := elements.Catalog[t.Element]

	if def.Touch != nil {
		if !def.Touch(ctx, nx, ny) {
			return
		}
		t = b.Map.Get(nx, ny)
		def = elements.Catalog[t.Element]
	} else if targetID := b.Stats.At(nx, ny); targetID != tile.NoStat && targetID != playerStatID {
		elements.BoardAttack(ctx, playerStatID, targetID)
		return
	}

	switch {
	case t.Element == tile.Empty || def.Walkable:
		elements.ElementMove(ctx, playerStatID, nx, ny)
	case def.Pushable:
		if elements.ElementPushablePush(ctx, nx, ny, dx, dy) {
			elements.ElementMove(ctx, playerStatID, nx, ny)
		}
	}
}

// playerShoot fires a bullet from the player toward their current facing
// direction, consuming one ammo (spec §4.2 "Player": "shooting consumes
// one ammo and spawns a bullet from the player").
func (e *Engine) playerShoot(ctx *elements.TickContext, b *board.Board) {
	if e.world.Info.Ammo <= 0 {
		return
	}
	p := b.Stats.Player()
	if p.StepX == 0 && p.StepY == 0 {
		return
	}
	if elements.BoardShoot(ctx, p.X+p.StepX, p.Y+p.StepY, p.StepX, p.StepY, false, elements.ShotSourcePlayer) {
		e.world.Info.Ammo--
		ctx.Events.Sound("shoot")
	}
}
