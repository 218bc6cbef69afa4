package driver

import "sync"

// inputCommand is the JSON shape a spectate websocket client sends to
// steer the player: one cardinal step and/or a shoot action per message.
// This stands in for the BIOS keyboard poll the original engine reads
// (spec §6 "Input"), with a remote browser client as the input source
// instead of a local keyboard — the same role the teacher's chat-command
// listener (internal/chat) plays for its game, reinterpreted for a
// single-player world instead of crowd input.
type inputCommand struct {
	DX     int    `json:"dx"`
	DY     int    `json:"dy"`
	Action bool   `json:"action"`
	Cmd    string `json:"cmd"`
}

// WSInput buffers the most recent movement/shoot command received over
// the spectate websocket until the engine polls it, satisfying
// internal/engine.Input and internal/driver.Input without either package
// needing to know about websockets.
type WSInput struct {
	mu  sync.Mutex
	cmd inputCommand
}

func (w *WSInput) set(cmd inputCommand) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cmd = cmd
}

// Poll returns the last received direction/action/menu-command and
// clears it — each command is consumed exactly once, the way a single
// key-down event is.
func (w *WSInput) Poll() (dx, dy int, action bool, cmd string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	dx, dy, action, cmd = w.cmd.DX, w.cmd.DY, w.cmd.Action, w.cmd.Cmd
	w.cmd = inputCommand{}
	return dx, dy, action, cmd
}
