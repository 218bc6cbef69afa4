// Command zztcore wires the simulation core to its external driver
// adapters and runs one world until interrupted: load (or start a fresh
// title world), run the tick loop, serve the debug spectate HTTP/WS
// surface, and save on shutdown (spec §6 "External Interfaces").
package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/openzzt/zztcore/internal/config"
	"github.com/openzzt/zztcore/internal/driver"
	"github.com/openzzt/zztcore/internal/engine"
	"github.com/openzzt/zztcore/internal/tune"
	"github.com/openzzt/zztcore/internal/world"
)

func main() {
	cfg := config.Load()

	log.Println("🧩 ================================")
	log.Println("🧩  ZZTCORE")
	log.Println("🧩 ================================")

	fs := driver.FileSystem{Dir: cfg.Paths.WorldsDir}
	saveFS := driver.FileSystem{Dir: cfg.Paths.SavesDir}

	eng := engine.NewEngine(engine.EngineConfig{
		TickRate: cfg.Engine.TickRate,
		Seed:     cfg.Engine.Seed,
	})

	if worldPath := os.Getenv("ZZT_WORLD"); worldPath != "" {
		data, err := fs.LoadWorld(worldPath)
		if err != nil {
			log.Printf("⚠️ could not load world %q: %v — starting title world", worldPath, err)
		} else if w, err := world.DecodeFile(data); err != nil {
			log.Printf("⚠️ %q failed to parse (You need a newer version of ZZT!): %v", worldPath, err)
		} else {
			eng.LoadWorld(w)
			log.Printf("📂 loaded world %q (%d boards)", worldPath, w.BoardCount())
		}
	}

	video := &driver.PNGVideo{}
	spectate := driver.NewSpectateServer(":"+strconv.Itoa(cfg.Spectate.Port), eng, video)
	eng.SetInput(spectate.Input)

	var audio *driver.BeepAudio
	if cfg.Audio.Enabled {
		a, err := driver.NewBeepAudio(cfg.Audio.SampleRate)
		if err != nil {
			log.Printf("⚠️ audio init failed, continuing muted: %v", err)
		} else {
			audio = a
		}
	}

	eng.Start()
	go func() {
		if err := spectate.ListenAndServe(); err != nil {
			log.Printf("🛰️  spectate server stopped: %v", err)
		}
	}()
	go broadcastAndPlay(eng, spectate, audio)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go watchMenuCommands(eng, &saveFS, sig)
	<-sig

	log.Println("🧩 shutting down…")
	eng.Stop()
	spectate.Shutdown()
	autosave(eng, &saveFS, cfg.Paths.SavesDir)
}

// watchMenuCommands polls the engine's queued in-game menu keys (spec
// §4.2 "Player": "Q/S" among T/B/H/P/Q/S/?) and performs the real
// filesystem/process action the core itself has no business doing:
// "save" writes the world out immediately, "quit" raises the same
// signal the OS would on Ctrl-C so the normal shutdown path runs.
// "help"/"besttimes"/"pause" have no driver-side handler yet — the
// text-window/sidebar UI that would render them is out of scope (spec
// §1) — so they are logged and dropped.
func watchMenuCommands(eng *engine.Engine, saveFS *driver.FileSystem, sig chan os.Signal) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		for _, cmd := range eng.DrainCommands() {
			switch cmd {
			case "save":
				autosave(eng, saveFS, saveFS.Dir)
			case "quit":
				sig <- syscall.SIGTERM
			default:
				log.Printf("🧩 menu command %q has no driver handler yet", cmd)
			}
		}
	}
}

// autosave writes the engine's current world to savesDir/autosave.sav.
// FileSystem.SaveWorld already retries once on a write failure (spec §7
// "On save failure, the game tries to reopen the file a second time").
func autosave(eng *engine.Engine, saveFS *driver.FileSystem, savesDir string) {
	if savesDir == "" || !eng.AllowSave() {
		return
	}
	w := eng.World()
	data := w.EncodeFile()
	savePath := filepath.Join("autosave.sav")
	if err := saveFS.SaveWorld(savePath, data); err != nil {
		log.Printf("⚠️ autosave failed: %v", err)
		return
	}
	log.Printf("💾 autosaved to %s", filepath.Join(savesDir, savePath))
}

// broadcastAndPlay runs at a fixed cadence independent of the engine's
// own tick rate: it pushes a fresh BoardSnapshot to connected spectators
// and resolves any sound events the last batch of ticks queued into
// actual tones, the way the original engine's idle() loop interleaves
// rendering and sound dispatch between ticks (spec §5 "suspension
// points").
func broadcastAndPlay(eng *engine.Engine, spectate *driver.SpectateServer, audio *driver.BeepAudio) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		spectate.Broadcast()
		for _, name := range eng.DrainSounds() {
			notes, priority, ok := tune.Lookup(name)
			if !ok || audio == nil {
				continue
			}
			audio.Play(notes, priority)
		}
	}
}
