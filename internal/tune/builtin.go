package tune

// builtins maps the short event names internal/elements.Events.Sound
// attaches to a tick (door, gem, ricochet, ...) to the tune string and
// priority the original engine's sounds.cpp hard-codes for each effect
// (spec §6 "Tune mini-language": "used by #PLAY and by many built-in
// sounds").
var builtins = map[string]struct {
	tune     string
	priority int
}{
	"door":      {"TC", PriorityAmbient},
	"key":       {"TCEG", PriorityAmbient},
	"ammo":      {"TC", PriorityAmbient},
	"gem":       {"TCDEFG", PriorityAmbient},
	"torch":     {"TCD", PriorityAmbient},
	"energizer": {"SCDEFGAB+C", PriorityAmbient},
	"passage":   {"SC+C-C", PriorityPassage},
	"ricochet":  {"TC+C-C", PriorityRicochet},
	"shoot":     {"TC", PriorityAmbient},
	"bomb_tick": {"TC", PriorityBombTick},
	"bomb_blast": {"QC-C", PriorityBombBlast},
	"break":     {"TC-C", PriorityAmbient},
	"attack":    {"TC-C", PriorityAmbient},
	"door_open": {"TCE", PriorityAmbient},
	"ouch":      {"T-C", PriorityAmbient},
}

// Lookup resolves an event sound name to its parsed Notes and priority.
// Unknown names return ok=false so callers can skip silently, matching
// the original engine's "no sound defined, no sound played" behavior.
func Lookup(name string) (notes []Note, priority int, ok bool) {
	b, found := builtins[name]
	if !found {
		return nil, 0, false
	}
	return Parse(b.tune), b.priority, true
}
