package engine

import "github.com/openzzt/zztcore/internal/world"

// worldCounterAdapter exposes world.World's WorldInfo to the OOP
// interpreter through the narrow oop.World interface, so internal/oop
// never needs to import internal/world directly.
type worldCounterAdapter struct {
	w *world.World
}

func (a worldCounterAdapter) Flag(name string) bool {
	for _, f := range a.w.Info.Flags {
		if f == name {
			return true
		}
	}
	return false
}

func (a worldCounterAdapter) SetFlag(name string, set bool) {
	info := &a.w.Info
	if !set {
		for i, f := range info.Flags {
			if f == name {
				info.Flags[i] = ""
			}
		}
		return
	}
	if a.Flag(name) {
		return
	}
	for i, f := range info.Flags {
		if f == "" {
			info.Flags[i] = name
			return
		}
	}
}

func (a worldCounterAdapter) Counter(name string) int {
	info := &a.w.Info
	switch name {
	case "AMMO":
		return info.Ammo
	case "GEMS":
		return info.Gems
	case "HEALTH":
		return info.Health
	case "TORCHES":
		return info.Torches
	case "SCORE":
		return info.Score
	default:
		return 0
	}
}

func (a worldCounterAdapter) AddCounter(name string, delta int) {
	info := &a.w.Info
	switch name {
	case "AMMO":
		info.Ammo += delta
	case "GEMS":
		info.Gems += delta
	case "HEALTH":
		info.Health += delta
	case "TORCHES":
		info.Torches += delta
	case "SCORE":
		info.Score += delta
	}
}
