package driver

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/openzzt/zztcore/internal/tune"
)

// ticksPerSecond is the original engine's timer resolution (spec §6
// "Tune mini-language": durations are counted in these ticks).
const ticksPerSecond = 18.2

// BeepAudio turns the tune-language note queue into square-wave PCM and
// plays it through the speaker, standing in for the text-mode PC
// speaker port (spec §6 "Timer/audio"). Grounded in the teacher's
// AudioMixer (internal/streaming/audio.go), which synthesizes and mixes
// waveforms by hand the same way; this adapter replaces the teacher's
// WAV-sample mixing with beep.StreamerFunc oscillators driven by
// internal/tune.Note, since the ZZT engine only ever needs tones, not
// sampled effects.
type BeepAudio struct {
	sampleRate beep.SampleRate

	mu      sync.Mutex
	playing bool
}

// NewBeepAudio initializes the speaker at the given sample rate. Call
// once at process startup.
func NewBeepAudio(sampleRate int) (*BeepAudio, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &BeepAudio{sampleRate: sr}, nil
}

// Play renders notes as a sequence of square waves and plays them. The
// priority argument is not consulted: cmd/zztcore calls Play for every
// sound it resolves through tune.Lookup, and internal/tune.Queue's
// arbitration is not part of this path.
func (a *BeepAudio) Play(notes []tune.Note, priority int) {
	a.mu.Lock()
	a.playing = true
	a.mu.Unlock()

	streamer := a.buildStreamer(notes)
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		a.mu.Lock()
		a.playing = false
		a.mu.Unlock()
	})))
}

// Playing reports whether a tune is currently sounding.
func (a *BeepAudio) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.playing
}

// buildStreamer concatenates one square-wave (or silent) oscillator per
// note into a single beep.Streamer.
func (a *BeepAudio) buildStreamer(notes []tune.Note) beep.Streamer {
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		dur := time.Duration(float64(n.Duration)/ticksPerSecond*1000) * time.Millisecond
		n := n
		streamers = append(streamers, a.tone(n.FreqHz, dur, n.Drum))
	}
	return beep.Seq(streamers...)
}

// tone returns a streamer producing a square wave at freqHz for dur, or
// silence when freqHz is 0 (rest) or drum is true (drums are rendered as
// a short burst of filtered noise-equivalent silence here, since the
// core only needs their timing slot, not their timbre).
func (a *BeepAudio) tone(freqHz float64, dur time.Duration, drum bool) beep.Streamer {
	n := a.sampleRate.N(dur)
	if freqHz <= 0 || drum {
		return &siler{remaining: n}
	}
	return &square{sampleRate: float64(a.sampleRate), freq: freqHz, remaining: n}
}

// square is a minimal square-wave oscillator streamer.
type square struct {
	sampleRate float64
	freq       float64
	phase      float64
	remaining  int
}

func (s *square) Stream(samples [][2]float64) (n int, ok bool) {
	period := s.sampleRate / s.freq
	for n = 0; n < len(samples) && s.remaining > 0; n++ {
		val := 0.25
		if math.Mod(s.phase, period) >= period/2 {
			val = -0.25
		}
		samples[n][0], samples[n][1] = val, val
		s.phase++
		s.remaining--
	}
	return n, n > 0 || s.remaining > 0
}

func (s *square) Err() error { return nil }

// siler streams silence for a fixed sample count (drums and rests).
type siler struct{ remaining int }

func (s *siler) Stream(samples [][2]float64) (n int, ok bool) {
	for n = 0; n < len(samples) && s.remaining > 0; n++ {
		samples[n][0], samples[n][1] = 0, 0
		s.remaining--
	}
	return n, n > 0 || s.remaining > 0
}

func (s *siler) Err() error { return nil }
