package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"escape-demo/game"
)

const sampleRate = beep.SampleRate(44100)

// Cue names one of the event sounds.
type Cue int

const (
	CueClick Cue = iota // toggle flipped
	CueChime            // reached the portal
	CueBuzz             // caught by the sheep
	CueReset            // restart
)

var cueNames = [...]string{"click", "chime", "buzz", "reset"}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// Sound builds a fresh streamer for c at the given rate.
func Sound(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueClick:
		d := 40 * time.Millisecond
		return NewEnvelope(NewTone(1200, d, WaveSine, rate), d, 2*time.Millisecond, 30*time.Millisecond, rate)
	case CueChime:
		d := 180 * time.Millisecond
		return beep.Seq(
			NewEnvelope(NewTone(660, d, WaveSine, rate), d, 5*time.Millisecond, 120*time.Millisecond, rate),
			NewEnvelope(NewTone(880, d, WaveSine, rate), d, 5*time.Millisecond, 120*time.Millisecond, rate),
			NewEnvelope(NewTone(1320, 2*d, WaveSine, rate), 2*d, 5*time.Millisecond, 300*time.Millisecond, rate),
		)
	case CueBuzz:
		d := 400 * time.Millisecond
		return NewEnvelope(NewTone(110, d, WaveSquare, rate), d, 5*time.Millisecond, 200*time.Millisecond, rate)
	case CueReset:
		d := 90 * time.Millisecond
		return beep.Seq(
			NewEnvelope(NewTone(880, d, WaveSine, rate), d, 2*time.Millisecond, 60*time.Millisecond, rate),
			NewEnvelope(NewTone(440, d, WaveSine, rate), d, 2*time.Millisecond, 60*time.Millisecond, rate),
		)
	}
	return beep.Silence(0)
}

// CuesFor maps the events of one frame to the sounds they trigger.
func CuesFor(s game.Snapshot) []Cue {
	var out []Cue
	if s.Events.Restarted {
		return append(out, CueReset)
	}
	for _, a := range s.Events.Fired {
		switch a {
		case game.ActionExport, game.ActionRestart:
		default:
			out = append(out, CueClick)
		}
	}
	if s.Events.Outcome {
		switch s.Outcome {
		case game.Won:
			out = append(out, CueChime)
		case game.Lost:
			out = append(out, CueBuzz)
		}
	}
	return out
}

// Player sends cues to the speaker. The zero value and a player whose
// device failed to open are silent.
type Player struct {
	mu     sync.Mutex
	volume float64
	ready  bool
}

// NewPlayer opens the default output device. A device error is logged and
// yields a silent player.
func NewPlayer(enabled bool, volume float64) *Player {
	p := &Player{volume: volume}
	if !enabled {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		log.Printf("[Audio] disabled: %v", err)
		return p
	}
	p.ready = true
	return p
}

// SetVolume takes effect for cues played afterwards.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = v
	p.mu.Unlock()
}

// Play mixes every cue into the speaker.
func (p *Player) Play(cues ...Cue) {
	if p == nil || len(cues) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	streams := make([]beep.Streamer, len(cues))
	for i, c := range cues {
		streams[i] = Sound(c, sampleRate)
	}
	speaker.Play(withVolume(beep.Mix(streams...), p.volume))
}

func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		speaker.Clear()
		speaker.Close()
		p.ready = false
	}
}
