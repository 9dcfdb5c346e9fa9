package audio

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"escape-demo/game"
)

// drain streams s to completion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewTone(440, 100*time.Millisecond, WaveSine, rate)
	got := drain(t, s)
	if len(got) != rate.N(100*time.Millisecond) {
		t.Errorf("expected %d samples, got %d", rate.N(100*time.Millisecond), len(got))
	}
	if s.Err() != nil {
		t.Errorf("unexpected error: %v", s.Err())
	}
}

func TestSquareWaveIsFullScale(t *testing.T) {
	rate := beep.SampleRate(8000)
	got := drain(t, NewTone(100, 50*time.Millisecond, WaveSquare, rate))
	for i, s := range got {
		if math.Abs(s[0]) != 1 || s[0] != s[1] {
			t.Fatalf("sample %d: expected ±1 on both channels, got %v", i, s)
		}
	}
}

func TestEnvelopeShapes(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	got := drain(t, NewEnvelope(NewTone(50, d, WaveSquare, rate), d, 10*time.Millisecond, 20*time.Millisecond, rate))
	if len(got) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(got))
	}
	if got[0][0] != 0 {
		t.Errorf("attack should start silent, got %v", got[0][0])
	}
	if math.Abs(got[50][0]) != 1 {
		t.Errorf("sustain should pass through, got %v", got[50][0])
	}
	if a := math.Abs(got[99][0]); a == 0 || a > 0.1 {
		t.Errorf("release should be nearly silent at the end, got %v", a)
	}
}

func TestSoundsStayInRange(t *testing.T) {
	for _, c := range []Cue{CueClick, CueChime, CueBuzz, CueReset} {
		t.Run(c.String(), func(t *testing.T) {
			got := drain(t, Sound(c, sampleRate))
			if len(got) == 0 {
				t.Fatal("empty cue")
			}
			for i, s := range got {
				if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
					t.Fatalf("sample %d out of range: %v", i, s)
				}
			}
		})
	}
}

func TestCuesFor(t *testing.T) {
	cases := []struct {
		name string
		snap game.Snapshot
		want []Cue
	}{
		{"quiet frame", game.Snapshot{}, nil},
		{"toggle", game.Snapshot{Events: game.Events{Fired: []game.Action{game.ActionTorchLight}}}, []Cue{CueClick}},
		{"export is silent", game.Snapshot{Events: game.Events{Fired: []game.Action{game.ActionExport}}}, nil},
		{"caught", game.Snapshot{Outcome: game.Lost, Events: game.Events{Outcome: true}}, []Cue{CueBuzz}},
		{"escaped", game.Snapshot{Outcome: game.Won, Events: game.Events{Outcome: true}}, []Cue{CueChime}},
		{"restart wins", game.Snapshot{Events: game.Events{
			Fired:     []game.Action{game.ActionRestart},
			Restarted: true,
			Outcome:   true,
		}}, []Cue{CueReset}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CuesFor(tc.snap); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSilentPlayer(t *testing.T) {
	p := NewPlayer(false, 0.5)
	p.Play(CueClick, CueBuzz)
	p.SetVolume(0)
	p.Close()

	var nilPlayer *Player
	nilPlayer.Play(CueChime)
	nilPlayer.Close()
}
