package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/marble-sandbox/component"
	"github.com/lixenwraith/marble-sandbox/parameter"
)

const testRate = beep.SampleRate(parameter.AudioSampleRate)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	d := 100 * time.Millisecond
	got := drain(NewOscillator(440, d, WaveSine, testRate))
	if got != testRate.N(d) {
		t.Errorf("Expected %d samples, got %d", testRate.N(d), got)
	}
}

func TestSweepStaysInRange(t *testing.T) {
	s := NewSweep(900, 200, 50*time.Millisecond, WaveSaw, testRate)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if math.Abs(buf[i][0]) > 1 {
			t.Fatalf("Sample %d out of range: %v", i, buf[i][0])
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	d := 50 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)
	buf := make([][2]float64, 8)
	env.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("Expected first sample silent, got %v", buf[0][0])
	}
	if math.Abs(buf[7][0]) >= 1 {
		t.Errorf("Expected attack ramp below full scale, got %v", buf[7][0])
	}
}

func TestImpactPitchFollowsRadius(t *testing.T) {
	small := impactFrequency(component.MaterialWood, 0.25)
	ref := impactFrequency(component.MaterialWood, parameter.ImpactRefRadius)
	large := impactFrequency(component.MaterialWood, 1)
	if !(small > ref && ref > large) {
		t.Errorf("Expected pitch to fall with radius, got %v %v %v", small, ref, large)
	}
	if ref != toneOf(component.MaterialWood).freq {
		t.Errorf("Expected reference radius to play base pitch, got %v", ref)
	}
	if toneOf("unobtainium") != toneOf(component.MaterialDefault) {
		t.Error("Expected unknown material to fall back to default tone")
	}
}

func TestImpactVolumeClamped(t *testing.T) {
	if impactVolume(-3) != 0 {
		t.Error("Expected negative speed to be silent")
	}
	if impactVolume(parameter.ImpactVolumeSpeed*4) != 1 {
		t.Error("Expected loud impact to clamp at 1")
	}
}

func TestServiceMutedPlaysNothing(t *testing.T) {
	s := NewSoundService()
	s.Init(true)
	s.GoalChime()
	s.Impact(10, 0.5, component.MaterialStone, "a")
	s.RollStart(1, 0.5, component.MaterialStone, 3)
	if s.mixer.Len() != 0 {
		t.Errorf("Expected empty mixer while muted, got %d", s.mixer.Len())
	}
}

func TestServiceVoiceCap(t *testing.T) {
	s := NewSoundService()
	s.Init(false, 0.5)
	for i := 0; i < parameter.AudioMaxVoices*2; i++ {
		s.CollectChime()
	}
	if s.mixer.Len() != parameter.AudioMaxVoices {
		t.Errorf("Expected %d voices, got %d", parameter.AudioMaxVoices, s.mixer.Len())
	}
}

func TestServiceImpactCooldownPerKey(t *testing.T) {
	s := NewSoundService()
	now := time.Unix(0, 0)
	s.now = func() time.Time { return now }

	s.Impact(10, 0.5, component.MaterialMetal, "blue")
	s.Impact(10, 0.5, component.MaterialMetal, "blue")
	s.Impact(10, 0.5, component.MaterialMetal, "red")
	if s.mixer.Len() != 2 {
		t.Errorf("Expected repeat on same key to be dropped, got %d voices", s.mixer.Len())
	}

	now = now.Add(parameter.ImpactCooldown)
	s.Impact(10, 0.5, component.MaterialMetal, "blue")
	if s.mixer.Len() != 3 {
		t.Errorf("Expected key to play again after cooldown, got %d voices", s.mixer.Len())
	}
}

func TestRollVoiceFadesOutAndEnds(t *testing.T) {
	s := NewSoundService()
	s.RollStart(7, 0.5, component.MaterialStone, 5)
	s.RollUpdate(7, 0.5, component.MaterialStone, 6)
	if s.mixer.Len() != 1 {
		t.Fatalf("Expected one roll voice, got %d", s.mixer.Len())
	}

	v := s.rolls[7]
	buf := make([][2]float64, 256)
	if n, ok := v.Stream(buf); n != 256 || !ok {
		t.Fatalf("Expected rolling voice to stream, got %d %v", n, ok)
	}

	s.RollStop(7)
	if _, ok := s.rolls[7]; ok {
		t.Error("Expected roll voice to be released")
	}
	if got := drain(v); got == 0 || got > int(testRate) {
		t.Errorf("Expected a short fade before ending, got %d samples", got)
	}
}

func TestGuardNilAndSwap(t *testing.T) {
	g := NewGuard(nil)
	g.Impact(1, 1, component.MaterialDefault, "k")
	g.GoalChime()
	if g.ToggleMute() {
		t.Error("Expected ToggleMute without a Muter to report false")
	}

	rec := &Recorder{}
	g.Set(rec)
	g.BoostWhoosh()
	g.RollStop(3)
	calls := rec.Calls()
	if len(calls) != 2 || calls[0] != "boost-whoosh" || calls[1] != "roll-stop 3" {
		t.Errorf("Expected forwarded calls, got %v", calls)
	}
}

func TestServiceToggleMute(t *testing.T) {
	s := NewSoundService()
	s.RollStart(1, 0.5, component.MaterialWood, 4)
	if !s.ToggleMute() {
		t.Fatal("Expected mute on")
	}
	if len(s.rolls) != 0 {
		t.Error("Expected mute to stop rolls")
	}
	if s.ToggleMute() {
		t.Error("Expected mute off")
	}
}
