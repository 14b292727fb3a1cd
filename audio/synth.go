package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// sample returns the wave value at phase in [0,1)
func (w WaveType) sample(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// oscillator generates a fixed-length wave, optionally sweeping frequency linearly
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a constant-frequency voice
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep glides from start to end frequency over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := o.wave.sample(o.phase)
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != o.freq && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s; attack+release longer than duration leaves no sustain
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// rollVoice is an endless rumble whose pitch and loudness follow marble speed
// Stopping fades to silence and then ends the stream
type rollVoice struct {
	mu       sync.Mutex
	freq     float64
	volume   float64
	target   float64
	phase    float64
	rate     beep.SampleRate
	stopping bool
}

// rollFade is the per-sample volume slew
const rollFade = 0.0005

func newRollVoice(rate beep.SampleRate) *rollVoice {
	return &rollVoice{rate: rate}
}

func (v *rollVoice) set(freq, volume float64) {
	v.mu.Lock()
	v.freq = freq
	v.target = volume
	v.stopping = false
	v.mu.Unlock()
}

func (v *rollVoice) stop() {
	v.mu.Lock()
	v.target = 0
	v.stopping = true
	v.mu.Unlock()
}

func (v *rollVoice) Stream(samples [][2]float64) (n int, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range samples {
		if v.stopping && v.volume <= 0 {
			return i, i > 0
		}
		if v.volume < v.target {
			v.volume = math.Min(v.volume+rollFade, v.target)
		} else if v.volume > v.target {
			v.volume = math.Max(v.volume-rollFade, v.target)
		}

		// Tone plus grit
		val := (0.7*math.Sin(2*math.Pi*v.phase) + 0.3*(rand.Float64()*2-1)) * v.volume
		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.freq / float64(v.rate)
		v.phase -= math.Floor(v.phase)
	}
	return len(samples), true
}

func (v *rollVoice) Err() error { return nil }
