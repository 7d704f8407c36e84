package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/labsim/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator of the given duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
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

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
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
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly
// math.Log2(0) is -Inf, so zero volume is mapped to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ClickFreq maps a collision impulse to a pitch between the base and max click frequencies
func ClickFreq(impulse float64) float64 {
	if !(impulse > 0) {
		return parameter.ClickBaseFreq
	}
	span := parameter.ClickMaxFreq - parameter.ClickBaseFreq
	// Saturating curve: small impulses stay near the base pitch
	f := parameter.ClickBaseFreq + span*(1-math.Exp(-impulse/parameter.ClickImpulseScale))
	return math.Min(f, parameter.ClickMaxFreq)
}

// CreateClickSound generates a short sine click pitched by impulse
func CreateClickSound(impulse, volume float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(ClickFreq(impulse), parameter.ClickDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.ClickDuration, parameter.ClickAttack, parameter.ClickRelease, rate)
	return newVolume(shaped, volume)
}

// CreateBounceSound generates a low triangle thump for wall and floor hits
func CreateBounceSound(volume float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.BounceFreq, parameter.ClickDuration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, parameter.ClickDuration, parameter.ClickAttack, parameter.ClickRelease, rate)
	return newVolume(shaped, volume*0.6)
}
