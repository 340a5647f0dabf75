// Package audio plays short synthesized cues for launch and impact. Sounds
// are generated in memory; no files are read.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"trajview/internal/config"
)

const (
	launchDuration = 0.12
	launchFreqLo   = 300.0
	launchFreqHi   = 900.0

	impactDuration = 0.20
	impactFreq     = 90.0

	attack  = 0.005
	release = 0.06

	cueGain = 0.4
)

// Engine owns the speaker and the pre-rendered cue buffers. Playback is
// fire-and-forget; when the speaker cannot be initialized the engine goes
// silent instead of failing.
type Engine struct {
	muted    bool
	silent   bool
	initDone bool

	launchBuf []float64
	impactBuf []float64
}

// New pre-renders the cues. The speaker itself is initialized lazily on the
// first play so a missing audio device never delays startup.
func New() *Engine {
	return &Engine{
		launchBuf: renderLaunch(),
		impactBuf: renderImpact(),
	}
}

// PlayLaunch plays the rising launch blip.
func (e *Engine) PlayLaunch() {
	e.play(e.launchBuf)
}

// PlayImpact plays the landing thud.
func (e *Engine) PlayImpact() {
	e.play(e.impactBuf)
}

// ToggleMute flips the mute flag and reports the new state.
func (e *Engine) ToggleMute() bool {
	e.muted = !e.muted
	return e.muted
}

// Muted reports whether cues are suppressed, either by the user or because
// no audio backend is available.
func (e *Engine) Muted() bool {
	return e.muted || e.silent
}

func (e *Engine) play(buf []float64) {
	if e.muted || e.silent {
		return
	}
	if !e.initDone {
		sr := beep.SampleRate(config.AudioSampleRate)
		if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
			e.silent = true
			return
		}
		e.initDone = true
	}
	speaker.Play(&cue{samples: buf})
}

// cue streams a mono buffer to both channels once.
type cue struct {
	samples []float64
	pos     int
}

func (c *cue) Stream(out [][2]float64) (n int, ok bool) {
	if c.pos >= len(c.samples) {
		return 0, false
	}
	for n < len(out) && c.pos < len(c.samples) {
		v := c.samples[c.pos]
		out[n][0] = v
		out[n][1] = v
		n++
		c.pos++
	}
	return n, true
}

func (c *cue) Err() error { return nil }

// sweep generates a sine whose frequency moves linearly from freqLo to
// freqHi over the buffer.
func sweep(freqLo, freqHi float64, samples int) []float64 {
	buf := make([]float64, samples)
	phase := 0.0
	for i := range buf {
		frac := float64(i) / float64(samples)
		freq := freqLo + (freqHi-freqLo)*frac
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += freq / config.AudioSampleRate
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope shapes the buffer in place with a linear attack and release.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * config.AudioSampleRate)
	releaseSamples := int(releaseSec * config.AudioSampleRate)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := range buf {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

func durationToSamples(d float64) int {
	return int(d * config.AudioSampleRate)
}

func renderLaunch() []float64 {
	buf := sweep(launchFreqLo, launchFreqHi, durationToSamples(launchDuration))
	applyEnvelope(buf, attack, release)
	scale(buf, cueGain)
	return buf
}

func renderImpact() []float64 {
	buf := sweep(impactFreq, impactFreq/2, durationToSamples(impactDuration))
	applyEnvelope(buf, attack, impactDuration*0.8)
	scale(buf, cueGain)
	return buf
}

func scale(buf []float64, gain float64) {
	for i := range buf {
		buf[i] *= gain
	}
}
