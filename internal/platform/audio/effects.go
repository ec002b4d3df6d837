package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveShape selects the oscillator's waveform.
type waveShape int

const (
	shapeSine waveShape = iota
	shapeSquare
	shapeSaw
	shapeNoise
)

// tone generates one waveform at a fixed frequency for a fixed duration.
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	shape    waveShape
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, shape waveShape, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, duration: rate.N(d), shape: shape, rate: rate}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.shape {
		case shapeSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case shapeSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case shapeSaw:
			val = 2.0 * (o.phase - 0.5)
		case shapeNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// sweep glides from one frequency to another over its lifetime.
type sweep struct {
	from     float64
	to       float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func newSweep(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, duration: rate.N(d), rate: rate}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		progress := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*progress
		val := math.Sin(2 * math.Pi * o.phase)

		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope shapes a stream with linear attack and release ramps.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func shaped(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if rem := e.total - e.position; rem < e.release && e.release > 0 {
			vol = float64(rem) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain scales a stream. effects.Volume is logarithmic and Log2(0) is
// -Inf, so zero volume maps to silence instead.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect builders. All effects are one-shots; the mixer drops them
// when their streamer runs dry.

// pushSound is a quick noise zip for a block set sliding.
func pushSound(rate beep.SampleRate) beep.Streamer {
	const d = 80 * time.Millisecond
	noise := newTone(0, d, shapeNoise, rate)
	return gain(shaped(noise, d, 5*time.Millisecond, 60*time.Millisecond, rate), 0.3)
}

// electricSound is a harsh buzz for a push rattling the boundary wall.
func electricSound(rate beep.SampleRate) beep.Streamer {
	const d = 220 * time.Millisecond
	buzz := newTone(110, d, shapeSaw, rate)
	return gain(shaped(buzz, d, 5*time.Millisecond, 120*time.Millisecond, rate), 0.35)
}

// breakSound is a low crack for a shattering block.
func breakSound(rate beep.SampleRate) beep.Streamer {
	const d = 140 * time.Millisecond
	crack := beep.Mix(
		gain(newTone(0, d, shapeNoise, rate), 0.5),
		gain(newTone(70, d, shapeSquare, rate), 0.5),
	)
	return gain(shaped(crack, d, 2*time.Millisecond, 100*time.Millisecond, rate), 0.4)
}

// playerDeathSound is a long falling glide.
func playerDeathSound(rate beep.SampleRate) beep.Streamer {
	const d = 600 * time.Millisecond
	fall := newSweep(660, 110, d, rate)
	return gain(shaped(fall, d, 10*time.Millisecond, 250*time.Millisecond, rate), 0.4)
}

// enemyDeathSound is a bright ding with one overtone.
func enemyDeathSound(rate beep.SampleRate) beep.Streamer {
	const d = 250 * time.Millisecond
	ding := beep.Mix(
		gain(shaped(newTone(880, d, shapeSine, rate), d, 3*time.Millisecond, 200*time.Millisecond, rate), 0.7),
		gain(shaped(newTone(1760, d, shapeSine, rate), d, 3*time.Millisecond, 120*time.Millisecond, rate), 0.3),
	)
	return gain(ding, 0.45)
}

// bonusSound is a rising two-note chime.
func bonusSound(rate beep.SampleRate) beep.Streamer {
	low := shaped(newTone(659, 90*time.Millisecond, shapeSine, rate), 90*time.Millisecond, 3*time.Millisecond, 40*time.Millisecond, rate)
	high := shaped(newTone(988, 180*time.Millisecond, shapeSine, rate), 180*time.Millisecond, 3*time.Millisecond, 130*time.Millisecond, rate)
	return gain(beep.Seq(low, high), 0.4)
}

// stunSound is a short downward wobble.
func stunSound(rate beep.SampleRate) beep.Streamer {
	const d = 260 * time.Millisecond
	wobble := newSweep(330, 196, d, rate)
	return gain(shaped(wobble, d, 5*time.Millisecond, 140*time.Millisecond, rate), 0.35)
}
