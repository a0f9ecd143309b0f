package audio

import (
	"math"
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
)

// Sound identifies a game sound effect
type Sound int

const (
	SoundEat Sound = iota
	SoundHighScore
	SoundGameOver
)

// tone is a fixed-length oscillator whose frequency can glide linearly
type tone struct {
	from, to float64
	phase    float64
	total    int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func newTone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) *tone {
	return &tone{from: from, to: to, total: rate.N(d), wave: wave, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		}

		// linear fade in/out over the first and last 10% avoids clicks
		edge := t.total / 10
		if edge > 0 {
			if t.position < edge {
				val *= float64(t.position) / float64(edge)
			} else if rem := t.total - t.position; rem < edge {
				val *= float64(rem) / float64(edge)
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.position) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales s linearly; vol <= 0 is silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect builds the streamer for sound at the given rate and volume
func Effect(sound Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	switch sound {
	case SoundEat:
		// two quick square blips, B5 then E6
		return withVolume(beep.Seq(
			newTone(987.77, 987.77, 40*time.Millisecond, WaveSquare, rate),
			newTone(1318.51, 1318.51, 60*time.Millisecond, WaveSquare, rate),
		), volume*0.4)
	case SoundHighScore:
		// A5 bell with an octave overtone
		d := 300 * time.Millisecond
		return withVolume(beep.Take(rate.N(d), beep.Mix(
			withVolume(newTone(880, 880, d, WaveSine, rate), 0.7),
			withVolume(newTone(1760, 1760, d, WaveSine, rate), 0.3),
		)), volume)
	case SoundGameOver:
		// falling saw buzz
		return withVolume(newTone(220, 70, 450*time.Millisecond, WaveSaw, rate), volume*0.5)
	}
	return beep.Silence(0)
}
