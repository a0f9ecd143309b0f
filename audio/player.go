package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"snake-classic/game/manager"
	"snake-classic/game/types"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.6
)

// Player plays game sounds through the speaker. A zero or disabled Player is silent.
type Player struct {
	enabled bool
	volume  float64
	play    func(beep.Streamer)
}

// NewPlayer opens the speaker. Callers should continue without sound on error.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, errors.Wrap(err, "initializing speaker")
	}
	return &Player{
		enabled: true,
		volume:  defaultVolume,
		play:    func(s beep.Streamer) { speaker.Play(s) },
	}, nil
}

// Enabled reports whether sounds are played
func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

// Play queues sound on the speaker without blocking
func (p *Player) Play(sound Sound) {
	if !p.Enabled() {
		return
	}
	p.play(Effect(sound, sampleRate, p.volume))
}

func (p *Player) OnFoodEaten(int) {
	p.Play(SoundEat)
}

func (p *Player) OnHighScore(int) {
	p.Play(SoundHighScore)
}

func (p *Player) OnGameOver(manager.GameRecord, types.CollisionType) {
	p.Play(SoundGameOver)
}

// Close releases the speaker
func (p *Player) Close() {
	if !p.Enabled() {
		return
	}
	p.enabled = false
	speaker.Close()
}
