// Package audio synthesizes the game's sound effects with beep. Every
// effect is generated at runtime; there are no sample assets to ship.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/dww100/untitled-penguin-game/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Player owns the speaker and mixes one-shot effects into it. The zero
// state is silent; call Initialize to open the audio device. A Player
// that was never initialized swallows Play calls, so headless hosts
// (the SSH server) can share the code path.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates a sound player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device and starts the mixer. Safe to call
// more than once.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences the mixer. beep has no speaker close; an empty mixer
// is as quiet as it gets.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// SetMuted toggles playback without touching the device.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether playback is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play queues the effect for a game event. Unknown events are silent.
func (p *Player) Play(e core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	if s := eventSound(e, sampleRate); s != nil {
		p.mixer.Add(s)
	}
}

// eventSound builds the streamer for one event.
func eventSound(e core.Event, rate beep.SampleRate) beep.Streamer {
	switch e {
	case core.EventPush:
		return pushSound(rate)
	case core.EventElectric:
		return electricSound(rate)
	case core.EventBreak:
		return breakSound(rate)
	case core.EventPlayerDeath:
		return playerDeathSound(rate)
	case core.EventEnemyDeath:
		return enemyDeathSound(rate)
	case core.EventBonus:
		return bonusSound(rate)
	case core.EventStun:
		return stunSound(rate)
	}
	return nil
}
