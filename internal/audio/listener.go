// internal/audio/listener.go
package audio

import (
	"go-treehouse/internal/config"
	"go-treehouse/internal/event"
)

// ToneListener plays the planting tone whenever a tree is planted.
type ToneListener struct {
	player TonePlayer
}

func NewToneListener(player TonePlayer) *ToneListener {
	return &ToneListener{player: player}
}

func (l *ToneListener) OnEvent(e event.Event) {
	if e.Type != event.TreePlanted {
		return
	}
	l.player.PlayTone(config.ToneFrequency, config.ToneDuration, config.ToneGain)
}
