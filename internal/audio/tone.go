// internal/audio/tone.go
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// TonePlayer: короткий звуковой сигнал «выстрелил и забыл».
type TonePlayer interface {
	PlayTone(freq float64, duration time.Duration, gain float64)
}

// Tone builds a finite triangle-wave streamer scaled to the given gain.
func Tone(rate beep.SampleRate, freq float64, duration time.Duration, gain float64) (beep.Streamer, error) {
	triangle, err := generators.TriangleTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create triangle tone: %w", err)
	}
	// effects.Gain умножает сэмплы на (1 + Gain)
	scaled := &effects.Gain{Streamer: triangle, Gain: gain - 1}
	return beep.Take(rate.N(duration), scaled), nil
}

// SpeakerPlayer проигрывает тоны через системный динамик.
type SpeakerPlayer struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	initialized bool
}

// NewSpeakerPlayer инициализирует динамик с буфером в 100 мс.
func NewSpeakerPlayer(sampleRate int) (*SpeakerPlayer, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &SpeakerPlayer{rate: rate, initialized: true}, nil
}

func (p *SpeakerPlayer) PlayTone(freq float64, duration time.Duration, gain float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	tone, err := Tone(p.rate, freq, duration, gain)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	speaker.Play(tone)
}

// Close останавливает все звуки.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// NopPlayer используется при выключенном звуке или без аудио-бэкенда.
type NopPlayer struct{}

func (NopPlayer) PlayTone(float64, time.Duration, float64) {}

// NewPlayer возвращает рабочий плеер или NopPlayer, если звук выключен
// либо недоступен. Ошибка инициализации не фатальна.
func NewPlayer(muted bool, sampleRate int) TonePlayer {
	if muted {
		return NopPlayer{}
	}
	p, err := NewSpeakerPlayer(sampleRate)
	if err != nil {
		log.Printf("Audio initialization failed, continuing without sound: %v", err)
		return NopPlayer{}
	}
	return p
}
